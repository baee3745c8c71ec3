package logger

import (
	"log/slog"
	"os"
)

// New returns a text slog logger on stdout; swap the handler when shipping
// logs elsewhere.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
