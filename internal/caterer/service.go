// Package caterer implements the catering-company side of the system:
// registering the business and reporting order status changes.
package caterer

import (
	"context"
	"io"
	"log/slog"

	"shieldbox/internal/ordering/models"
	dErrors "shieldbox/pkg/domainerrors"
)

// Gateway is the slice of the authority API a catering company needs.
type Gateway interface {
	RegisterCaterer(ctx context.Context, name, postcode string) error
	UpdateCatererOrderStatus(ctx context.Context, orderNumber int, status models.Status) error
}

// Service holds one catering company's session state.
type Service struct {
	gateway Gateway
	logger  *slog.Logger

	name       string
	postcode   string
	registered bool
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func New(gateway Gateway, opts ...Option) *Service {
	s := &Service{gateway: gateway, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register registers the company with the authority. An already-registered
// answer counts as success.
func (s *Service) Register(ctx context.Context, name, postcode string) error {
	if name == "" || postcode == "" {
		return dErrors.New(dErrors.CodeValidation, "company name and postcode are required")
	}
	if err := s.gateway.RegisterCaterer(ctx, name, postcode); err != nil {
		return err
	}
	s.name = name
	s.postcode = postcode
	s.registered = true
	s.logger.Info("catering company registered", "name", name, "postcode", postcode)
	return nil
}

// UpdateOrderStatus reports a status change for one of the company's orders.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderNumber int, status models.Status) error {
	if orderNumber < 0 {
		return dErrors.Newf(dErrors.CodeValidation, "order number %d is negative", orderNumber)
	}
	return s.gateway.UpdateCatererOrderStatus(ctx, orderNumber, status)
}

func (s *Service) Registered() bool { return s.registered }
func (s *Service) Name() string     { return s.name }
func (s *Service) Postcode() string { return s.postcode }

// Debug/test setters mirroring the public accessors.

func (s *Service) SetRegistered(registered bool) { s.registered = registered }
func (s *Service) SetName(name string)           { s.name = name }
func (s *Service) SetPostcode(postcode string)   { s.postcode = postcode }
