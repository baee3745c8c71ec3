package config

import (
	"os"
	"time"
)

// Client captures configuration for talking to the remote authority.
type Client struct {
	Endpoint    string
	HTTPTimeout time.Duration
}

// FromEnv builds a Client config from environment variables so main stays lean.
func FromEnv() Client {
	endpoint := os.Getenv("AUTHORITY_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:5000"
	}

	timeout := 10 * time.Second
	if raw := os.Getenv("AUTHORITY_HTTP_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	return Client{
		Endpoint:    endpoint,
		HTTPTimeout: timeout,
	}
}
