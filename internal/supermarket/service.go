// Package supermarket implements the supermarket side of the system:
// registering the business, recording orders placed by shielding individuals
// and reporting their status changes.
package supermarket

import (
	"context"
	"io"
	"log/slog"

	"shieldbox/internal/ordering/models"
	dErrors "shieldbox/pkg/domainerrors"
)

// Gateway is the slice of the authority API a supermarket needs.
type Gateway interface {
	RegisterSupermarket(ctx context.Context, name, postcode string) error
	RecordSupermarketOrder(ctx context.Context, chi string, orderNumber int, name, postcode string) error
	UpdateSupermarketOrderStatus(ctx context.Context, orderNumber int, status models.Status) error
}

// Service holds one supermarket's session state.
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

// Register registers the supermarket with the authority. An
// already-registered answer counts as success.
func (s *Service) Register(ctx context.Context, name, postcode string) error {
	if name == "" || postcode == "" {
		return dErrors.New(dErrors.CodeValidation, "supermarket name and postcode are required")
	}
	if err := s.gateway.RegisterSupermarket(ctx, name, postcode); err != nil {
		return err
	}
	s.name = name
	s.postcode = postcode
	s.registered = true
	s.logger.Info("supermarket registered", "name", name, "postcode", postcode)
	return nil
}

// RecordOrder records an externally numbered order against an individual.
// Supermarket order numbers are chosen by the supermarket, not the authority.
func (s *Service) RecordOrder(ctx context.Context, chi string, orderNumber int) error {
	if chi == "" {
		return dErrors.New(dErrors.CodeValidation, "CHI number is required")
	}
	if orderNumber < 0 {
		return dErrors.Newf(dErrors.CodeValidation, "order number %d is negative", orderNumber)
	}
	return s.gateway.RecordSupermarketOrder(ctx, chi, orderNumber, s.name, s.postcode)
}

// UpdateOrderStatus reports a status change for a recorded order.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderNumber int, status models.Status) error {
	if orderNumber < 0 {
		return dErrors.Newf(dErrors.CodeValidation, "order number %d is negative", orderNumber)
	}
	return s.gateway.UpdateSupermarketOrderStatus(ctx, orderNumber, status)
}

func (s *Service) Registered() bool { return s.registered }
func (s *Service) Name() string     { return s.name }
func (s *Service) Postcode() string { return s.postcode }

// Debug/test setters mirroring the public accessors.

func (s *Service) SetRegistered(registered bool) { s.registered = registered }
func (s *Service) SetName(name string)           { s.name = name }
func (s *Service) SetPostcode(postcode string)   { s.postcode = postcode }
