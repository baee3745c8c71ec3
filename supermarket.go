package shieldbox

import (
	"context"
	"log/slog"

	"shieldbox/internal/authority"
	"shieldbox/internal/ordering/models"
	"shieldbox/internal/supermarket"
)

// Supermarket is one supermarket's session. Unlike catering orders, the
// order numbers here are chosen by the supermarket itself and merely
// recorded with the authority.
type Supermarket struct {
	svc    *supermarket.Service
	logger *slog.Logger
}

// NewSupermarket builds a supermarket session against the authority at
// endpoint.
func NewSupermarket(endpoint string, opts ...Option) *Supermarket {
	o := buildOptions(opts)

	clientOpts := []authority.Option{authority.WithLogger(o.logger)}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, authority.WithHTTPClient(o.httpClient))
	}
	client := authority.New(endpoint, clientOpts...)

	return &Supermarket{
		svc:    supermarket.New(client, supermarket.WithLogger(o.logger)),
		logger: o.logger,
	}
}

func (s *Supermarket) ok(op string, err error) bool {
	if err != nil {
		s.logger.Warn(op+" failed", "error", err)
		return false
	}
	return true
}

// Register registers the supermarket with the authority. Registering a
// name and postcode the authority already knows counts as success.
func (s *Supermarket) Register(ctx context.Context, name, postcode string) bool {
	return s.ok("register supermarket", s.svc.Register(ctx, name, postcode))
}

// RecordOrder records an order this supermarket placed on behalf of a
// shielding individual.
func (s *Supermarket) RecordOrder(ctx context.Context, chi string, orderNumber int) bool {
	return s.ok("record supermarket order", s.svc.RecordOrder(ctx, chi, orderNumber))
}

// UpdateOrderStatus reports a recorded order's new status using its wire
// string.
func (s *Supermarket) UpdateOrderStatus(ctx context.Context, orderNumber int, status string) bool {
	parsed, err := models.ParseStatus(status)
	if !s.ok("parse order status", err) {
		return false
	}
	return s.ok("update order status", s.svc.UpdateOrderStatus(ctx, orderNumber, parsed))
}

func (s *Supermarket) IsRegistered() bool { return s.svc.Registered() }
func (s *Supermarket) Name() string       { return s.svc.Name() }
func (s *Supermarket) Postcode() string   { return s.svc.Postcode() }

// Test/debug surface.

func (s *Supermarket) SetRegistered(registered bool) { s.svc.SetRegistered(registered) }
func (s *Supermarket) SetName(name string)           { s.svc.SetName(name) }
func (s *Supermarket) SetPostcode(postcode string)   { s.svc.SetPostcode(postcode) }
