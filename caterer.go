package shieldbox

import (
	"context"
	"log/slog"

	"shieldbox/internal/authority"
	"shieldbox/internal/caterer"
	"shieldbox/internal/ordering/models"
)

// Caterer is one catering company's session.
type Caterer struct {
	svc    *caterer.Service
	logger *slog.Logger
}

// NewCaterer builds a catering-company session against the authority at
// endpoint.
func NewCaterer(endpoint string, opts ...Option) *Caterer {
	o := buildOptions(opts)

	clientOpts := []authority.Option{authority.WithLogger(o.logger)}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, authority.WithHTTPClient(o.httpClient))
	}
	client := authority.New(endpoint, clientOpts...)

	return &Caterer{
		svc:    caterer.New(client, caterer.WithLogger(o.logger)),
		logger: o.logger,
	}
}

func (c *Caterer) ok(op string, err error) bool {
	if err != nil {
		c.logger.Warn(op+" failed", "error", err)
		return false
	}
	return true
}

// Register registers the company with the authority. Registering a name
// and postcode the authority already knows counts as success.
func (c *Caterer) Register(ctx context.Context, name, postcode string) bool {
	return c.ok("register caterer", c.svc.Register(ctx, name, postcode))
}

// UpdateOrderStatus reports an order's new status using its wire string,
// for example "packed" or "dispatched".
func (c *Caterer) UpdateOrderStatus(ctx context.Context, orderNumber int, status string) bool {
	parsed, err := models.ParseStatus(status)
	if !c.ok("parse order status", err) {
		return false
	}
	return c.ok("update order status", c.svc.UpdateOrderStatus(ctx, orderNumber, parsed))
}

func (c *Caterer) IsRegistered() bool { return c.svc.Registered() }
func (c *Caterer) Name() string       { return c.svc.Name() }
func (c *Caterer) Postcode() string   { return c.svc.Postcode() }

// Test/debug surface.

func (c *Caterer) SetRegistered(registered bool) { c.svc.SetRegistered(registered) }
func (c *Caterer) SetName(name string)           { c.svc.SetName(name) }
func (c *Caterer) SetPostcode(postcode string)   { c.svc.SetPostcode(postcode) }
