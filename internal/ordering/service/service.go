// Package service implements the order lifecycle for one shielding
// individual: picking and editing a candidate food box, placing orders with
// the nearest catering company, propagating edits, cancelling and mirroring
// order status from the authority.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Gateway,Catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"shieldbox/internal/ordering/metrics"
	"shieldbox/internal/ordering/models"
	dErrors "shieldbox/pkg/domainerrors"
	"shieldbox/pkg/platform/sentinel"
)

// MinTimeBetweenOrders is the placement cooldown: one week, boundary
// inclusive at exactly 7×24×3600 seconds.
const MinTimeBetweenOrders = 7 * 24 * time.Hour

// Gateway is the slice of the authority API the lifecycle needs.
type Gateway interface {
	Caterers(ctx context.Context) ([]models.CateringCompany, error)
	Distance(ctx context.Context, postcodeA, postcodeB string) (float64, error)
	PlaceOrder(ctx context.Context, chi string, company models.CateringCompany, payload models.OrderPayload) (int, error)
	EditOrder(ctx context.Context, orderNumber int, payload models.OrderPayload) error
	CancelOrder(ctx context.Context, orderNumber int) error
	OrderStatusCode(ctx context.Context, orderNumber int) (string, error)
}

// Catalog hands out candidate copies of catalog boxes.
type Catalog interface {
	CopyBox(ctx context.Context, boxID string) (*models.FoodBox, error)
}

// OrderStore keeps the orders placed in this session.
type OrderStore interface {
	Add(ctx context.Context, o *models.Order) error
	FindByNumber(ctx context.Context, number int) (*models.Order, error)
	Numbers(ctx context.Context) []int
	MostRecent(ctx context.Context) (*models.Order, error)
	Execute(ctx context.Context, number int, validate func(*models.Order) error, mutate func(*models.Order) error) (*models.Order, error)
}

// Service is the order lifecycle manager. It is owned by exactly one
// session; callers needing concurrent access must synchronize externally.
type Service struct {
	gateway Gateway
	catalog Catalog
	orders  OrderStore
	logger  *slog.Logger
	metrics *metrics.Metrics

	picked *models.FoodBox // candidate, nil when none
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs a Service.
func New(gateway Gateway, cat Catalog, orders OrderStore, opts ...Option) *Service {
	s := &Service{
		gateway: gateway,
		catalog: cat,
		orders:  orders,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PickFoodBox resolves boxID against the catalog and stores a deep copy as
// the candidate. Any failed pick, invalid id included, clears the candidate;
// picking again fully replaces a prior candidate, edits and all.
func (s *Service) PickFoodBox(ctx context.Context, boxID int) error {
	if boxID < 0 {
		s.picked = nil
		return dErrors.Newf(dErrors.CodeValidation, "food box id %d is negative", boxID)
	}
	box, err := s.catalog.CopyBox(ctx, strconv.Itoa(boxID))
	if err != nil {
		s.picked = nil
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeNotFound, "no food box %d in catalog", boxID)
		}
		return err
	}
	s.picked = box
	return nil
}

// Picked returns the current candidate box, or nil.
func (s *Service) Picked() *models.FoodBox {
	return s.picked
}

// ChangeItemQuantity edits the candidate with the catalog maximum as ceiling.
func (s *Service) ChangeItemQuantity(ctx context.Context, itemID, quantity int) error {
	if s.picked == nil {
		return dErrors.New(dErrors.CodeNotFound, "no food box picked")
	}
	return s.picked.SetQuantityForItem(itemID, quantity, false)
}

// PlaceOrder submits the candidate to the nearest catering company.
//
// The candidate and the throttle window are checked first, then the nearest
// company is resolved and the serialized box submitted. A failure at any
// step leaves all session state unchanged.
func (s *Service) PlaceOrder(ctx context.Context, now time.Time, chi, postcode string) error {
	if s.picked == nil {
		return dErrors.New(dErrors.CodeNotFound, "no food box picked")
	}
	if err := s.checkThrottle(ctx, now); err != nil {
		return err
	}

	company, err := s.nearestCaterer(ctx, postcode)
	if err != nil {
		return err
	}

	number, err := s.gateway.PlaceOrder(ctx, chi, company, s.picked.Serialize())
	if err != nil {
		return err
	}

	order, err := models.NewOrder(number, s.picked, now)
	if err != nil {
		return err
	}
	if err := s.orders.Add(ctx, order); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "recording placed order")
	}
	s.picked = nil

	s.metrics.IncOrdersPlaced()
	s.logger.Info("order placed",
		"order_number", number, "company", company.Name, "postcode", company.Postcode)
	return nil
}

func (s *Service) checkThrottle(ctx context.Context, now time.Time) error {
	last, err := s.orders.MostRecent(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "looking up most recent order")
	}
	if !now.After(last.TimeOrdered) || now.Sub(last.TimeOrdered) < MinTimeBetweenOrders {
		s.metrics.IncPlacementsThrottled()
		return dErrors.Newf(dErrors.CodePolicy,
			"order %d was placed less than a week before %s", last.Number, now.Format(time.RFC3339))
	}
	return nil
}

// EditOrder propagates the current local state of an order's box to the
// authority. The authority independently enforces that the status still
// permits edits; locally only ownership is checked.
func (s *Service) EditOrder(ctx context.Context, orderNumber int) error {
	order, err := s.findOrder(ctx, orderNumber)
	if err != nil {
		return err
	}
	if err := s.gateway.EditOrder(ctx, orderNumber, order.Box.Serialize()); err != nil {
		return err
	}
	s.metrics.IncOrderEdits()
	s.logger.Info("order edit propagated", "order_number", orderNumber)
	return nil
}

// SetItemQuantityForOrder edits one line of a placed order locally. The
// order's mirrored status must still be Placed and the ordered ceiling
// applies, so quantities only ratchet downward.
func (s *Service) SetItemQuantityForOrder(ctx context.Context, itemID, orderNumber, quantity int) error {
	if orderNumber < 0 {
		return dErrors.Newf(dErrors.CodeValidation, "order number %d is negative", orderNumber)
	}
	_, err := s.orders.Execute(ctx, orderNumber,
		func(o *models.Order) error { return o.CanEditItems() },
		func(o *models.Order) error { return o.SetItemQuantity(itemID, quantity) },
	)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Newf(dErrors.CodeNotFound, "order %d was not placed by this individual", orderNumber)
	}
	return err
}

// CancelOrder asks the authority to cancel and mirrors the result. Whether
// cancellation is still legal is the authority's call, not ours.
func (s *Service) CancelOrder(ctx context.Context, orderNumber int) error {
	order, err := s.findOrder(ctx, orderNumber)
	if err != nil {
		return err
	}
	if err := s.gateway.CancelOrder(ctx, orderNumber); err != nil {
		return err
	}
	order.ApplyCancellation()
	s.metrics.IncOrdersCancelled()
	s.logger.Info("order cancelled", "order_number", orderNumber)
	return nil
}

// RefreshOrderStatus pulls the authority's status code for an order and
// overwrites the local mirror. An unmapped code leaves the mirror untouched.
func (s *Service) RefreshOrderStatus(ctx context.Context, orderNumber int) error {
	order, err := s.findOrder(ctx, orderNumber)
	if err != nil {
		return err
	}
	code, err := s.gateway.OrderStatusCode(ctx, orderNumber)
	if err != nil {
		return err
	}
	status, err := models.StatusFromCode(code)
	if err != nil {
		return err
	}
	order.ApplyRemoteStatus(status)
	s.metrics.IncStatusRefreshes()
	return nil
}

// MoveMostRecentOrderBackByDays backdates the most recent order. Debug/test
// hook for simulating cooldown expiry without waiting real time.
func (s *Service) MoveMostRecentOrderBackByDays(ctx context.Context, days int) error {
	last, err := s.orders.MostRecent(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "no orders placed yet")
	}
	if err != nil {
		return err
	}
	last.Backdate(time.Duration(days) * 24 * time.Hour)
	return nil
}

// --- offline accessors: last-synchronized local state only ---

// OrderNumbers lists the numbers of all orders placed in this session.
func (s *Service) OrderNumbers(ctx context.Context) []int {
	return s.orders.Numbers(ctx)
}

// StatusForOrder reports the locally mirrored status.
func (s *Service) StatusForOrder(ctx context.Context, orderNumber int) (models.Status, error) {
	order, err := s.findOrder(ctx, orderNumber)
	if err != nil {
		return models.StatusPlaced, err
	}
	return order.Status, nil
}

// ItemIDsForOrder lists the item ids of an order's box.
func (s *Service) ItemIDsForOrder(ctx context.Context, orderNumber int) ([]int, error) {
	order, err := s.findOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return order.ItemIDs(), nil
}

// ItemNameForOrder reports an item's name within an order, "" when unknown.
func (s *Service) ItemNameForOrder(ctx context.Context, itemID, orderNumber int) (string, error) {
	order, err := s.findOrder(ctx, orderNumber)
	if err != nil {
		return "", err
	}
	return order.ItemName(itemID), nil
}

// ItemQuantityForOrder reports an item's quantity within an order,
// QuantityNotFound when unknown.
func (s *Service) ItemQuantityForOrder(ctx context.Context, itemID, orderNumber int) (int, error) {
	order, err := s.findOrder(ctx, orderNumber)
	if err != nil {
		return models.QuantityNotFound, err
	}
	return order.ItemQuantity(itemID), nil
}

func (s *Service) findOrder(ctx context.Context, orderNumber int) (*models.Order, error) {
	order, err := s.orders.FindByNumber(ctx, orderNumber)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "order %d was not placed by this individual", orderNumber)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}
