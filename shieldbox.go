// Package shieldbox is the client-side domain layer for a COVID shielding
// food-box service. It gives shielding individuals, catering companies and
// supermarkets a session object each, all talking to the government
// authority that is the system of record for registration and order state.
//
// The facades report success or failure as booleans and unknown lookups as
// sentinel values; diagnostic detail goes to the configured logger and is
// not part of the functional contract.
package shieldbox

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"shieldbox/internal/authority"
	"shieldbox/internal/catalog"
	"shieldbox/internal/ordering/metrics"
	"shieldbox/internal/ordering/models"
	"shieldbox/internal/ordering/service"
	orderstore "shieldbox/internal/ordering/store/order"
)

// Sentinel values returned by accessors when a lookup fails.
const (
	QuantityNotFound = -1
	CountNotFound    = -1
	DistanceNotFound = -1.0
)

// CateringCompany identifies a registered catering company.
type CateringCompany struct {
	ID       string
	Name     string
	Postcode string
}

type options struct {
	logger     *slog.Logger
	httpClient *http.Client
	registry   prometheus.Registerer
}

type Option func(*options)

// WithLogger routes diagnostic output to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithHTTPClient overrides the HTTP client used to reach the authority.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) { o.httpClient = h }
}

// WithMetricsRegistry registers order lifecycle counters with reg. Without
// this option no metrics are collected.
func WithMetricsRegistry(reg prometheus.Registerer) Option {
	return func(o *options) { o.registry = reg }
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Individual is one shielding individual's session. It is owned by a single
// caller; concurrent use requires external synchronization.
type Individual struct {
	client  *authority.Client
	catalog *catalog.Cache
	orders  *service.Service
	logger  *slog.Logger

	registered bool
	chi        string
	postcode   string
	name       string
	surname    string
	phone      string
}

// NewIndividual builds a session against the authority at endpoint.
func NewIndividual(endpoint string, opts ...Option) *Individual {
	o := buildOptions(opts)

	clientOpts := []authority.Option{authority.WithLogger(o.logger)}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, authority.WithHTTPClient(o.httpClient))
	}
	client := authority.New(endpoint, clientOpts...)
	cat := catalog.New(client)

	svcOpts := []service.Option{service.WithLogger(o.logger)}
	if o.registry != nil {
		svcOpts = append(svcOpts, service.WithMetrics(metrics.NewWith(o.registry)))
	}

	return &Individual{
		client:  client,
		catalog: cat,
		orders:  service.New(client, cat, orderstore.NewInMemory(), svcOpts...),
		logger:  o.logger,
	}
}

// ok flattens an internal error into the boolean contract, logging the
// detail as a side channel.
func (i *Individual) ok(op string, err error) bool {
	if err != nil {
		i.logger.Warn(op+" failed", "error", err)
		return false
	}
	return true
}

// Register registers the individual with the authority by CHI number and
// stores the personal details the authority holds. Registering while
// already registered succeeds immediately without changing anything.
func (i *Individual) Register(ctx context.Context, chi string) bool {
	if i.registered {
		return true
	}
	details, err := i.client.RegisterIndividual(ctx, chi)
	if !i.ok("register individual", err) {
		return false
	}
	i.registered = true
	i.chi = chi
	i.postcode = details.Postcode
	i.name = details.Name
	i.surname = details.Surname
	i.phone = details.Phone
	return true
}

func (i *Individual) IsRegistered() bool  { return i.registered }
func (i *Individual) CHI() string         { return i.chi }
func (i *Individual) Postcode() string    { return i.postcode }
func (i *Individual) Name() string        { return i.name }
func (i *Individual) Surname() string     { return i.surname }
func (i *Individual) PhoneNumber() string { return i.phone }

// --- catalog browsing ---

// FoodBoxCount reports how many food boxes the catalog offers, or
// CountNotFound when the catalog cannot be fetched.
func (i *Individual) FoodBoxCount(ctx context.Context) int {
	if !i.registered {
		return CountNotFound
	}
	n, err := i.catalog.Count(ctx)
	if !i.ok("count food boxes", err) {
		return CountNotFound
	}
	return n
}

// FoodBoxIDs lists the ids of boxes matching the dietary preference wire
// string; the empty string matches every box. Unknown preference strings
// and fetch failures yield nil.
func (i *Individual) FoodBoxIDs(ctx context.Context, preference string) []string {
	if !i.registered {
		return nil
	}
	pref, err := models.ParseDietaryPreference(preference)
	if !i.ok("parse dietary preference", err) {
		return nil
	}
	ids, err := i.catalog.IDs(ctx, pref)
	if !i.ok("list food boxes", err) {
		return nil
	}
	return ids
}

// DietaryPreferenceForFoodBox reports a box's dietary tag, "" when unknown.
func (i *Individual) DietaryPreferenceForFoodBox(ctx context.Context, foodBoxID int) string {
	if !i.registered {
		return ""
	}
	pref, err := i.catalog.DietFor(ctx, strconv.Itoa(foodBoxID))
	if !i.ok("look up dietary preference", err) {
		return ""
	}
	return pref.String()
}

// ItemIDsForFoodBox lists a catalog box's item ids, nil when unknown.
func (i *Individual) ItemIDsForFoodBox(ctx context.Context, foodBoxID int) []int {
	if !i.registered {
		return nil
	}
	ids, err := i.catalog.ItemIDsForBox(ctx, strconv.Itoa(foodBoxID))
	if !i.ok("list food box items", err) {
		return nil
	}
	return ids
}

// ItemCountForFoodBox reports how many distinct items a catalog box holds,
// CountNotFound when unknown.
func (i *Individual) ItemCountForFoodBox(ctx context.Context, foodBoxID int) int {
	if !i.registered {
		return CountNotFound
	}
	ids, err := i.catalog.ItemIDsForBox(ctx, strconv.Itoa(foodBoxID))
	if !i.ok("count food box items", err) {
		return CountNotFound
	}
	return len(ids)
}

// ItemNameForFoodBox reports a catalog item's name, "" when unknown.
func (i *Individual) ItemNameForFoodBox(ctx context.Context, itemID, foodBoxID int) string {
	if !i.registered {
		return ""
	}
	name, err := i.catalog.ItemNameForBox(ctx, strconv.Itoa(foodBoxID), itemID)
	if !i.ok("look up item name", err) {
		return ""
	}
	return name
}

// ItemQuantityForFoodBox reports a catalog item's quantity, QuantityNotFound
// when unknown.
func (i *Individual) ItemQuantityForFoodBox(ctx context.Context, itemID, foodBoxID int) int {
	if !i.registered {
		return QuantityNotFound
	}
	qty, err := i.catalog.ItemQuantityForBox(ctx, strconv.Itoa(foodBoxID), itemID)
	if !i.ok("look up item quantity", err) {
		return QuantityNotFound
	}
	return qty
}

// --- candidate box ---

// PickFoodBox stores a private copy of the catalog box as the candidate for
// the next order. A miss clears any previously picked box.
func (i *Individual) PickFoodBox(ctx context.Context, foodBoxID int) bool {
	if !i.registered {
		return false
	}
	return i.ok("pick food box", i.orders.PickFoodBox(ctx, foodBoxID))
}

// ChangeItemQuantityForPickedFoodBox edits the candidate box, bounded by
// the catalog maximum for the item.
func (i *Individual) ChangeItemQuantityForPickedFoodBox(ctx context.Context, itemID, quantity int) bool {
	if !i.registered {
		return false
	}
	return i.ok("change picked quantity", i.orders.ChangeItemQuantity(ctx, itemID, quantity))
}

// --- orders ---

// PlaceOrder submits the picked box to the nearest catering company. It
// fails when the individual is not registered, no box is picked, an order
// was placed less than a week before now, or the authority rejects it.
func (i *Individual) PlaceOrder(ctx context.Context, now time.Time) bool {
	if !i.registered {
		i.logger.Warn("place order failed", "error", "individual not registered")
		return false
	}
	return i.ok("place order", i.orders.PlaceOrder(ctx, now, i.chi, i.postcode))
}

// EditOrder propagates the locally accumulated changes of an order to the
// authority.
func (i *Individual) EditOrder(ctx context.Context, orderNumber int) bool {
	if !i.registered {
		return false
	}
	return i.ok("edit order", i.orders.EditOrder(ctx, orderNumber))
}

// SetItemQuantityForOrder edits one line of a placed order locally. The
// order must still be in its placed state and quantities can only be held
// or decreased.
func (i *Individual) SetItemQuantityForOrder(ctx context.Context, itemID, orderNumber, quantity int) bool {
	if !i.registered {
		return false
	}
	return i.ok("set order quantity", i.orders.SetItemQuantityForOrder(ctx, itemID, orderNumber, quantity))
}

// CancelOrder asks the authority to cancel the order and mirrors the
// outcome locally. Whether cancellation is still legal is the authority's
// decision.
func (i *Individual) CancelOrder(ctx context.Context, orderNumber int) bool {
	if !i.registered {
		return false
	}
	return i.ok("cancel order", i.orders.CancelOrder(ctx, orderNumber))
}

// RequestOrderStatus pulls the authoritative status of an order and caches
// it locally.
func (i *Individual) RequestOrderStatus(ctx context.Context, orderNumber int) bool {
	if !i.registered {
		return false
	}
	return i.ok("request order status", i.orders.RefreshOrderStatus(ctx, orderNumber))
}

// OrderNumbers lists the numbers of every order placed in this session.
func (i *Individual) OrderNumbers(ctx context.Context) []int {
	if !i.registered {
		return nil
	}
	return i.orders.OrderNumbers(ctx)
}

// StatusForOrder reports the last-synchronized status of an order, "" when
// the order is unknown. No network traffic is involved.
func (i *Individual) StatusForOrder(ctx context.Context, orderNumber int) string {
	if !i.registered {
		return ""
	}
	status, err := i.orders.StatusForOrder(ctx, orderNumber)
	if !i.ok("look up order status", err) {
		return ""
	}
	return status.String()
}

// ItemIDsForOrder lists an order's item ids, nil when the order is unknown.
func (i *Individual) ItemIDsForOrder(ctx context.Context, orderNumber int) []int {
	if !i.registered {
		return nil
	}
	ids, err := i.orders.ItemIDsForOrder(ctx, orderNumber)
	if !i.ok("list order items", err) {
		return nil
	}
	return ids
}

// ItemNameForOrder reports an order item's name, "" when unknown.
func (i *Individual) ItemNameForOrder(ctx context.Context, itemID, orderNumber int) string {
	if !i.registered {
		return ""
	}
	name, err := i.orders.ItemNameForOrder(ctx, itemID, orderNumber)
	if !i.ok("look up order item name", err) {
		return ""
	}
	return name
}

// ItemQuantityForOrder reports an order item's quantity, QuantityNotFound
// when unknown.
func (i *Individual) ItemQuantityForOrder(ctx context.Context, itemID, orderNumber int) int {
	if !i.registered {
		return QuantityNotFound
	}
	qty, err := i.orders.ItemQuantityForOrder(ctx, itemID, orderNumber)
	if !i.ok("look up order item quantity", err) {
		return QuantityNotFound
	}
	return qty
}

// --- catering companies ---

// CateringCompanies lists the catering companies the authority knows about.
func (i *Individual) CateringCompanies(ctx context.Context) []CateringCompany {
	if !i.registered {
		return nil
	}
	companies, err := i.client.Caterers(ctx)
	if !i.ok("list catering companies", err) {
		return nil
	}
	out := make([]CateringCompany, len(companies))
	for n, c := range companies {
		out[n] = CateringCompany{ID: c.ID, Name: c.Name, Postcode: c.Postcode}
	}
	return out
}

// Distance reports the distance in metres between two postcodes,
// DistanceNotFound on failure.
func (i *Individual) Distance(ctx context.Context, postcodeA, postcodeB string) float64 {
	if !i.registered || postcodeA == "" || postcodeB == "" {
		return DistanceNotFound
	}
	dist, err := i.client.Distance(ctx, postcodeA, postcodeB)
	if !i.ok("measure distance", err) {
		return DistanceNotFound
	}
	return dist
}

// ClosestCateringCompany resolves the company nearest to the individual's
// registered postcode. The second return is false when none is reachable.
func (i *Individual) ClosestCateringCompany(ctx context.Context) (CateringCompany, bool) {
	if !i.registered {
		return CateringCompany{}, false
	}
	nearest, err := i.orders.NearestCaterer(ctx, i.postcode)
	if !i.ok("resolve closest caterer", err) {
		return CateringCompany{}, false
	}
	return CateringCompany{ID: nearest.ID, Name: nearest.Name, Postcode: nearest.Postcode}, true
}

// --- test/debug surface, not part of the production contract ---

func (i *Individual) SetRegistered(registered bool) { i.registered = registered }
func (i *Individual) SetCHI(chi string)             { i.chi = chi }
func (i *Individual) SetPostcode(postcode string)   { i.postcode = postcode }
func (i *Individual) SetName(name string)           { i.name = name }
func (i *Individual) SetSurname(surname string)     { i.surname = surname }
func (i *Individual) SetPhoneNumber(phone string)   { i.phone = phone }

// MoveMostRecentOrderBackByDays backdates the most recent order, simulating
// cooldown expiry without waiting real time.
func (i *Individual) MoveMostRecentOrderBackByDays(ctx context.Context, days int) bool {
	return i.ok("backdate order", i.orders.MoveMostRecentOrderBackByDays(ctx, days))
}
