// Package authority is the HTTP client for the remote government authority,
// the system of record for registration, catalog contents, distances and
// canonical order status.
//
// The rest of the module treats this package as an opaque collaborator:
// given a request, it answers success-with-payload or failure. Wire shapes
// live here and nowhere else.
package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"shieldbox/internal/ordering/models"
	dErrors "shieldbox/pkg/domainerrors"
	"shieldbox/pkg/platform/sentinel"
)

// Client talks to one authority endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a client for the authority at endpoint (scheme://host[:port]).
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (string, error) {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "encoding request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "building request")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("authority request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return "", dErrors.Wrap(sentinel.ErrUnavailable, dErrors.CodeRemote, "authority unreachable")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeRemote, "reading authority response")
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("authority returned non-OK status",
			"method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)
		return "", dErrors.Newf(dErrors.CodeRemote, "authority answered HTTP %d", resp.StatusCode)
	}
	return string(raw), nil
}

// IndividualDetails is what the authority knows about a registered individual.
type IndividualDetails struct {
	Postcode string
	Name     string
	Surname  string
	Phone    string
}

// RegisterIndividual registers a shielding individual by CHI number and
// returns the personal details held by the authority. Postcode spaces are
// normalized to underscores, the form the distance endpoint expects.
func (c *Client) RegisterIndividual(ctx context.Context, chi string) (IndividualDetails, error) {
	if chi == "" {
		return IndividualDetails{}, dErrors.New(dErrors.CodeValidation, "CHI number is required")
	}
	q := url.Values{"CHI": {chi}}
	body, err := c.do(ctx, http.MethodGet, "/registerShieldingIndividual", q, nil)
	if err != nil {
		return IndividualDetails{}, err
	}
	if body == respAlreadyRegistered || body == respNoCHI {
		return IndividualDetails{}, dErrors.Newf(dErrors.CodeRemote, "registration rejected: %s", body)
	}

	var details []string
	if err := json.Unmarshal([]byte(body), &details); err != nil {
		return IndividualDetails{}, dErrors.Wrap(err, dErrors.CodeRemote, "malformed registration response")
	}
	if len(details) != 4 {
		return IndividualDetails{}, dErrors.Newf(dErrors.CodeRemote,
			"registration response has %d fields, want 4", len(details))
	}
	return IndividualDetails{
		Postcode: strings.ReplaceAll(details[0], " ", "_"),
		Name:     details[1],
		Surname:  details[2],
		Phone:    details[3],
	}, nil
}

type foodBoxItemDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"` // catalog maximum on the wire
}

type foodBoxDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	DeliveredBy string           `json:"delivered_by"`
	Diet        string           `json:"diet"`
	Contents    []foodBoxItemDTO `json:"contents"`
}

// FetchFoodBoxes pulls the full catering catalog. Satisfies catalog.Fetcher.
func (c *Client) FetchFoodBoxes(ctx context.Context) ([]*models.FoodBox, error) {
	q := url.Values{"orderOption": {"catering"}}
	body, err := c.do(ctx, http.MethodGet, "/showFoodBox", q, nil)
	if err != nil {
		return nil, err
	}

	var dtos []foodBoxDTO
	if err := json.Unmarshal([]byte(body), &dtos); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRemote, "malformed catalog response")
	}

	boxes := make([]*models.FoodBox, 0, len(dtos))
	for _, dto := range dtos {
		diet, err := models.ParseDietaryPreference(dto.Diet)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeRemote, "catalog box "+dto.ID)
		}
		items := make([]*models.FoodBoxItem, 0, len(dto.Contents))
		for _, line := range dto.Contents {
			item, err := models.NewFoodBoxItem(line.ID, line.Name, line.Quantity)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeRemote, "catalog box "+dto.ID)
			}
			items = append(items, item)
		}
		box, err := models.NewFoodBox(dto.ID, dto.Name, diet, items)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeRemote, "catalog box "+dto.ID)
		}
		box.DeliveredBy = dto.DeliveredBy
		boxes = append(boxes, box)
	}
	return boxes, nil
}

// Caterers fetches the registered catering companies. The wire encodes each
// company as "id,name,postcode"; parsing into the structured record happens
// here so nothing downstream handles delimiters.
func (c *Client) Caterers(ctx context.Context) ([]models.CateringCompany, error) {
	body, err := c.do(ctx, http.MethodGet, "/getCaterers", nil, nil)
	if err != nil {
		return nil, err
	}

	var raw []string
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRemote, "malformed caterer list")
	}

	companies := make([]models.CateringCompany, 0, len(raw))
	for _, entry := range raw {
		if entry == "" {
			continue
		}
		fields := strings.SplitN(entry, ",", 3)
		if len(fields) != 3 {
			c.logger.Warn("skipping malformed caterer record", "record", entry)
			continue
		}
		companies = append(companies, models.CateringCompany{
			ID:       fields[0],
			Name:     fields[1],
			Postcode: fields[2],
		})
	}
	return companies, nil
}

// Distance asks the authority for the distance between two postcodes.
func (c *Client) Distance(ctx context.Context, postcodeA, postcodeB string) (float64, error) {
	q := url.Values{"postcode1": {postcodeA}, "postcode2": {postcodeB}}
	body, err := c.do(ctx, http.MethodGet, "/distance", q, nil)
	if err != nil {
		return 0, err
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(body), 64)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeRemote, "malformed distance response")
	}
	return d, nil
}

// PlaceOrder submits a serialized candidate box to a catering company and
// returns the authority-assigned order number.
func (c *Client) PlaceOrder(ctx context.Context, chi string, company models.CateringCompany, payload models.OrderPayload) (int, error) {
	q := url.Values{
		"individual_id":          {chi},
		"catering_business_name": {company.Name},
		"catering_postcode":      {company.Postcode},
	}
	body, err := c.do(ctx, http.MethodPost, "/placeOrder", q, payload)
	if err != nil {
		return 0, err
	}
	if body == respPlaceOrderFailure {
		return 0, dErrors.New(dErrors.CodeRemote, "authority rejected the order")
	}
	number, err := strconv.Atoi(strings.TrimSpace(body))
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeRemote, "malformed order number")
	}
	if number < 0 {
		return 0, dErrors.Newf(dErrors.CodeRemote, "authority assigned negative order number %d", number)
	}
	return number, nil
}

// EditOrder propagates the current local state of an order's box.
func (c *Client) EditOrder(ctx context.Context, orderNumber int, payload models.OrderPayload) error {
	q := url.Values{"order_id": {strconv.Itoa(orderNumber)}}
	body, err := c.do(ctx, http.MethodPost, "/editOrder", q, payload)
	if err != nil {
		return err
	}
	if body != respTrue {
		return dErrors.New(dErrors.CodeRemote, "authority rejected the edit")
	}
	return nil
}

// CancelOrder asks the authority to cancel an order. The authority is the
// judge of whether cancellation is still legal.
func (c *Client) CancelOrder(ctx context.Context, orderNumber int) error {
	q := url.Values{"order_id": {strconv.Itoa(orderNumber)}}
	body, err := c.do(ctx, http.MethodGet, "/cancelOrder", q, nil)
	if err != nil {
		return err
	}
	if body != respTrue {
		return dErrors.New(dErrors.CodeRemote, "authority refused the cancellation")
	}
	return nil
}

// OrderStatusCode queries the authority's numeric status code for an order.
func (c *Client) OrderStatusCode(ctx context.Context, orderNumber int) (string, error) {
	q := url.Values{"order_id": {strconv.Itoa(orderNumber)}}
	body, err := c.do(ctx, http.MethodGet, "/requestStatus", q, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(body), nil
}

// RegisterCaterer registers a catering company. Already-registered counts as
// success.
func (c *Client) RegisterCaterer(ctx context.Context, name, postcode string) error {
	return c.registerBusiness(ctx, "/registerCateringCompany", name, postcode)
}

// RegisterSupermarket registers a supermarket. Already-registered counts as
// success.
func (c *Client) RegisterSupermarket(ctx context.Context, name, postcode string) error {
	return c.registerBusiness(ctx, "/registerSupermarket", name, postcode)
}

func (c *Client) registerBusiness(ctx context.Context, path, name, postcode string) error {
	q := url.Values{"business_name": {name}, "postcode": {postcode}}
	body, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return err
	}
	if body != respRegistrationSuccess && body != respAlreadyRegistered {
		return dErrors.Newf(dErrors.CodeRemote, "registration rejected: %s", body)
	}
	return nil
}

// UpdateCatererOrderStatus reports a status change for a catering order.
func (c *Client) UpdateCatererOrderStatus(ctx context.Context, orderNumber int, status models.Status) error {
	return c.updateStatus(ctx, "/updateOrderStatus", orderNumber, status)
}

// UpdateSupermarketOrderStatus reports a status change for a supermarket order.
func (c *Client) UpdateSupermarketOrderStatus(ctx context.Context, orderNumber int, status models.Status) error {
	return c.updateStatus(ctx, "/updateSupermarketOrderStatus", orderNumber, status)
}

func (c *Client) updateStatus(ctx context.Context, path string, orderNumber int, status models.Status) error {
	q := url.Values{
		"order_id":  {strconv.Itoa(orderNumber)},
		"newStatus": {status.String()},
	}
	body, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return err
	}
	if body != respTrue {
		return dErrors.New(dErrors.CodeRemote, "authority refused the status update")
	}
	return nil
}

// RecordSupermarketOrder registers an externally numbered supermarket order
// against an individual.
func (c *Client) RecordSupermarketOrder(ctx context.Context, chi string, orderNumber int, name, postcode string) error {
	q := url.Values{
		"individual_id":             {chi},
		"order_number":              {strconv.Itoa(orderNumber)},
		"supermarket_business_name": {name},
		"supermarket_postcode":      {postcode},
	}
	body, err := c.do(ctx, http.MethodGet, "/recordSupermarketOrder", q, nil)
	if err != nil {
		return err
	}
	if body != respTrue {
		return dErrors.New(dErrors.CodeRemote, "authority refused to record the order")
	}
	return nil
}

// Endpoint reports the configured authority base URL.
func (c *Client) Endpoint() string { return c.endpoint }
