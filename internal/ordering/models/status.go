package models

import (
	dErrors "shieldbox/pkg/domainerrors"
)

// Status mirrors the authority's view of an order.
//
// The machine is linear and monotonic: Placed → Packed → Dispatched →
// Delivered. Cancelled is reachable only from Placed or Packed and is
// terminal. Once Dispatched, Delivered or Cancelled is reached the order is
// immutable with respect to item edits.
type Status int

const (
	StatusPlaced Status = iota
	StatusPacked
	StatusDispatched
	StatusDelivered
	StatusCancelled
)

var statusWire = map[Status]string{
	StatusPlaced:     "placed",
	StatusPacked:     "packed",
	StatusDispatched: "dispatched",
	StatusDelivered:  "delivered",
	StatusCancelled:  "cancelled",
}

var statusParse = map[string]Status{
	"placed":     StatusPlaced,
	"packed":     StatusPacked,
	"dispatched": StatusDispatched,
	"delivered":  StatusDelivered,
	"cancelled":  StatusCancelled,
}

// statusCodes is the authority's fixed small integer-to-status table used by
// the status-query endpoint.
var statusCodes = map[string]Status{
	"0": StatusPlaced,
	"1": StatusPacked,
	"2": StatusDispatched,
	"3": StatusDelivered,
	"4": StatusCancelled,
}

// String returns the canonical wire string for the status.
func (s Status) String() string {
	return statusWire[s]
}

// ParseStatus maps a wire string to a status. Unknown strings are a parse
// failure, never a default status.
func ParseStatus(raw string) (Status, error) {
	s, ok := statusParse[raw]
	if !ok {
		return StatusPlaced, dErrors.Newf(dErrors.CodeValidation, "unknown order status %q", raw)
	}
	return s, nil
}

// StatusFromCode maps the authority's numeric response code to a status.
func StatusFromCode(code string) (Status, error) {
	s, ok := statusCodes[code]
	if !ok {
		return StatusPlaced, dErrors.Newf(dErrors.CodeRemote, "unmapped order status code %q", code)
	}
	return s, nil
}

// AllowsItemEdits reports whether item quantities may still change locally.
func (s Status) AllowsItemEdits() bool {
	return s == StatusPlaced
}

// Cancellable reports whether the order may still move to Cancelled.
func (s Status) Cancellable() bool {
	return s == StatusPlaced || s == StatusPacked
}

// CanTransitionTo reports whether the machine permits moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusCancelled {
		return s.Cancellable()
	}
	switch s {
	case StatusPlaced, StatusPacked, StatusDispatched:
		return next == s+1
	default:
		return false
	}
}
