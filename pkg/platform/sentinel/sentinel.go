package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and the authority client
// return these (optionally wrapped) so services can translate them into
// domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in store or catalog
// - ErrConflict: entity already present under the same key
// - ErrInvalidState: entity in wrong state for requested operation
// - ErrUnavailable: remote authority unreachable or answered garbage
//
// For validation errors (bad input, negative ids), use pkg/domainerrors.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
