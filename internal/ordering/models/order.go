package models

import (
	"time"

	dErrors "shieldbox/pkg/domainerrors"
)

// Order is the aggregate root for an order placed with a catering company.
//
// Invariants:
//   - Number is assigned by the authority and never changes
//   - Box is an order-owned copy, never shared with the catalog or a candidate
//   - Status only advances per the Status machine, or jumps to Cancelled
//     after a remote acknowledgment
//   - TimeOrdered moves backward only through the debug hook, never forward
type Order struct {
	Number      int
	Box         *FoodBox
	Status      Status
	TimeOrdered time.Time
}

// NewOrder constructs a freshly placed order around an order-owned box copy.
func NewOrder(number int, box *FoodBox, placedAt time.Time) (*Order, error) {
	if number < 0 {
		return nil, dErrors.Newf(dErrors.CodeValidation, "order number %d is negative", number)
	}
	if box == nil {
		return nil, dErrors.New(dErrors.CodeValidation, "order requires a food box")
	}
	return &Order{
		Number:      number,
		Box:         box,
		Status:      StatusPlaced,
		TimeOrdered: placedAt,
	}, nil
}

// ItemIDs returns the ids of all items in the order's box.
func (o *Order) ItemIDs() []int { return o.Box.ItemIDs() }

// ItemName returns the name for itemID, or "" when unknown.
func (o *Order) ItemName(itemID int) string { return o.Box.ItemName(itemID) }

// ItemQuantity returns the quantity for itemID, or QuantityNotFound.
func (o *Order) ItemQuantity(itemID int) int { return o.Box.ItemQuantity(itemID) }

// CanEditItems checks that the locally-mirrored status still permits quantity
// edits. Use before SetItemQuantity-style mutations.
func (o *Order) CanEditItems() error {
	if !o.Status.AllowsItemEdits() {
		return dErrors.Newf(dErrors.CodePolicy,
			"order %d is %s and no longer accepts item edits", o.Number, o.Status)
	}
	return nil
}

// SetItemQuantity applies an ordered-context quantity edit: the ceiling is the
// item's last-known quantity, so values only ratchet downward.
func (o *Order) SetItemQuantity(itemID, quantity int) error {
	if err := o.CanEditItems(); err != nil {
		return err
	}
	return o.Box.SetQuantityForItem(itemID, quantity, true)
}

// ApplyCancellation records a remote-acknowledged cancellation. The authority
// already ruled on legality, so no local pre-check happens here.
func (o *Order) ApplyCancellation() {
	o.Status = StatusCancelled
}

// ApplyRemoteStatus overwrites the local mirror with the authority's view.
func (o *Order) ApplyRemoteStatus(s Status) {
	o.Status = s
}

// Backdate shifts TimeOrdered into the past. Debug/test hook only; it exists
// so throttle expiry can be simulated without waiting a week.
func (o *Order) Backdate(d time.Duration) {
	o.TimeOrdered = o.TimeOrdered.Add(-d)
}
