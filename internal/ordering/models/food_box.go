package models

import (
	dErrors "shieldbox/pkg/domainerrors"
)

// QuantityNotFound is the sentinel returned when an item id does not resolve.
const QuantityNotFound = -1

// FoodBoxItem is a single line item inside a food box.
//
// Invariants:
//   - 0 ≤ Quantity ≤ ceiling, where the ceiling is Max for a free-standing
//     candidate and the item's current Quantity once the box belongs to a
//     placed order (quantities only ratchet downward after placement)
//   - Max is the immutable catalog maximum
//
// Items are owned exclusively by the FoodBox that contains them.
type FoodBoxItem struct {
	ID       int
	Name     string
	Max      int
	Quantity int
}

// NewFoodBoxItem builds an item with its quantity initialized to the catalog
// maximum. Initialization happens here, at construction time, never lazily on
// first read.
func NewFoodBoxItem(id int, name string, max int) (*FoodBoxItem, error) {
	if id < 0 {
		return nil, dErrors.Newf(dErrors.CodeValidation, "item id %d is negative", id)
	}
	if max < 0 {
		return nil, dErrors.Newf(dErrors.CodeValidation, "item %d max quantity %d is negative", id, max)
	}
	return &FoodBoxItem{ID: id, Name: name, Max: max, Quantity: max}, nil
}

// setQuantity applies the quantity invariant to this item alone. The ceiling
// is the catalog maximum for an unordered box and the item's last-known
// quantity once ordered.
func (i *FoodBoxItem) setQuantity(quantity int, ordered bool) error {
	if quantity < 0 {
		return dErrors.Newf(dErrors.CodeValidation, "quantity %d is negative", quantity)
	}
	ceiling := i.Max
	if ordered {
		ceiling = i.Quantity
	}
	if quantity > ceiling {
		return dErrors.Newf(dErrors.CodePolicy,
			"quantity %d exceeds ceiling %d for item %d", quantity, ceiling, i.ID)
	}
	i.Quantity = quantity
	return nil
}

// FoodBox is the aggregate root for a box of food items.
//
// Invariants:
//   - item ids are unique within Items
//   - no successful mutation may leave every item at quantity zero
//   - catalog instances are immutable templates; candidate and order
//     instances are deep copies that never alias catalog state
type FoodBox struct {
	ID          string
	Name        string
	Diet        DietaryPreference
	DeliveredBy string
	Items       []*FoodBoxItem
}

// NewFoodBox validates and assembles a box from its items.
func NewFoodBox(id, name string, diet DietaryPreference, items []*FoodBoxItem) (*FoodBox, error) {
	if id == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "food box id cannot be empty")
	}
	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if seen[item.ID] {
			return nil, dErrors.Newf(dErrors.CodeValidation, "duplicate item id %d in box %s", item.ID, id)
		}
		seen[item.ID] = true
	}
	return &FoodBox{ID: id, Name: name, Diet: diet, Items: items}, nil
}

func (b *FoodBox) find(itemID int) *FoodBoxItem {
	for _, item := range b.Items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}

// ItemIDs returns the ids of all items in catalog order.
func (b *FoodBox) ItemIDs() []int {
	ids := make([]int, 0, len(b.Items))
	for _, item := range b.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// ItemQuantity returns the current quantity for itemID, or QuantityNotFound.
func (b *FoodBox) ItemQuantity(itemID int) int {
	item := b.find(itemID)
	if item == nil {
		return QuantityNotFound
	}
	return item.Quantity
}

// ItemName returns the name for itemID, or the empty string when unknown.
func (b *FoodBox) ItemName(itemID int) string {
	item := b.find(itemID)
	if item == nil {
		return ""
	}
	return item.Name
}

// SetQuantityForItem applies the quantity invariant for one item.
//
// The box-level zero-out guard runs first: summing every other item's
// quantity plus the proposed value must not come to zero, so an order can
// never be reduced to an empty box. On any failure no state changes.
func (b *FoodBox) SetQuantityForItem(itemID, quantity int, ordered bool) error {
	if itemID < 0 {
		return dErrors.Newf(dErrors.CodeValidation, "item id %d is negative", itemID)
	}
	if quantity < 0 {
		return dErrors.Newf(dErrors.CodeValidation, "quantity %d is negative", quantity)
	}
	item := b.find(itemID)
	if item == nil {
		return dErrors.Newf(dErrors.CodeNotFound, "no item %d in box %s", itemID, b.ID)
	}
	if quantity == 0 {
		total := 0
		for _, other := range b.Items {
			if other.ID == itemID {
				total += quantity
			} else {
				total += other.Quantity
			}
		}
		if total == 0 {
			return dErrors.Newf(dErrors.CodePolicy,
				"zeroing item %d would empty box %s", itemID, b.ID)
		}
	}
	return item.setQuantity(quantity, ordered)
}

// Copy returns a fully independent deep clone. Mutating the clone never
// affects this box or any other copy.
func (b *FoodBox) Copy() *FoodBox {
	items := make([]*FoodBoxItem, len(b.Items))
	for i, item := range b.Items {
		dup := *item
		items[i] = &dup
	}
	return &FoodBox{
		ID:          b.ID,
		Name:        b.Name,
		Diet:        b.Diet,
		DeliveredBy: b.DeliveredBy,
		Items:       items,
	}
}

// OrderLine is the wire shape of one item when placing or editing an order:
// only the id, name and current quantity travel.
type OrderLine struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderPayload is the wire shape of a box submitted to the authority.
type OrderPayload struct {
	Contents []OrderLine `json:"contents"`
}

// Serialize produces the order payload for this box.
func (b *FoodBox) Serialize() OrderPayload {
	lines := make([]OrderLine, 0, len(b.Items))
	for _, item := range b.Items {
		lines = append(lines, OrderLine{ID: item.ID, Name: item.Name, Quantity: item.Quantity})
	}
	return OrderPayload{Contents: lines}
}
