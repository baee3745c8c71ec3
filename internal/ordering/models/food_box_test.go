package models

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "shieldbox/pkg/domainerrors"
)

type FoodBoxSuite struct {
	suite.Suite
	box *FoodBox
}

func (s *FoodBoxSuite) SetupTest() {
	s.box = s.newBox()
}

func TestFoodBoxSuite(t *testing.T) {
	suite.Run(t, new(FoodBoxSuite))
}

// newBox mirrors catalog box "1": item 1 qty 1, item 2 qty 2, item 6 qty 1.
func (s *FoodBoxSuite) newBox() *FoodBox {
	items := make([]*FoodBoxItem, 0, 3)
	for _, tc := range []struct {
		id, max int
		name    string
	}{
		{1, 1, "cucumbers"},
		{2, 2, "tomatoes"},
		{6, 1, "pork"},
	} {
		item, err := NewFoodBoxItem(tc.id, tc.name, tc.max)
		s.Require().NoError(err)
		items = append(items, item)
	}
	box, err := NewFoodBox("1", "box a", DietNone, items)
	s.Require().NoError(err)
	return box
}

func (s *FoodBoxSuite) TestConstruction() {
	s.Run("initializes quantity to catalog maximum", func() {
		item, err := NewFoodBoxItem(3, "eggs", 4)
		s.Require().NoError(err)
		s.Equal(4, item.Quantity)
	})

	s.Run("rejects negative id and max", func() {
		_, err := NewFoodBoxItem(-1, "eggs", 4)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		_, err = NewFoodBoxItem(3, "eggs", -4)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects duplicate item ids", func() {
		a, _ := NewFoodBoxItem(1, "a", 1)
		b, _ := NewFoodBoxItem(1, "b", 1)
		_, err := NewFoodBox("9", "dup", DietNone, []*FoodBoxItem{a, b})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *FoodBoxSuite) TestSetQuantityForItem() {
	s.Run("sets within catalog ceiling when unordered", func() {
		s.Require().NoError(s.box.SetQuantityForItem(2, 1, false))
		s.Equal(1, s.box.ItemQuantity(2))

		// Back up to the catalog maximum is still legal for a candidate.
		s.Require().NoError(s.box.SetQuantityForItem(2, 2, false))
		s.Equal(2, s.box.ItemQuantity(2))
	})

	s.Run("rejects quantity above catalog maximum", func() {
		err := s.box.SetQuantityForItem(2, 3, false)
		s.True(dErrors.HasCode(err, dErrors.CodePolicy))
		s.Equal(2, s.box.ItemQuantity(2))
	})

	s.Run("rejects negative quantity and id", func() {
		err := s.box.SetQuantityForItem(2, -1, false)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		err = s.box.SetQuantityForItem(-2, 1, false)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects unknown item id", func() {
		err := s.box.SetQuantityForItem(99, 1, false)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("idempotent on current value", func() {
		current := s.box.ItemQuantity(6)
		s.Require().NoError(s.box.SetQuantityForItem(6, current, false))
		s.Equal(current, s.box.ItemQuantity(6))
		s.Equal(1, s.box.ItemQuantity(1))
		s.Equal(2, s.box.ItemQuantity(2))
	})
}

func (s *FoodBoxSuite) TestOrderedCeilingRatchet() {
	s.Run("ceiling is current quantity once ordered", func() {
		s.Require().NoError(s.box.SetQuantityForItem(2, 1, true))

		// Back toward the catalog maximum is no longer legal.
		err := s.box.SetQuantityForItem(2, 2, true)
		s.True(dErrors.HasCode(err, dErrors.CodePolicy))
		s.Equal(1, s.box.ItemQuantity(2))
	})

	s.Run("holding the current value still succeeds", func() {
		s.Require().NoError(s.box.SetQuantityForItem(2, 1, true))
		s.Require().NoError(s.box.SetQuantityForItem(2, 1, true))
		s.Equal(1, s.box.ItemQuantity(2))
	})
}

func (s *FoodBoxSuite) TestZeroOutGuard() {
	s.Run("refuses to zero the last non-empty item", func() {
		a, _ := NewFoodBoxItem(1, "a", 2)
		b, _ := NewFoodBoxItem(2, "b", 1)
		box, err := NewFoodBox("5", "pair", DietNone, []*FoodBoxItem{a, b})
		s.Require().NoError(err)

		s.Require().NoError(box.SetQuantityForItem(2, 0, false))

		err = box.SetQuantityForItem(1, 0, false)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodePolicy))
		s.Equal(2, box.ItemQuantity(1), "failed mutation must not change state")
	})

	s.Run("allows zeroing while another item holds quantity", func() {
		s.Require().NoError(s.box.SetQuantityForItem(1, 0, false))
		s.Equal(0, s.box.ItemQuantity(1))
	})
}

func (s *FoodBoxSuite) TestAccessors() {
	s.Run("returns ids in catalog order", func() {
		s.Equal([]int{1, 2, 6}, s.box.ItemIDs())
	})

	s.Run("returns sentinels for unknown items", func() {
		s.Equal(QuantityNotFound, s.box.ItemQuantity(42))
		s.Equal("", s.box.ItemName(42))
	})

	s.Run("finds names by id", func() {
		s.Equal("tomatoes", s.box.ItemName(2))
	})
}

func (s *FoodBoxSuite) TestCopyIndependence() {
	clone := s.box.Copy()
	s.Require().NoError(clone.SetQuantityForItem(2, 0, false))

	s.Equal(2, s.box.ItemQuantity(2), "mutating a copy must not touch the original")
	s.Equal(0, clone.ItemQuantity(2))
}

func (s *FoodBoxSuite) TestSerialize() {
	s.Require().NoError(s.box.SetQuantityForItem(2, 1, false))
	payload := s.box.Serialize()

	s.Equal([]OrderLine{
		{ID: 1, Name: "cucumbers", Quantity: 1},
		{ID: 2, Name: "tomatoes", Quantity: 1},
		{ID: 6, Name: "pork", Quantity: 1},
	}, payload.Contents)
}
