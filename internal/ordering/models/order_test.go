package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "shieldbox/pkg/domainerrors"
)

type OrderSuite struct {
	suite.Suite
	order *Order
}

func (s *OrderSuite) SetupTest() {
	a, err := NewFoodBoxItem(1, "carrots", 3)
	s.Require().NoError(err)
	b, err := NewFoodBoxItem(4, "soup", 2)
	s.Require().NoError(err)
	box, err := NewFoodBox("2", "box b", DietVegan, []*FoodBoxItem{a, b})
	s.Require().NoError(err)

	s.order, err = NewOrder(101, box, time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
}

func TestOrderSuite(t *testing.T) {
	suite.Run(t, new(OrderSuite))
}

func (s *OrderSuite) TestConstruction() {
	s.Run("starts in Placed", func() {
		s.Equal(StatusPlaced, s.order.Status)
		s.Equal(101, s.order.Number)
	})

	s.Run("rejects negative number and missing box", func() {
		_, err := NewOrder(-1, s.order.Box, time.Now())
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		_, err = NewOrder(7, nil, time.Now())
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *OrderSuite) TestItemEdits() {
	s.Run("ratchets quantities downward while Placed", func() {
		s.Require().NoError(s.order.SetItemQuantity(1, 2))
		s.Equal(2, s.order.ItemQuantity(1))

		err := s.order.SetItemQuantity(1, 3)
		s.True(dErrors.HasCode(err, dErrors.CodePolicy))
		s.Equal(2, s.order.ItemQuantity(1))
	})

	s.Run("refuses edits after the mirror leaves Placed", func() {
		s.order.ApplyRemoteStatus(StatusPacked)
		err := s.order.SetItemQuantity(1, 1)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodePolicy))
	})
}

func (s *OrderSuite) TestStatusMirror() {
	s.Run("refresh overwrites the local mirror", func() {
		s.order.ApplyRemoteStatus(StatusDispatched)
		s.Equal(StatusDispatched, s.order.Status)
	})

	s.Run("cancellation applies without a local pre-check", func() {
		s.order.ApplyCancellation()
		s.Equal(StatusCancelled, s.order.Status)
	})
}

func (s *OrderSuite) TestBackdate() {
	before := s.order.TimeOrdered
	s.order.Backdate(7 * 24 * time.Hour)
	s.Equal(before.Add(-7*24*time.Hour), s.order.TimeOrdered)
}
