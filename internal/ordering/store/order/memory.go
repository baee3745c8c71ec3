// Package order stores the orders placed within one individual's session.
package order

import (
	"context"
	"sort"
	"sync"

	"shieldbox/internal/ordering/models"
	"shieldbox/pkg/platform/sentinel"
)

// InMemory is the per-session order store. Keys are exactly the order numbers
// this individual has placed; anything else is indistinguishable from "not
// placed by this individual".
//
// The session owns the store, but a mutex guards it anyway so a concurrent
// wrapper does not need to re-implement locking.
type InMemory struct {
	mu     sync.Mutex
	orders map[int]*models.Order
}

func NewInMemory() *InMemory {
	return &InMemory{orders: make(map[int]*models.Order)}
}

// Add inserts a newly placed order, refusing duplicate numbers.
func (s *InMemory) Add(_ context.Context, o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.Number]; ok {
		return sentinel.ErrConflict
	}
	s.orders[o.Number] = o
	return nil
}

// FindByNumber returns the order or sentinel.ErrNotFound.
func (s *InMemory) FindByNumber(_ context.Context, number int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[number]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return o, nil
}

// Numbers lists all known order numbers in ascending order.
func (s *InMemory) Numbers(_ context.Context) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	numbers := make([]int, 0, len(s.orders))
	for n := range s.orders {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// MostRecent returns the order with the greatest TimeOrdered, recomputed on
// demand so backdating can never leave a stale pointer behind.
func (s *InMemory) MostRecent(_ context.Context) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *models.Order
	for _, o := range s.orders {
		if latest == nil || o.TimeOrdered.After(latest.TimeOrdered) {
			latest = o
		}
	}
	if latest == nil {
		return nil, sentinel.ErrNotFound
	}
	return latest, nil
}

// Execute runs validate then mutate against one order under the store lock,
// so a status check and the quantity edit it guards stay atomic.
func (s *InMemory) Execute(
	_ context.Context,
	number int,
	validate func(*models.Order) error,
	mutate func(*models.Order) error,
) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[number]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if err := validate(o); err != nil {
		return nil, err
	}
	if err := mutate(o); err != nil {
		return nil, err
	}
	return o, nil
}
