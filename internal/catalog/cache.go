// Package catalog caches the authority's food-box catalog for one session.
package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"shieldbox/internal/ordering/models"
	dErrors "shieldbox/pkg/domainerrors"
	"shieldbox/pkg/platform/sentinel"
)

// Fetcher pulls the full catalog from the remote authority.
type Fetcher interface {
	FetchFoodBoxes(ctx context.Context) ([]*models.FoodBox, error)
}

// Cache lazily populates the catalog on first demand and serves every later
// read from memory. The cached boxes are immutable templates: everything
// handed to callers that could be mutated goes out as a deep copy.
//
// A failed fetch leaves the cache unpopulated; the next read is a fresh
// attempt. Concurrent first reads collapse into a single fetch.
type Cache struct {
	fetcher Fetcher
	group   singleflight.Group

	mu    sync.RWMutex
	boxes []*models.FoodBox // nil until populated; written once
}

func New(fetcher Fetcher) *Cache {
	return &Cache{fetcher: fetcher}
}

func (c *Cache) cached() []*models.FoodBox {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.boxes
}

func (c *Cache) load(ctx context.Context) ([]*models.FoodBox, error) {
	if boxes := c.cached(); boxes != nil {
		return boxes, nil
	}
	v, err, _ := c.group.Do("catalog", func() (any, error) {
		if boxes := c.cached(); boxes != nil {
			return boxes, nil
		}
		boxes, err := c.fetcher.FetchFoodBoxes(ctx)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeRemote, "catalog fetch failed")
		}
		c.mu.Lock()
		c.boxes = boxes
		c.mu.Unlock()
		return boxes, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*models.FoodBox), nil
}

func (c *Cache) find(ctx context.Context, boxID string) (*models.FoodBox, error) {
	boxes, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, box := range boxes {
		if box.ID == boxID {
			return box, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// Count reports how many boxes the authority offers.
func (c *Cache) Count(ctx context.Context) (int, error) {
	boxes, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(boxes), nil
}

// IDs lists the ids of boxes matching the dietary preference, in catalog
// order. DietNoPreference matches every box.
func (c *Cache) IDs(ctx context.Context, pref models.DietaryPreference) ([]string, error) {
	boxes, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(boxes))
	for _, box := range boxes {
		if pref.Matches(box.Diet) {
			ids = append(ids, box.ID)
		}
	}
	return ids, nil
}

// DietFor reports the dietary tag of one catalog box.
func (c *Cache) DietFor(ctx context.Context, boxID string) (models.DietaryPreference, error) {
	box, err := c.find(ctx, boxID)
	if err != nil {
		return models.DietNone, err
	}
	return box.Diet, nil
}

// ItemIDsForBox lists the item ids of one catalog box.
func (c *Cache) ItemIDsForBox(ctx context.Context, boxID string) ([]int, error) {
	box, err := c.find(ctx, boxID)
	if err != nil {
		return nil, err
	}
	return box.ItemIDs(), nil
}

// ItemNameForBox returns an item's name within one catalog box.
func (c *Cache) ItemNameForBox(ctx context.Context, boxID string, itemID int) (string, error) {
	box, err := c.find(ctx, boxID)
	if err != nil {
		return "", err
	}
	name := box.ItemName(itemID)
	if name == "" {
		return "", sentinel.ErrNotFound
	}
	return name, nil
}

// ItemQuantityForBox returns an item's catalog quantity within one box.
func (c *Cache) ItemQuantityForBox(ctx context.Context, boxID string, itemID int) (int, error) {
	box, err := c.find(ctx, boxID)
	if err != nil {
		return models.QuantityNotFound, err
	}
	q := box.ItemQuantity(itemID)
	if q == models.QuantityNotFound {
		return q, sentinel.ErrNotFound
	}
	return q, nil
}

// CopyBox hands out a deep copy of one catalog box, never the cached
// instance itself.
func (c *Cache) CopyBox(ctx context.Context, boxID string) (*models.FoodBox, error) {
	box, err := c.find(ctx, boxID)
	if err != nil {
		return nil, err
	}
	return box.Copy(), nil
}
