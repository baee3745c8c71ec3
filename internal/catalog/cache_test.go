package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"shieldbox/internal/ordering/models"
	dErrors "shieldbox/pkg/domainerrors"
	"shieldbox/pkg/platform/sentinel"
)

type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	boxes []*models.FoodBox
	err   error
}

func (f *fakeFetcher) FetchFoodBoxes(context.Context) ([]*models.FoodBox, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.boxes, nil
}

type CacheSuite struct {
	suite.Suite
	fetcher *fakeFetcher
	cache   *Cache
	ctx     context.Context
}

func (s *CacheSuite) SetupTest() {
	s.fetcher = &fakeFetcher{boxes: s.catalogBoxes()}
	s.cache = New(s.fetcher)
	s.ctx = context.Background()
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) catalogBoxes() []*models.FoodBox {
	newItem := func(id int, name string, max int) *models.FoodBoxItem {
		item, err := models.NewFoodBoxItem(id, name, max)
		s.Require().NoError(err)
		return item
	}
	box1, err := models.NewFoodBox("1", "box a", models.DietNone, []*models.FoodBoxItem{
		newItem(1, "cucumbers", 1),
		newItem(2, "tomatoes", 2),
		newItem(6, "pork", 1),
	})
	s.Require().NoError(err)
	box2, err := models.NewFoodBox("2", "box b", models.DietVegan, []*models.FoodBoxItem{
		newItem(1, "cucumbers", 2),
		newItem(4, "soup", 1),
	})
	s.Require().NoError(err)
	return []*models.FoodBox{box1, box2}
}

func (s *CacheSuite) TestPopulatesOnce() {
	n, err := s.cache.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	_, err = s.cache.IDs(s.ctx, models.DietNoPreference)
	s.Require().NoError(err)
	s.Equal(1, s.fetcher.calls, "second read must be served from the cache")
}

func (s *CacheSuite) TestDietaryFilter() {
	ids, err := s.cache.IDs(s.ctx, models.DietNoPreference)
	s.Require().NoError(err)
	s.Equal([]string{"1", "2"}, ids)

	ids, err = s.cache.IDs(s.ctx, models.DietVegan)
	s.Require().NoError(err)
	s.Equal([]string{"2"}, ids)

	diet, err := s.cache.DietFor(s.ctx, "2")
	s.Require().NoError(err)
	s.Equal(models.DietVegan, diet)
}

func (s *CacheSuite) TestBoxAccessors() {
	ids, err := s.cache.ItemIDsForBox(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 6}, ids)

	name, err := s.cache.ItemNameForBox(s.ctx, "1", 2)
	s.Require().NoError(err)
	s.Equal("tomatoes", name)

	q, err := s.cache.ItemQuantityForBox(s.ctx, "1", 6)
	s.Require().NoError(err)
	s.Equal(1, q)

	_, err = s.cache.ItemQuantityForBox(s.ctx, "1", 42)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.cache.ItemIDsForBox(s.ctx, "404")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *CacheSuite) TestCopyBoxIndependence() {
	clone, err := s.cache.CopyBox(s.ctx, "1")
	s.Require().NoError(err)
	s.Require().NoError(clone.SetQuantityForItem(2, 0, false))

	q, err := s.cache.ItemQuantityForBox(s.ctx, "1", 2)
	s.Require().NoError(err)
	s.Equal(2, q, "mutating a copy must never reach the catalog instance")
}

func (s *CacheSuite) TestFetchFailure() {
	s.fetcher.err = errors.New("boom")

	_, err := s.cache.Count(s.ctx)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeRemote))

	// The cache stays unpopulated; the next read is a fresh attempt.
	s.fetcher.err = nil
	n, err := s.cache.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)
	s.Equal(2, s.fetcher.calls)
}

func (s *CacheSuite) TestConcurrentFirstAccess() {
	const readers = 16
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.cache.Count(s.ctx)
			s.NoError(err)
		}()
	}
	wg.Wait()
	s.Equal(1, s.fetcher.calls, "concurrent first reads must collapse into one fetch")
}
