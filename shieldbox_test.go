package shieldbox_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"shieldbox"
)

// fakeAuthority mimics the government server's text-over-HTTP API, assigning
// incrementing order numbers.
type fakeAuthority struct {
	*chi.Mux
	nextOrder int
}

func newFakeAuthority() *fakeAuthority {
	f := &fakeAuthority{Mux: chi.NewRouter(), nextOrder: 1523}

	f.Get("/registerShieldingIndividual", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("CHI") == "" {
			w.Write([]byte("must specify CHI"))
			return
		}
		w.Write([]byte(`["EH16 5AY","Ada","Lovelace","0131496000"]`))
	})
	f.Get("/showFoodBox", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"contents":[{"id":1,"name":"cucumbers","quantity":1},{"id":2,"name":"tomatoes","quantity":2},{"id":6,"name":"pork","quantity":1}],
			 "delivered_by":"catering","diet":"none","id":"1","name":"box a"},
			{"contents":[{"id":1,"name":"cucumbers","quantity":2},{"id":4,"name":"soup","quantity":1}],
			 "delivered_by":"catering","diet":"vegan","id":"2","name":"box b"}
		]`))
	})
	f.Get("/getCaterers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["1,Alba Catering,EH1_1AA","2,Lothian Kitchen,EH2_2BB"]`))
	})
	f.Get("/distance", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("postcode2") == "EH2_2BB" {
			w.Write([]byte("120.5"))
			return
		}
		w.Write([]byte("4502.75"))
	})
	f.Post("/placeOrder", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strconv.Itoa(f.nextOrder)))
		f.nextOrder++
	})
	f.Post("/editOrder", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("True"))
	})
	f.Get("/cancelOrder", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("True"))
	})
	f.Get("/requestStatus", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("2"))
	})
	f.Get("/registerCateringCompany", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("registered new"))
	})
	f.Get("/registerSupermarket", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("already registered"))
	})
	f.Get("/updateOrderStatus", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("newStatus") == "packed" {
			w.Write([]byte("True"))
			return
		}
		w.Write([]byte("False"))
	})
	f.Get("/updateSupermarketOrderStatus", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("True"))
	})
	f.Get("/recordSupermarketOrder", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("True"))
	})
	return f
}

type FacadeSuite struct {
	suite.Suite
	server *httptest.Server
	ctx    context.Context
	now    time.Time
}

func (s *FacadeSuite) SetupTest() {
	s.server = httptest.NewServer(newFakeAuthority())
	s.ctx = context.Background()
	s.now = time.Date(2021, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func (s *FacadeSuite) TearDownTest() {
	s.server.Close()
}

func (s *FacadeSuite) registered() *shieldbox.Individual {
	ind := shieldbox.NewIndividual(s.server.URL)
	s.Require().True(ind.Register(s.ctx, "1211121995"))
	return ind
}

func (s *FacadeSuite) TestRegisterIndividual() {
	ind := shieldbox.NewIndividual(s.server.URL)

	s.False(ind.IsRegistered())
	s.True(ind.Register(s.ctx, "1211121995"))
	s.True(ind.IsRegistered())
	s.Equal("1211121995", ind.CHI())
	s.Equal("EH16_5AY", ind.Postcode())
	s.Equal("Ada", ind.Name())
	s.Equal("Lovelace", ind.Surname())
	s.Equal("0131496000", ind.PhoneNumber())

	s.Run("repeat registration is a no-op success", func() {
		s.True(ind.Register(s.ctx, "9999999999"))
		s.Equal("1211121995", ind.CHI())
	})

	s.Run("empty CHI is rejected", func() {
		fresh := shieldbox.NewIndividual(s.server.URL)
		s.False(fresh.Register(s.ctx, ""))
		s.False(fresh.IsRegistered())
	})
}

func (s *FacadeSuite) TestCatalogBrowsing() {
	ind := s.registered()

	s.Equal(2, ind.FoodBoxCount(s.ctx))
	s.Equal([]string{"1", "2"}, ind.FoodBoxIDs(s.ctx, ""))
	s.Equal([]string{"2"}, ind.FoodBoxIDs(s.ctx, "vegan"))
	s.Nil(ind.FoodBoxIDs(s.ctx, "carnivore"))

	s.Equal("none", ind.DietaryPreferenceForFoodBox(s.ctx, 1))
	s.Equal([]int{1, 2, 6}, ind.ItemIDsForFoodBox(s.ctx, 1))
	s.Equal(3, ind.ItemCountForFoodBox(s.ctx, 1))
	s.Equal("soup", ind.ItemNameForFoodBox(s.ctx, 4, 2))
	s.Equal(2, ind.ItemQuantityForFoodBox(s.ctx, 2, 1))

	s.Run("unknown box and item give sentinels", func() {
		s.Equal("", ind.DietaryPreferenceForFoodBox(s.ctx, 99))
		s.Nil(ind.ItemIDsForFoodBox(s.ctx, 99))
		s.Equal(shieldbox.CountNotFound, ind.ItemCountForFoodBox(s.ctx, 99))
		s.Equal("", ind.ItemNameForFoodBox(s.ctx, 42, 1))
		s.Equal(shieldbox.QuantityNotFound, ind.ItemQuantityForFoodBox(s.ctx, 42, 1))
	})
}

func (s *FacadeSuite) TestPickAndPlace() {
	ind := s.registered()

	s.False(ind.PickFoodBox(s.ctx, 99))
	s.True(ind.PickFoodBox(s.ctx, 1))
	s.True(ind.ChangeItemQuantityForPickedFoodBox(s.ctx, 2, 1))

	s.True(ind.PlaceOrder(s.ctx, s.now))
	s.Equal([]int{1523}, ind.OrderNumbers(s.ctx))
	s.Equal("placed", ind.StatusForOrder(s.ctx, 1523))
	s.Equal([]int{1, 2, 6}, ind.ItemIDsForOrder(s.ctx, 1523))
	s.Equal(1, ind.ItemQuantityForOrder(s.ctx, 2, 1523))

	s.Run("catalog copy is untouched by the candidate edit", func() {
		s.Equal(2, ind.ItemQuantityForFoodBox(s.ctx, 2, 1))
	})

	s.Run("placing again without a pick fails", func() {
		s.False(ind.PlaceOrder(s.ctx, s.now))
	})

	s.Run("throttle blocks until the cooldown is backdated away", func() {
		s.True(ind.PickFoodBox(s.ctx, 2))
		s.False(ind.PlaceOrder(s.ctx, s.now.Add(6*24*time.Hour)))
		s.True(ind.MoveMostRecentOrderBackByDays(s.ctx, 8))
		s.True(ind.PlaceOrder(s.ctx, s.now))
		s.Equal([]int{1523, 1524}, ind.OrderNumbers(s.ctx))
	})
}

func (s *FacadeSuite) TestOrderLifecycle() {
	ind := s.registered()
	s.Require().True(ind.PickFoodBox(s.ctx, 1))
	s.Require().True(ind.PlaceOrder(s.ctx, s.now))

	s.Run("ratchet on a placed order", func() {
		s.True(ind.SetItemQuantityForOrder(s.ctx, 2, 1523, 1))
		s.False(ind.SetItemQuantityForOrder(s.ctx, 2, 1523, 2))
		s.Equal(1, ind.ItemQuantityForOrder(s.ctx, 2, 1523))
	})

	s.Run("edit propagates", func() {
		s.True(ind.EditOrder(s.ctx, 1523))
		s.False(ind.EditOrder(s.ctx, 9999))
	})

	s.Run("status refresh mirrors the authority", func() {
		s.True(ind.RequestOrderStatus(s.ctx, 1523))
		s.Equal("dispatched", ind.StatusForOrder(s.ctx, 1523))
		s.False(ind.RequestOrderStatus(s.ctx, 9999))
	})

	s.Run("cancel mirrors the acknowledgment", func() {
		s.True(ind.CancelOrder(s.ctx, 1523))
		s.Equal("cancelled", ind.StatusForOrder(s.ctx, 1523))
		s.False(ind.CancelOrder(s.ctx, 9999))
	})
}

func (s *FacadeSuite) TestCateringCompanies() {
	ind := s.registered()

	companies := ind.CateringCompanies(s.ctx)
	s.Equal([]shieldbox.CateringCompany{
		{ID: "1", Name: "Alba Catering", Postcode: "EH1_1AA"},
		{ID: "2", Name: "Lothian Kitchen", Postcode: "EH2_2BB"},
	}, companies)

	s.InDelta(120.5, ind.Distance(s.ctx, "EH16_5AY", "EH2_2BB"), 0.001)
	s.Equal(shieldbox.DistanceNotFound, ind.Distance(s.ctx, "", "EH2_2BB"))

	closest, found := ind.ClosestCateringCompany(s.ctx)
	s.True(found)
	s.Equal("Lothian Kitchen", closest.Name)
}

func (s *FacadeSuite) TestUnregisteredIsInert() {
	ind := shieldbox.NewIndividual(s.server.URL)

	s.False(ind.PlaceOrder(s.ctx, s.now))
	s.False(ind.EditOrder(s.ctx, 1523))
	s.False(ind.CancelOrder(s.ctx, 1523))
	s.False(ind.RequestOrderStatus(s.ctx, 1523))
	s.Nil(ind.CateringCompanies(s.ctx))
	s.Equal(shieldbox.DistanceNotFound, ind.Distance(s.ctx, "EH1_1AA", "EH2_2BB"))
	_, found := ind.ClosestCateringCompany(s.ctx)
	s.False(found)

	s.Run("catalog browsing and picking need registration", func() {
		s.False(ind.PickFoodBox(s.ctx, 1))
		s.False(ind.ChangeItemQuantityForPickedFoodBox(s.ctx, 1, 1))
		s.Equal(shieldbox.CountNotFound, ind.FoodBoxCount(s.ctx))
		s.Nil(ind.FoodBoxIDs(s.ctx, ""))
		s.Equal("", ind.DietaryPreferenceForFoodBox(s.ctx, 1))
		s.Nil(ind.ItemIDsForFoodBox(s.ctx, 1))
		s.Equal("", ind.ItemNameForFoodBox(s.ctx, 1, 1))
		s.Equal(shieldbox.QuantityNotFound, ind.ItemQuantityForFoodBox(s.ctx, 1, 1))
		s.Nil(ind.OrderNumbers(s.ctx))
		s.Equal("", ind.StatusForOrder(s.ctx, 1523))
	})

	s.Run("debug setters reopen the session", func() {
		ind.SetRegistered(true)
		ind.SetCHI("1211121995")
		ind.SetPostcode("EH16_5AY")
		s.True(ind.IsRegistered())
		s.True(ind.PickFoodBox(s.ctx, 1))
		s.True(ind.PlaceOrder(s.ctx, s.now))
	})
}

func (s *FacadeSuite) TestCatererFacade() {
	cat := shieldbox.NewCaterer(s.server.URL)

	s.False(cat.IsRegistered())
	s.True(cat.Register(s.ctx, "Alba Catering", "EH1_1AA"))
	s.True(cat.IsRegistered())
	s.Equal("Alba Catering", cat.Name())

	s.True(cat.UpdateOrderStatus(s.ctx, 1523, "packed"))
	s.False(cat.UpdateOrderStatus(s.ctx, 1523, "dispatched"))
	s.False(cat.UpdateOrderStatus(s.ctx, 1523, "lost-in-transit"))
}

func (s *FacadeSuite) TestSupermarketFacade() {
	sm := shieldbox.NewSupermarket(s.server.URL)

	s.True(sm.Register(s.ctx, "Corner Shop", "EH8_9YL"))
	s.True(sm.IsRegistered())

	s.True(sm.RecordOrder(s.ctx, "1211121995", 42))
	s.False(sm.RecordOrder(s.ctx, "", 42))
	s.True(sm.UpdateOrderStatus(s.ctx, 42, "dispatched"))
	s.False(sm.UpdateOrderStatus(s.ctx, 42, "lost-in-transit"))
}

func TestFacadeSuite(t *testing.T) {
	suite.Run(t, new(FacadeSuite))
}
