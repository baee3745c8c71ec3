// Command authority-mock runs an in-memory stand-in for the government
// server, good enough to exercise the client facades end to end. State lives
// for the lifetime of the process.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"shieldbox/internal/platform/httpserver"
	"shieldbox/internal/platform/logger"
)

const catalogJSON = `[
  {"contents":[{"id":1,"name":"cucumbers","quantity":1},{"id":2,"name":"tomatoes","quantity":2},{"id":6,"name":"pork","quantity":1}],
   "delivered_by":"catering","diet":"none","id":"1","name":"box a"},
  {"contents":[{"id":1,"name":"cucumbers","quantity":2},{"id":3,"name":"onions","quantity":1},{"id":7,"name":"spinach","quantity":1}],
   "delivered_by":"catering","diet":"pollotarian","id":"2","name":"box b"},
  {"contents":[{"id":3,"name":"onions","quantity":1},{"id":4,"name":"carrots","quantity":2},{"id":8,"name":"bananas","quantity":1}],
   "delivered_by":"catering","diet":"vegan","id":"3","name":"box c"}
]`

// statuses follow the real server's numeric codes: 0 placed, 1 packed,
// 2 dispatched, 3 delivered, 4 cancelled.
var statusCodes = map[string]int{
	"placed":     0,
	"packed":     1,
	"dispatched": 2,
	"delivered":  3,
	"cancelled":  4,
}

type server struct {
	mu          sync.Mutex
	individuals map[string][]string
	businesses  map[string]bool
	caterers    []string
	orders      map[int]int
	nextOrder   int
	nextCaterer int
}

func newServer() *server {
	return &server{
		individuals: make(map[string][]string),
		businesses:  make(map[string]bool),
		orders:      make(map[int]int),
		nextOrder:   1000,
		nextCaterer: 1,
	}
}

func (s *server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/registerShieldingIndividual", s.registerIndividual)
	r.Get("/showFoodBox", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogJSON))
	})
	r.Get("/getCaterers", s.getCaterers)
	r.Get("/distance", s.distance)
	r.Post("/placeOrder", s.placeOrder)
	r.Post("/editOrder", s.editOrder)
	r.Get("/cancelOrder", s.cancelOrder)
	r.Get("/requestStatus", s.requestStatus)
	r.Get("/registerCateringCompany", s.registerCaterer)
	r.Get("/registerSupermarket", s.registerBusiness)
	r.Get("/updateOrderStatus", s.updateStatus)
	r.Get("/updateSupermarketOrderStatus", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("True"))
	})
	r.Get("/recordSupermarketOrder", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("True"))
	})
	return r
}

func (s *server) registerIndividual(w http.ResponseWriter, r *http.Request) {
	chiNumber := r.URL.Query().Get("CHI")
	if chiNumber == "" {
		w.Write([]byte("must specify CHI"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.individuals[chiNumber]; ok {
		w.Write([]byte("already registered"))
		return
	}
	details := []string{"EH16 5AY", "Ada", "Lovelace", "0131496000"}
	s.individuals[chiNumber] = details
	json.NewEncoder(w).Encode(details)
}

func (s *server) getCaterers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	json.NewEncoder(w).Encode(s.caterers)
}

// distance is deterministic nonsense: equal postcodes are 0 metres apart,
// anything else is the byte distance scaled up.
func (s *server) distance(w http.ResponseWriter, r *http.Request) {
	a, b := r.URL.Query().Get("postcode1"), r.URL.Query().Get("postcode2")
	if a == "" || b == "" {
		w.Write([]byte("-1.0"))
		return
	}
	var d float64
	for i := 0; i < len(a) && i < len(b); i++ {
		diff := int(a[i]) - int(b[i])
		if diff < 0 {
			diff = -diff
		}
		d += float64(diff) * 100
	}
	fmt.Fprintf(w, "%.1f", d)
}

func (s *server) placeOrder(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("individual_id") == "" {
		w.Write([]byte("must provide individual_id and catering_id. The " +
			"individual and the catering must be registered before placing an order"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	number := s.nextOrder
	s.nextOrder++
	s.orders[number] = statusCodes["placed"]
	fmt.Fprintf(w, "%d", number)
}

func (s *server) editOrder(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(r.URL.Query().Get("order_id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	if status, ok := s.orders[number]; ok && status == statusCodes["placed"] {
		w.Write([]byte("True"))
		return
	}
	w.Write([]byte("False"))
}

func (s *server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(r.URL.Query().Get("order_id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	if status, ok := s.orders[number]; ok && status <= statusCodes["packed"] {
		s.orders[number] = statusCodes["cancelled"]
		w.Write([]byte("True"))
		return
	}
	w.Write([]byte("False"))
}

func (s *server) requestStatus(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(r.URL.Query().Get("order_id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	if status, ok := s.orders[number]; ok {
		fmt.Fprintf(w, "%d", status)
		return
	}
	w.Write([]byte("-1"))
}

func (s *server) registerCaterer(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("business_name")
	postcode := r.URL.Query().Get("postcode")
	if name == "" || postcode == "" {
		w.Write([]byte("must specify business_name and postcode"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	key := name + "|" + postcode
	if s.businesses[key] {
		w.Write([]byte("already registered"))
		return
	}
	s.businesses[key] = true
	s.caterers = append(s.caterers, fmt.Sprintf("%d,%s,%s", s.nextCaterer, name, postcode))
	s.nextCaterer++
	w.Write([]byte("registered new"))
}

func (s *server) registerBusiness(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("business_name")
	postcode := r.URL.Query().Get("postcode")
	if name == "" || postcode == "" {
		w.Write([]byte("must specify business_name and postcode"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	key := name + "|" + postcode
	if s.businesses[key] {
		w.Write([]byte("already registered"))
		return
	}
	s.businesses[key] = true
	w.Write([]byte("registered new"))
}

func (s *server) updateStatus(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(r.URL.Query().Get("order_id"))
	next, ok := statusCodes[r.URL.Query().Get("newStatus")]

	s.mu.Lock()
	defer s.mu.Unlock()
	current, exists := s.orders[number]
	if !ok || !exists || next != current+1 || next > statusCodes["delivered"] {
		w.Write([]byte("False"))
		return
	}
	s.orders[number] = next
	w.Write([]byte("True"))
}

func main() {
	addr := flag.String("addr", ":5000", "listen address")
	flag.Parse()

	log := logger.New()
	srv := httpserver.New(*addr, newServer().router())

	log.Info("starting authority mock", "addr", *addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
