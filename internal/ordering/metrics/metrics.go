// Package metrics exposes Prometheus counters for the ordering domain.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the ordering counters. A nil *Metrics is safe to use so
// callers can leave metrics unwired in tests.
type Metrics struct {
	OrdersPlaced        prometheus.Counter
	OrdersCancelled     prometheus.Counter
	OrderEdits          prometheus.Counter
	StatusRefreshes     prometheus.Counter
	PlacementsThrottled prometheus.Counter
}

// New creates and registers the ordering metrics on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates the ordering metrics against a specific registerer.
func NewWith(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		OrdersPlaced: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "shieldbox_orders_placed_total",
			Help: "Orders successfully placed with a catering company",
		}),
		OrdersCancelled: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "shieldbox_orders_cancelled_total",
			Help: "Orders cancelled after remote acknowledgment",
		}),
		OrderEdits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "shieldbox_order_edits_total",
			Help: "Order edits propagated to the authority",
		}),
		StatusRefreshes: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "shieldbox_status_refreshes_total",
			Help: "Order status refreshes pulled from the authority",
		}),
		PlacementsThrottled: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "shieldbox_placements_throttled_total",
			Help: "Placements rejected by the order cooldown window",
		}),
	}
}

func (m *Metrics) IncOrdersPlaced() {
	if m != nil {
		m.OrdersPlaced.Inc()
	}
}

func (m *Metrics) IncOrdersCancelled() {
	if m != nil {
		m.OrdersCancelled.Inc()
	}
}

func (m *Metrics) IncOrderEdits() {
	if m != nil {
		m.OrderEdits.Inc()
	}
}

func (m *Metrics) IncStatusRefreshes() {
	if m != nil {
		m.StatusRefreshes.Inc()
	}
}

func (m *Metrics) IncPlacementsThrottled() {
	if m != nil {
		m.PlacementsThrottled.Inc()
	}
}
