package services

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	PurchaseStockSkips prometheus.Counter
	ReturnsSettled     *prometheus.CounterVec
}

// NewMetrics builds the domain counters and registers them on reg when it is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PurchaseStockSkips: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "medstore_purchase_stock_skips_total",
			Help: "Purchase items whose batch stock could not be incremented",
		}),
		ReturnsSettled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "medstore_returns_settled_total",
				Help: "Returns settled, by return type and settlement",
			},
			[]string{"type", "settlement"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.PurchaseStockSkips, m.ReturnsSettled)
	}
	return m
}
