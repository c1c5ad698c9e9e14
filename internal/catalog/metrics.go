package catalog

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the extraction pipeline.
type Metrics struct {
	Registry        *prometheus.Registry
	RunsTotal       *prometheus.CounterVec
	RunDuration     prometheus.Histogram
	CategoriesTotal *prometheus.CounterVec
	ProductsTotal   prometheus.Counter
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_runs_total",
			Help: "Total extraction runs by outcome.",
		},
		[]string{"outcome"},
	)
	runDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_run_duration_seconds",
			Help:    "Wall-clock duration of one extraction run.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
	categories := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_categories_total",
			Help: "Total category sections processed by outcome.",
		},
		[]string{"outcome"},
	)
	products := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_products_extracted_total",
			Help: "Total product records extracted.",
		},
	)

	registry.MustRegister(runs, runDuration, categories, products)

	return &Metrics{
		Registry:        registry,
		RunsTotal:       runs,
		RunDuration:     runDuration,
		CategoriesTotal: categories,
		ProductsTotal:   products,
	}
}

// ObserveRun records one finished run.
func (m *Metrics) ObserveRun(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(outcome).Inc()
	m.RunDuration.Observe(d.Seconds())
}

// IncCategory increments the category counter for an outcome label.
func (m *Metrics) IncCategory(outcome string) {
	if m == nil {
		return
	}
	m.CategoriesTotal.WithLabelValues(outcome).Inc()
}

// AddProducts adds extracted records to the product counter.
func (m *Metrics) AddProducts(n int) {
	if m == nil {
		return
	}
	m.ProductsTotal.Add(float64(n))
}
