package metrics

import "github.com/prometheus/client_golang/prometheus"

// Listing query Prometheus metrics.
var (
	ListingQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobgrid",
			Name:      "listing_queries_total",
			Help:      "Total number of listing queries",
		},
		[]string{"surface", "status"},
	)

	ListingQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jobgrid",
			Name:      "listing_query_duration_seconds",
			Help:      "Listing query duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"surface"},
	)

	ListingResultSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jobgrid",
			Name:      "listing_result_size",
			Help:      "Number of items matched by a listing query before pagination",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"surface"},
	)
)

var listingMetricsRegistered bool

// RegisterListingMetrics registers Prometheus listing metrics. Must be called once from main.
func RegisterListingMetrics() {
	if listingMetricsRegistered {
		return
	}
	prometheus.MustRegister(ListingQueriesTotal)
	prometheus.MustRegister(ListingQueryDuration)
	prometheus.MustRegister(ListingResultSize)
	listingMetricsRegistered = true
}
