package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SearchesTotal counts unified searches by outcome (ok, error, empty).
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexfile",
			Name:      "searches_total",
			Help:      "Total number of unified searches",
		},
		[]string{"outcome"},
	)

	// SearchResults observes the pre-truncation result count per search.
	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lexfile",
			Name:      "search_results",
			Help:      "Unified search result count before truncation",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	// SuggestionsTotal counts suggestion requests by source that produced
	// the top-ranked item (contextual, clients, corrections, ...).
	SuggestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexfile",
			Name:      "suggestions_total",
			Help:      "Total number of suggestion requests",
		},
		[]string{"top_source"},
	)
)

// RegisterSearchMetrics registers the search-domain collectors.
// Called explicitly from the composition root (no init side effects).
func RegisterSearchMetrics() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(SuggestionsTotal)
}
