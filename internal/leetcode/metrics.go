package leetcode

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leetcode_fetches_total",
			Help: "Total number of outbound LeetCode GraphQL queries",
		},
		[]string{"query", "outcome"},
	)

	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leetcode_fetch_duration_seconds",
			Help:    "Duration of outbound LeetCode GraphQL queries",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"query"},
	)
)

func observeFetch(query, outcome string, start time.Time) {
	fetchesTotal.WithLabelValues(query, outcome).Inc()
	fetchDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}
