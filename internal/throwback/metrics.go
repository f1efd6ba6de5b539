package throwback

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeQueries = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "throwback_store_queries_total",
			Help: "Number of content store queries, differentiated by offset.",
		},
		[]string{"offset"},
	)

	groupsFound = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "throwback_groups_total",
			Help: "Number of non empty throwback groups, differentiated by offset.",
		},
		[]string{"offset"},
	)
)
