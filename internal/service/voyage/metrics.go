package voyage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upcomingVoyages = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "voyage_upcoming_departures",
			Help: "Number of voyages with a scheduled departure in the future",
		},
	)

	voyagesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voyage_created_total",
			Help: "Total number of voyages created",
		},
	)
)
