package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	EventsLoggedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "passlog_events_logged_total",
		Help: "Total status events appended to the log",
	}, []string{"status"})

	ReportsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "passlog_reports_generated_total",
		Help: "Total report generations by outcome",
	}, []string{"outcome"})

	ReportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "passlog_report_duration_seconds",
		Help:    "Wall time of one report generation",
		Buckets: prometheus.DefBuckets,
	})

	// Infrastructure metrics
	RosterCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "passlog_roster_cache_requests_total",
		Help: "Roster cache lookups by result",
	}, []string{"result"})

	TimeslotCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "passlog_timeslot_cache_requests_total",
		Help: "Timeslot cache lookups by result",
	}, []string{"result"})
)
