// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncCreated counts professors created by faculty reconciliation.
	SyncCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profscope_faculty_sync_created_total",
		Help: "Professors created by faculty directory sync",
	})

	// SyncUpdated counts professors refreshed by faculty reconciliation.
	SyncUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profscope_faculty_sync_updated_total",
		Help: "Professors updated by faculty directory sync",
	})

	// SyncErrors counts per-record reconciliation failures.
	SyncErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profscope_faculty_sync_errors_total",
		Help: "Faculty directory sync per-record errors",
	})

	// ReviewsCreated counts accepted review submissions.
	ReviewsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profscope_reviews_created_total",
		Help: "Reviews accepted for publication",
	})
)
