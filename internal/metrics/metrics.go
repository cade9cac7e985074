// Package metrics exposes prometheus collectors for the activities service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Roster operation names.
const (
	OpEnroll   = "enroll"
	OpWithdraw = "withdraw"
)

// Roster operation outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
	OutcomeConflict  = "conflict"
	OutcomeFull      = "full"
	OutcomeMalformed = "malformed"
)

var (
	RosterOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "activities",
			Name:      "roster_operations_total",
			Help:      "Signup and removal attempts by activity and outcome",
		},
		[]string{"operation", "activity", "outcome"},
	)

	Participants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "activities",
			Name:      "participants",
			Help:      "Current participant count per activity",
		},
		[]string{"activity"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "activities",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "code"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "activities",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// RecordRoster counts one roster operation.
func RecordRoster(operation, activity, outcome string) {
	RosterOperations.WithLabelValues(operation, activity, outcome).Inc()
}

// SetParticipants updates the participant gauge for an activity.
func SetParticipants(activity string, n int) {
	Participants.WithLabelValues(activity).Set(float64(n))
}

// ObserveRequest records a finished HTTP request.
func ObserveRequest(route, method, code string, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(route, method, code).Inc()
	HTTPDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
