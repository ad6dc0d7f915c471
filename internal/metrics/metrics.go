// Package metrics holds the prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farmstand_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "farmstand_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farmstand_login_attempts_total",
			Help: "Login attempts by principal and outcome",
		},
		[]string{"principal", "outcome"},
	)

	SalesCommittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "farmstand_sales_committed_total",
			Help: "Sales recorded with their stock decrement",
		},
	)

	SalesRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farmstand_sales_rejected_total",
			Help: "Sales rejected before commit",
		},
		[]string{"reason"},
	)
)
