// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status class.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "driveledger_http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "driveledger_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// VehiclesAdded counts vehicles added to the inventory.
	VehiclesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "driveledger_vehicles_added_total",
		Help: "Total number of vehicles added to the inventory.",
	})

	// VehiclesSold counts completed sales.
	VehiclesSold = promauto.NewCounter(prometheus.CounterOpts{
		Name: "driveledger_vehicles_sold_total",
		Help: "Total number of vehicles sold.",
	})

	// ExpensesRecorded counts recorded operating expenses.
	ExpensesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "driveledger_expenses_recorded_total",
		Help: "Total number of operating expenses recorded.",
	})
)
