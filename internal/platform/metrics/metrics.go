// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jewel_ledger"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	LoansDisbursedPaise = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loans_disbursed_paise_total",
		Help:      "Principal disbursed, by loan kind.",
	}, []string{"kind"})

	LoanRepaymentsPaise = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loan_repayments_paise_total",
		Help:      "Repayments received, by loan kind and component (principal or interest).",
	}, []string{"kind", "component"})

	LoansClosed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loans_closed_total",
		Help:      "Loans closed, by kind.",
	}, []string{"kind"})

	TradesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trades_recorded_total",
		Help:      "Bullion trades recorded, by metal and side.",
	}, []string{"metal", "side"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Domain events handed to the publisher, by type and outcome.",
	}, []string{"type", "outcome"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
