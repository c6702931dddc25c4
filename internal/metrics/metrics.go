// Package metrics exposes Prometheus collectors for HTTP traffic and slot play.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Slots Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelOutcome},
	)

	AmountWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountWagered,
			Help: HelpTextAmountWagered,
		},
	)

	AmountPaid = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAmountPaid,
			Help: HelpTextAmountPaid,
		},
		[]string{LabelOutcome},
	)

	JackpotContributions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJackpotContrib,
			Help: HelpTextJackpotContrib,
		},
	)

	JackpotClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJackpotClaims,
			Help: HelpTextJackpotClaims,
		},
	)

	JackpotRearms = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJackpotRearms,
			Help: HelpTextJackpotRearms,
		},
	)

	JackpotResetSweeps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJackpotResets,
			Help: HelpTextJackpotResets,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)
