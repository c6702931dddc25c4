package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Slots metric names
const (
	MetricNameSpinsTotal     = "slots_spins_total"
	MetricNameAmountWagered  = "slots_amount_wagered_total"
	MetricNameAmountPaid     = "slots_amount_paid_total"
	MetricNameJackpotContrib = "slots_jackpot_contributions_total"
	MetricNameJackpotClaims  = "slots_jackpot_claims_total"
	MetricNameJackpotRearms  = "slots_jackpot_rearms_total"
	MetricNameJackpotResets  = "slots_jackpot_reset_sweeps_total"
	MetricNameActiveSessions = "slots_active_sessions"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Slots metric help text
const (
	HelpTextSpinsTotal     = "Total number of resolved spins by outcome"
	HelpTextAmountWagered  = "Total credit wagered on spins"
	HelpTextAmountPaid     = "Total credit paid out by outcome"
	HelpTextJackpotContrib = "Total credit added to jackpot pools"
	HelpTextJackpotClaims  = "Total number of jackpot claims"
	HelpTextJackpotRearms  = "Total number of jackpots re-armed for a new day"
	HelpTextJackpotResets  = "Total number of midnight re-arm sweeps"
	HelpTextActiveSessions = "Current number of cached player sessions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
)

// PathUnmatched labels requests that did not match a route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
