package metrics

// ============================================================================
// Metric Names
// ============================================================================

const namespace = "paper"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsDispatched   = "events_dispatched_total"
	MetricNameEventsCancelled    = "events_cancelled_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Combat metric names
const (
	MetricNameAttackCooldown = "attack_cooldown_total"
	MetricNameAttackStrength = "attack_strength"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsDispatched   = "Total number of events dispatched to handler lists"
	HelpTextEventsCancelled    = "Total number of events left cancelled after dispatch"
	HelpTextEventHandlerErrors = "Total number of event dispatches with handler errors"

	HelpTextAttackCooldown = "Attack cooldown outcomes: reset, suppressed by a listener, or untracked"
	HelpTextAttackStrength = "Attack strength sampled when attacks are initiated"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelEvent   = "event"
	LabelOutcome = "outcome"
)

const (
	OutcomeReset      = "reset"
	OutcomeSuppressed = "suppressed"
	// OutcomeUntracked counts attacks whose player was forgotten during dispatch
	OutcomeUntracked = "untracked"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}

	// AttackStrengthBuckets cover the [0, 1] strength scale
	AttackStrengthBuckets = []float64{.1, .2, .3, .4, .5, .6, .7, .8, .9, 1}
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCollectorRegistered = "Event metrics collector registered"
)

// CollectorOwner is the handler owner name used by the metrics collector
const CollectorOwner = "metrics"
