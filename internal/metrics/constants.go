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

// Inventory metric names
const (
	MetricNameItemsAdded      = "inventory_items_added_total"
	MetricNameItemsRemoved    = "inventory_items_removed_total"
	MetricNameItemsUsed       = "inventory_items_used_total"
	MetricNameItemsEquipped   = "inventory_items_equipped_total"
	MetricNameItemsUnequipped = "inventory_items_unequipped_total"
)

// Game loop metric names
const (
	MetricNameTicksTotal   = "game_ticks_total"
	MetricNameTickDuration = "game_tick_duration_seconds"
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

// Inventory metric help text
const (
	HelpTextItemsAdded      = "Total item units added to inventories"
	HelpTextItemsRemoved    = "Total item units removed from inventories"
	HelpTextItemsUsed       = "Total item use attempts by outcome"
	HelpTextItemsEquipped   = "Total number of items equipped"
	HelpTextItemsUnequipped = "Total number of items unequipped"
)

// Game loop metric help text
const (
	HelpTextTicksTotal   = "Total number of frame ticks processed"
	HelpTextTickDuration = "Time spent processing a frame tick in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelItem   = "item"
	LabelResult = "result"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets ranges from 10µs to 50ms; a 30Hz frame is ~33ms
var TickLatencyBuckets = []float64{.00001, .0001, .0005, .001, .005, .01, .033, .05}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
