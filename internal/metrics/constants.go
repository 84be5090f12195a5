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

// Plan generation metric names
const (
	MetricNamePlansGenerated     = "meal_plans_generated_total"
	MetricNameGenerationDuration = "meal_plan_generation_duration_seconds"
	MetricNameGenerationFailures = "meal_plan_generation_failures_total"
	MetricNameUnfilledSlots      = "meal_plan_unfilled_slots_total"
	MetricNameDayPersistFailures = "meal_plan_day_persist_failures_total"
	MetricNameFilterFallbacks    = "recipe_filter_fallbacks_total"
	MetricNameRecipeCacheHits    = "recipe_cache_hits_total"
	MetricNameRecipeCacheMisses  = "recipe_cache_misses_total"
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

// Plan generation metric help text
const (
	HelpTextPlansGenerated     = "Total number of weekly meal plans generated"
	HelpTextGenerationDuration = "Meal plan generation latency in seconds"
	HelpTextGenerationFailures = "Total number of failed meal plan generations"
	HelpTextUnfilledSlots      = "Total number of meal slots left unfilled during generation"
	HelpTextDayPersistFailures = "Total number of per-day meal batch persistence failures"
	HelpTextFilterFallbacks    = "Total number of recipe filter fallback queries"
	HelpTextRecipeCacheHits    = "Total number of recipe query cache hits"
	HelpTextRecipeCacheMisses  = "Total number of recipe query cache misses"
)

// Metric labels
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelReason = "reason"
)

// Failure reasons
const (
	ReasonNoMatch     = "no_match"
	ReasonInput       = "input"
	ReasonPersistence = "persistence"
	ReasonInternal    = "internal"
)
