package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "lily_http_requests_total"
	MetricNameHTTPRequestDuration  = "lily_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "lily_http_requests_in_flight"

	MetricNameCurrencyCredited = "lily_currency_credited_total"
	MetricNameCurrencyDebited  = "lily_currency_debited_total"
	MetricNameTaskRewards      = "lily_task_rewards_total"
	MetricNamePulls            = "lily_gacha_pulls_total"
	MetricNameRefunds          = "lily_gacha_refunds_total"
	MetricNameImageCacheFills  = "lily_image_cache_refills_total"
	MetricNameImageCacheDraws  = "lily_image_cache_draws_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextCurrencyCredited = "Total currency credited to accounts"
	HelpTextCurrencyDebited  = "Total currency debited from accounts"
	HelpTextTaskRewards      = "Task completion rewards granted, by task kind"
	HelpTextPulls            = "Gacha pulls, by mode and result"
	HelpTextRefunds          = "Compensating refunds after failed pulls, by outcome"
	HelpTextImageCacheFills  = "Refills of the external image cache, by result"
	HelpTextImageCacheDraws  = "Draws served from the external image cache, by result"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelTaskKind = "task_kind"
	LabelMode     = "mode"
	LabelResult   = "result"
	LabelOutcome  = "outcome"
)

// Label values for pull results and refund outcomes
const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	OutcomeRefunded     = "refunded"
	OutcomeRefundFailed = "refund_failed"
)

// HTTPLatencyBuckets are the histogram buckets for request duration
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
