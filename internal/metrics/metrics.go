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

// Ledger Metrics
var (
	CurrencyCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyCredited,
			Help: HelpTextCurrencyCredited,
		},
	)

	CurrencyDebited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyDebited,
			Help: HelpTextCurrencyDebited,
		},
	)

	TaskRewardsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTaskRewards,
			Help: HelpTextTaskRewards,
		},
		[]string{LabelTaskKind},
	)
)

// Gacha Metrics
var (
	PullsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePulls,
			Help: HelpTextPulls,
		},
		[]string{LabelMode, LabelResult},
	)

	RefundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRefunds,
			Help: HelpTextRefunds,
		},
		[]string{LabelOutcome},
	)

	ImageCacheRefills = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameImageCacheFills,
			Help: HelpTextImageCacheFills,
		},
		[]string{LabelResult},
	)

	ImageCacheDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameImageCacheDraws,
			Help: HelpTextImageCacheDraws,
		},
		[]string{LabelResult},
	)
)
