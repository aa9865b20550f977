package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Kill Metrics
var (
	KillsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameKillsTotal,
			Help: HelpTextKillsTotal,
		},
	)

	RejectedKillsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRejectedKillsTotal,
			Help: HelpTextRejectedKillsTotal,
		},
	)

	HandlerErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHandlerErrorsTotal,
			Help: HelpTextHandlerErrorsTotal,
		},
	)
)

// Reward Metrics
var (
	ItemRewardsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemRewardsTotal,
			Help: HelpTextItemRewardsTotal,
		},
		[]string{LabelQuality},
	)

	RewardMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardMissesTotal,
			Help: HelpTextRewardMissesTotal,
		},
		[]string{LabelReason},
	)

	MoneyGrantedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyGrantedTotal,
			Help: HelpTextMoneyGrantedTotal,
		},
	)

	XPGrantedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPGrantedTotal,
			Help: HelpTextXPGrantedTotal,
		},
	)

	SearchAttempts = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSearchAttempts,
			Help:    HelpTextSearchAttempts,
			Buckets: SearchAttemptBuckets,
		},
		[]string{LabelQuality},
	)
)

// Loot table Metrics
var (
	LootTableItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameLootTableItems,
			Help: HelpTextLootTableItems,
		},
		[]string{LabelQuality},
	)
)

// Ops HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelPath, LabelStatus},
	)
)
