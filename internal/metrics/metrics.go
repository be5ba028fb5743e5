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

// Ledger Metrics
var (
	RewardsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsClaimed,
			Help: HelpTextRewardsClaimed,
		},
		[]string{LabelVideo},
	)

	RewardPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardPaid,
			Help: HelpTextRewardPaid,
		},
	)

	PlatformNet = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlatformNet,
			Help: HelpTextPlatformNet,
		},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
		[]string{LabelLevel},
	)

	ReferralCommissionPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReferralCommission,
			Help: HelpTextReferralCommission,
		},
	)

	Withdrawals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWithdrawals,
			Help: HelpTextWithdrawals,
		},
	)

	WithdrawalFees = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWithdrawalFees,
			Help: HelpTextWithdrawalFees,
		},
	)

	WithdrawalNet = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWithdrawalNet,
			Help: HelpTextWithdrawalNet,
		},
	)

	CardsLinked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCardsLinked,
			Help: HelpTextCardsLinked,
		},
		[]string{LabelSource},
	)

	CardsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCardsRejected,
			Help: HelpTextCardsRejected,
		},
		[]string{LabelBrand},
	)

	AccountsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAccountsCreated,
			Help: HelpTextAccountsCreated,
		},
	)

	ReferredSignups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReferredSignups,
			Help: HelpTextReferredSignups,
		},
	)

	OperationRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOperationRejections,
			Help: HelpTextOperationRejections,
		},
		[]string{LabelOperation, LabelReason},
	)
)

// RecordRejection counts a ledger rule refusal, labelled by the wire error code
func RecordRejection(operation, reason string) {
	OperationRejections.WithLabelValues(operation, reason).Inc()
}
