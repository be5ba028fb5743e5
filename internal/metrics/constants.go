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

// Ledger metric names
const (
	MetricNameRewardsClaimed      = "rewards_claimed_total"
	MetricNameRewardPaid          = "reward_paid_total"
	MetricNamePlatformNet         = "platform_net_total"
	MetricNameLevelUps            = "level_ups_total"
	MetricNameReferralCommission  = "referral_commission_paid_total"
	MetricNameWithdrawals         = "withdrawals_total"
	MetricNameWithdrawalFees      = "withdrawal_fees_total"
	MetricNameWithdrawalNet       = "withdrawal_net_paid_total"
	MetricNameCardsLinked         = "cards_linked_total"
	MetricNameCardsRejected       = "cards_rejected_total"
	MetricNameAccountsCreated     = "accounts_created_total"
	MetricNameReferredSignups     = "referred_signups_total"
	MetricNameOperationRejections = "ledger_rejections_total"
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

// Ledger metric help text
const (
	HelpTextRewardsClaimed      = "Total number of successful video reward claims"
	HelpTextRewardPaid          = "Total viewer reward credited"
	HelpTextPlatformNet         = "Total platform net revenue after viewer rewards"
	HelpTextLevelUps            = "Total number of level changes caused by claims"
	HelpTextReferralCommission  = "Total referral commission credited to inviters"
	HelpTextWithdrawals         = "Total number of processed withdrawals"
	HelpTextWithdrawalFees      = "Total withdrawal fees retained"
	HelpTextWithdrawalNet       = "Total net amount paid out by withdrawals"
	HelpTextCardsLinked         = "Total number of cards bound to accounts"
	HelpTextCardsRejected       = "Total number of cards rejected as duplicates"
	HelpTextAccountsCreated     = "Total number of accounts created"
	HelpTextReferredSignups     = "Total number of accounts created with an inviter"
	HelpTextOperationRejections = "Total number of ledger operations refused by a rule"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelVideo     = "video"
	LabelLevel     = "level"
	LabelSource    = "source"
	LabelBrand     = "brand"
	LabelOperation = "operation"
	LabelReason    = "reason"
)

// Operation label values for rejections
const (
	OperationClaim    = "claim"
	OperationWithdraw = "withdraw"
	OperationCardLink = "card_link"
	OperationProgress = "progress"
	OperationSignup   = "signup"
	OperationLogin    = "login"
	OperationInvite   = "invite"
	OperationAccount  = "account"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// unmatchedRoute labels requests that did not hit a registered route
const unmatchedRoute = "unmatched"

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
