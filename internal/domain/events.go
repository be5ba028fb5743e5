package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. Events are published after the store commit.
//
// Event types follow the pattern: <entity>.<action> (e.g., "reward.claimed")
const (
	// EventTypeRewardClaimed is published when a viewer reward is credited
	EventTypeRewardClaimed = "reward.claimed"

	// EventTypeReferralCommission is published when an inviter receives a commission
	EventTypeReferralCommission = "referral.commission"

	// EventTypeWithdrawalProcessed is published after a withdrawal record is appended
	EventTypeWithdrawalProcessed = "withdrawal.processed"

	// EventTypeCardLinked is published when a payment link becomes the account's active link
	EventTypeCardLinked = "card.linked"

	// EventTypeCardRejected is published when a card is refused as a cross-account duplicate
	EventTypeCardRejected = "card.rejected"

	// EventTypeAccountCreated is published on first signup by a name
	EventTypeAccountCreated = "account.created"
)

// RewardClaimedPayload is the payload of EventTypeRewardClaimed
type RewardClaimedPayload struct {
	UserID       string  `json:"user_id"`
	VideoID      string  `json:"video_id"`
	Reward       float64 `json:"reward"`
	PlatformNet  float64 `json:"platform_net"`
	NewBalance   float64 `json:"new_balance"`
	Level        Level   `json:"level"`
	LevelChanged bool    `json:"level_changed"`
}

// ReferralCommissionPayload is the payload of EventTypeReferralCommission
type ReferralCommissionPayload struct {
	InviterID string  `json:"inviter_id"`
	InviteeID string  `json:"invitee_id"`
	Amount    float64 `json:"amount"`
}

// WithdrawalProcessedPayload is the payload of EventTypeWithdrawalProcessed
type WithdrawalProcessedPayload struct {
	WithdrawalID string  `json:"withdrawal_id"`
	UserID       string  `json:"user_id"`
	Amount       float64 `json:"amount"`
	Fee          float64 `json:"fee"`
	Net          float64 `json:"net"`
}

// CardLinkPayload is the payload of EventTypeCardLinked and EventTypeCardRejected
type CardLinkPayload struct {
	UserID    string `json:"user_id"`
	PaymentID string `json:"payment_id"`
	Brand     string `json:"brand"`
	Source    string `json:"source"`
}

// AccountCreatedPayload is the payload of EventTypeAccountCreated
type AccountCreatedPayload struct {
	UserID    string `json:"user_id"`
	InviterID string `json:"inviter_id,omitempty"`
}
