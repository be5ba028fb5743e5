package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalStatusProcessed is the only status a withdrawal record carries
const WithdrawalStatusProcessed = "processed"

// Withdrawal is an append-only audit record
type Withdrawal struct {
	ID        string
	UserID    string
	Amount    decimal.Decimal
	Fee       decimal.Decimal
	Net       decimal.Decimal
	PaymentID string
	Status    string
	CreatedAt time.Time
}

// WithdrawalPolicy holds the fee rate and cooldown between withdrawals
type WithdrawalPolicy struct {
	FeeRate      decimal.Decimal
	CooldownDays int
}

// DefaultWithdrawalPolicy returns the flat 5% fee with a 7 day cooldown
func DefaultWithdrawalPolicy() WithdrawalPolicy {
	return WithdrawalPolicy{
		FeeRate:      decimal.RequireFromString("0.05"),
		CooldownDays: 7,
	}
}

// Split returns the fee and net payout for a gross amount
func (p WithdrawalPolicy) Split(amount decimal.Decimal) (fee, net decimal.Decimal) {
	fee = MulRound(amount, p.FeeRate)
	net = Round2(amount.Sub(fee))
	return fee, net
}

// DaysRemaining returns how many days are left before the next withdrawal is allowed.
// Elapsed time is floored to whole days. Zero means the cooldown has passed.
func (p WithdrawalPolicy) DaysRemaining(lastWithdraw *time.Time, now time.Time) int {
	if lastWithdraw == nil {
		return 0
	}
	days := int(now.Sub(*lastWithdraw) / (24 * time.Hour))
	if days >= p.CooldownDays {
		return 0
	}
	return p.CooldownDays - days
}
