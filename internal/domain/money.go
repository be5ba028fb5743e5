package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places kept on every monetary value
const MoneyPlaces = 2

// Round2 rounds a monetary amount half away from zero to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// MulRound multiplies amount by rate and rounds the product to two places.
// Every multiplication in the ledger rounds immediately, never only at the end.
func MulRound(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate))
}

// RevenueSplit holds the shares applied when a video reward is claimed
type RevenueSplit struct {
	PlatformShare decimal.Decimal // share of the video value the platform keeps
	ViewerShare   decimal.Decimal // share of platform revenue paid to the viewer
	ReferralShare decimal.Decimal // share of the viewer reward paid to the inviter
}

// DefaultRevenueSplit returns the 90% / 10% / 10% split
func DefaultRevenueSplit() RevenueSplit {
	return RevenueSplit{
		PlatformShare: decimal.RequireFromString("0.90"),
		ViewerShare:   decimal.RequireFromString("0.10"),
		ReferralShare: decimal.RequireFromString("0.10"),
	}
}

// RewardBreakdown is the per-claim split of a video's nominal value.
// PlatformNet is informational and never persisted.
type RewardBreakdown struct {
	PlatformRevenue decimal.Decimal
	ViewerReward    decimal.Decimal
	PlatformNet     decimal.Decimal
}

// Compute splits a video value into platform revenue, viewer reward and platform net.
func (s RevenueSplit) Compute(value decimal.Decimal) RewardBreakdown {
	platformRevenue := MulRound(value, s.PlatformShare)
	viewerReward := MulRound(platformRevenue, s.ViewerShare)
	return RewardBreakdown{
		PlatformRevenue: platformRevenue,
		ViewerReward:    viewerReward,
		PlatformNet:     Round2(platformRevenue.Sub(viewerReward)),
	}
}

// Commission returns the inviter bonus owed for a viewer reward.
func (s RevenueSplit) Commission(viewerReward decimal.Decimal) decimal.Decimal {
	return MulRound(viewerReward, s.ReferralShare)
}
