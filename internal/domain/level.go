package domain

import "github.com/shopspring/decimal"

// Level is an account tier derived from lifetime earnings
type Level string

// Tier labels
const (
	LevelBronze Level = "Bronze"
	LevelSilver Level = "Silver"
	LevelGold   Level = "Gold"
	LevelVIP    Level = "VIP"
)

type levelThreshold struct {
	min   decimal.Decimal
	level Level
}

// levelThresholds is ordered highest first
var levelThresholds = []levelThreshold{
	{min: decimal.NewFromInt(50000), level: LevelVIP},
	{min: decimal.NewFromInt(20000), level: LevelGold},
	{min: decimal.NewFromInt(5000), level: LevelSilver},
}

// ClassifyLevel maps lifetime earnings to a tier.
func ClassifyLevel(totalEarned decimal.Decimal) Level {
	for _, t := range levelThresholds {
		if totalEarned.GreaterThanOrEqual(t.min) {
			return t.level
		}
	}
	return LevelBronze
}
