package domain

import "github.com/shopspring/decimal"

// Video is a read-only catalog entry
type Video struct {
	ID        string
	Title     string
	Value     decimal.Decimal
	Duration  int // seconds
	Thumbnail string
	Src       string
}
