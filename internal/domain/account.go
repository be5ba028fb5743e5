package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day key used by the daily claim counter (UTC)
const DateLayout = "2006-01-02"

// VideoProgress is the latest playback state reported for one video
type VideoProgress struct {
	CurrentTime int       `json:"currentTime"`
	Completed   bool      `json:"completed"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DailyCount counts claims made on Date
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Account is a viewer's ledger record
type Account struct {
	ID          string
	Name        string
	Balance     decimal.Decimal
	TotalEarned decimal.Decimal
	Level       Level

	// Watched holds video ids already claimed, each at most once
	Watched  []string
	Progress map[string]VideoProgress

	InviterID  string
	Invites    int
	InviteCode string

	DailyCount   DailyCount
	LastWithdraw *time.Time

	LinkedPaymentID string
	IsVerified      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount builds a fresh account with zero balances
func NewAccount(id, name, inviteCode string, now time.Time) *Account {
	return &Account{
		ID:          id,
		Name:        name,
		Balance:     decimal.Zero,
		TotalEarned: decimal.Zero,
		Level:       LevelBronze,
		Watched:     []string{},
		Progress:    make(map[string]VideoProgress),
		InviteCode:  inviteCode,
		DailyCount:  DailyCount{Date: now.UTC().Format(DateLayout)},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Clone returns a deep copy so callers can mutate without aliasing store state
func (a *Account) Clone() *Account {
	c := *a
	c.Watched = slices.Clone(a.Watched)
	c.Progress = make(map[string]VideoProgress, len(a.Progress))
	for k, v := range a.Progress {
		c.Progress[k] = v
	}
	if a.LastWithdraw != nil {
		t := *a.LastWithdraw
		c.LastWithdraw = &t
	}
	return &c
}

// HasWatched reports whether the video was already claimed
func (a *Account) HasWatched(videoID string) bool {
	return slices.Contains(a.Watched, videoID)
}

// MarkWatched appends the video to the claimed set. It is a no-op when already present.
func (a *Account) MarkWatched(videoID string) {
	if !a.HasWatched(videoID) {
		a.Watched = append(a.Watched, videoID)
	}
}

// RecordProgress overwrites the playback state for a video (last write wins).
func (a *Account) RecordProgress(videoID string, currentTime int, completed bool, now time.Time) VideoProgress {
	if a.Progress == nil {
		a.Progress = make(map[string]VideoProgress)
	}
	p := VideoProgress{CurrentTime: currentTime, Completed: completed, UpdatedAt: now}
	a.Progress[videoID] = p
	return p
}

// Credit adds amount to balance and lifetime earnings and recomputes the level.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = Round2(a.Balance.Add(amount))
	a.TotalEarned = Round2(a.TotalEarned.Add(amount))
	a.RecomputeLevel()
}

// Debit removes amount from the balance. Callers check sufficiency first.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = Round2(a.Balance.Sub(amount))
}

// RecomputeLevel derives Level from TotalEarned
func (a *Account) RecomputeLevel() {
	a.Level = ClassifyLevel(a.TotalEarned)
}

// BumpDailyCount increments today's claim counter, resetting it on a new day.
func (a *Account) BumpDailyCount(now time.Time) {
	today := now.UTC().Format(DateLayout)
	if a.DailyCount.Date != today {
		a.DailyCount = DailyCount{Date: today}
	}
	a.DailyCount.Count++
}

// HasLinkedPayment reports whether a verified payment link is bound
func (a *Account) HasLinkedPayment() bool {
	return a.LinkedPaymentID != ""
}
