package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgUserNotFound   = "user not found"
	ErrMsgVideoNotFound  = "video not found"
	ErrMsgInviteNotFound = "invite code not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Claim errors
	ErrMsgNotCompleted   = "video not completed"
	ErrMsgAlreadyClaimed = "reward already claimed"

	// Withdrawal errors
	ErrMsgInvalidAmount   = "invalid withdrawal amount"
	ErrMsgNoLinkedPayment = "no linked payment method"
	ErrMsgWithdrawWeekly  = "withdrawal allowed once per week"

	// Card link errors
	ErrMsgCardAlreadyUsed = "card already linked to another account"
	ErrMsgNoToken         = "no payment token in payload"
	ErrMsgPspError        = "payment provider error"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// NotFound family
	ErrUserNotFound   = errors.New(ErrMsgUserNotFound)
	ErrVideoNotFound  = errors.New(ErrMsgVideoNotFound)
	ErrInviteNotFound = errors.New(ErrMsgInviteNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrNotCompleted   = errors.New(ErrMsgNotCompleted)
	ErrAlreadyClaimed = errors.New(ErrMsgAlreadyClaimed)

	ErrInvalidAmount   = errors.New(ErrMsgInvalidAmount)
	ErrNoLinkedPayment = errors.New(ErrMsgNoLinkedPayment)
	ErrWithdrawWeekly  = errors.New(ErrMsgWithdrawWeekly)

	ErrCardAlreadyUsed = errors.New(ErrMsgCardAlreadyUsed)
	ErrNoToken         = errors.New(ErrMsgNoToken)
	ErrPspError        = errors.New(ErrMsgPspError)
)

// WithdrawCooldownError is returned when the weekly withdrawal cooldown has not elapsed.
// It carries the remediation data clients show to the user.
type WithdrawCooldownError struct {
	DaysRemaining int
}

func (e WithdrawCooldownError) Error() string {
	return fmt.Sprintf("%s: %d day(s) remaining", ErrMsgWithdrawWeekly, e.DaysRemaining)
}

// Is allows errors.Is(err, ErrWithdrawWeekly) to match a WithdrawCooldownError
func (e WithdrawCooldownError) Is(target error) bool {
	if target == ErrWithdrawWeekly {
		return true
	}
	_, ok := target.(WithdrawCooldownError)
	return ok
}
