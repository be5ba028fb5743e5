package handler

// Error codes returned in the "error" field of JSON responses.
// Clients branch on these strings, so they are part of the wire contract.
const (
	ErrCodeNoUser          = "no_user"
	ErrCodeVideoNotFound   = "video_not_found"
	ErrCodeNotFound        = "notfound"
	ErrCodeBad             = "bad"
	ErrCodeNotCompleted    = "not_completed"
	ErrCodeAlreadyClaimed  = "already_claimed"
	ErrCodeInvalidAmount   = "invalid_amount"
	ErrCodeNoLinkedPayment = "no_linked_payment"
	ErrCodeWithdrawWeekly  = "withdraw_weekly"
	ErrCodeCardAlreadyUsed = "card_already_used"
	ErrCodeNoToken         = "no_token"
	ErrCodePspError        = "psp_error"
	ErrCodeServerError     = "server_error"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgNameRequired          = "name required"
)

// Success messages
const (
	MsgWithdrawProcessed = "withdraw_processed"
)

// Log messages for handler operations
const (
	LogMsgRequestRejected     = "Request rejected"
	LogMsgRequestFailed       = "Request failed"
	LogMsgCallbackIgnored     = "Card callback ignored"
	LogMsgCallbackUnreadable  = "Failed to read card callback body"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgRequestDecoded      = "%s request decoded"
	LogMsgRequestDecodeFailed = "Failed to decode %s request"
)
