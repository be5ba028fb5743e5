package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Constraint names referenced when mapping unique violations
const (
	ConstraintAccountsInviteCode = "accounts_invite_code_key"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Account Operations
const (
	ErrMsgFailedToCreateAccount = "failed to create account"
	ErrMsgFailedToGetAccount    = "failed to get account"
	ErrMsgFailedToListAccounts  = "failed to list accounts"
	ErrMsgFailedToLockAccount   = "failed to lock account"
	ErrMsgFailedToSaveAccount   = "failed to save account"
	ErrMsgFailedToEncodeJSON    = "failed to encode progress"
	ErrMsgFailedToDecodeJSON    = "failed to decode progress"
	ErrMsgFailedToParseAmount   = "failed to parse amount"
)

// Error Messages - Catalog, Payment and Withdrawal Operations
const (
	ErrMsgFailedToGetVideo          = "failed to get video"
	ErrMsgFailedToListVideos        = "failed to list videos"
	ErrMsgFailedToInsertPaymentLink = "failed to insert payment link"
	ErrMsgFailedToQueryPaymentLinks = "failed to query payment links"
	ErrMsgFailedToInsertWithdrawal  = "failed to insert withdrawal"
	ErrMsgFailedToListWithdrawals   = "failed to list withdrawals"
)
