package psp

// Demo callback parameters
const (
	ParamDemoToken = "demo_token"
	ParamToken     = "token"
	ParamUserID    = "userId"
	ParamLast4     = "last4"
	ParamBrand     = "brand"
)

// Stripe metadata and events
const (
	MetadataUserID            = "user_id"
	EventSetupIntentSucceeded = "setup_intent.succeeded"
	SignatureHeader           = "Stripe-Signature"
	setupSuccessPath          = "/?card=linked"
	setupCancelPath           = "/?card=cancelled"
	paymentMethodTypeCard     = "card"
)

// Log messages
const (
	LogMsgSetupSessionCreated = "Created card setup session"
	LogMsgPaymentMethodRetry  = "Retrying payment method lookup"
	LogMsgWebhookIgnored      = "Ignoring webhook event without card"
)
