package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed admin authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Admin authentication failed"
	LogMsgStaticDisabled   = "Static directory not set, static assets disabled"
)

// HTTP header names
const (
	HeaderAPIKey          = "X-API-Key"
	HeaderAuthorization   = "Authorization"
	HeaderStripeSignature = "Stripe-Signature"
	HeaderForwardedFor    = "X-Forwarded-For"
	HeaderRequestID       = "X-Request-ID"
	HeaderContentType     = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderXSSProtection   = "X-XSS-Protection"
	HeaderReferrerPolicy  = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Server limits
const (
	MaxRequestBodyBytes     = 1 << 20
	ReadHeaderTimeout       = 5 * time.Second
	FailedAuthAlertCount    = 5
	HighRateLogEvery        = 100
	DefaultRateLimitRequest = 200
	DefaultRateLimitWindow  = 5 * time.Second
)

// Paths skipped by the request logger
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// redactedHeaders never reach the logs
var redactedHeaders = []string{HeaderAPIKey, HeaderAuthorization, HeaderStripeSignature}
