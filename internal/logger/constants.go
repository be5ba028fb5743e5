package logger

// Context Keys
const (
	ContextKeyRequestID = "request_id"
)

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "ycine"
	DefaultVersion     = "dev"
)

// Environment String Values
const (
	EnvironmentDev = "dev"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyToken       = "token"
	AttrKeyAPIKey      = "api_key"
	AttrKeyPassword    = "password"
	AttrKeySignature   = "signature"
)

// RedactedValue replaces sensitive attribute values
const RedactedValue = "[REDACTED]"
