package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/osse101/Ycine_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	LogDir      string

	// Event publisher
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// Store
	StoreBackend      string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// HTTP
	APIKey            string // API key for admin endpoints
	TrustedProxies    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	PublicURL         string
	StaticDir         string

	// Payment provider
	StripeSecretKey     string
	StripeWebhookSecret string
	PSPMaxRetries       int
	PSPRetryBaseDelay   time.Duration
	PSPRetryMaxDelay    time.Duration

	// Catalog
	CatalogCacheSize int
	CatalogCacheTTL  time.Duration

	// Business parameters
	PlatformShare        decimal.Decimal
	ViewerShare          decimal.Decimal
	ReferralShare        decimal.Decimal
	WithdrawFeeRate      decimal.Decimal
	WithdrawCooldownDays int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "ycine"),
		Version:     getEnv("VERSION", "dev"),
		LogDir:      getEnv("LOG_DIR", "logs"),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", 5),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", 2*time.Second),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", "logs/event_deadletter.jsonl"),

		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", BackendPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "ycine"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		APIKey:            getEnv("API_KEY", ""),
		TrustedProxies:    splitList(getEnv("TRUSTED_PROXIES", "")),
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 200),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", 5*time.Second),
		PublicURL:         strings.TrimRight(getEnv("PUBLIC_URL", "http://localhost:3000"), "/"),
		StaticDir:         getEnv("STATIC_DIR", "public"),

		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		PSPMaxRetries:       getEnvAsInt("PSP_MAX_RETRIES", 3),
		PSPRetryBaseDelay:   getEnvAsDuration("PSP_RETRY_BASE_DELAY", 200*time.Millisecond),
		PSPRetryMaxDelay:    getEnvAsDuration("PSP_RETRY_MAX_DELAY", 2*time.Second),

		CatalogCacheSize: getEnvAsInt("CATALOG_CACHE_SIZE", 128),
		CatalogCacheTTL:  getEnvAsDuration("CATALOG_CACHE_TTL", 5*time.Minute),
	}

	portStr := getEnv("PORT", "3000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.StoreBackend != BackendPostgres && cfg.StoreBackend != BackendMemory {
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: expected %s or %s", cfg.StoreBackend, BackendPostgres, BackendMemory)
	}

	rates := []struct {
		key  string
		def  string
		dest *decimal.Decimal
	}{
		{"PLATFORM_SHARE", "0.90", &cfg.PlatformShare},
		{"VIEWER_SHARE", "0.10", &cfg.ViewerShare},
		{"REFERRAL_SHARE", "0.10", &cfg.ReferralShare},
		{"WITHDRAW_FEE_RATE", "0.05", &cfg.WithdrawFeeRate},
	}
	for _, r := range rates {
		v, err := getEnvAsRate(r.key, r.def)
		if err != nil {
			return nil, err
		}
		*r.dest = v
	}

	cooldown, err := strconv.Atoi(getEnv("WITHDRAW_COOLDOWN_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid WITHDRAW_COOLDOWN_DAYS value: %w", err)
	}
	if cooldown <= 0 {
		return nil, fmt.Errorf("invalid WITHDRAW_COOLDOWN_DAYS value: must be positive, got %d", cooldown)
	}
	cfg.WithdrawCooldownDays = cooldown

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration parses a duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsRate parses a fraction in (0, 1]
func getEnvAsRate(key, defaultValue string) (decimal.Decimal, error) {
	raw := getEnv(key, defaultValue)
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	if !v.IsPositive() || v.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("invalid %s value: must be in (0, 1], got %s", key, raw)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// RevenueSplit returns the configured claim split
func (c *Config) RevenueSplit() domain.RevenueSplit {
	return domain.RevenueSplit{
		PlatformShare: c.PlatformShare,
		ViewerShare:   c.ViewerShare,
		ReferralShare: c.ReferralShare,
	}
}

// WithdrawalPolicy returns the configured fee and cooldown
func (c *Config) WithdrawalPolicy() domain.WithdrawalPolicy {
	return domain.WithdrawalPolicy{
		FeeRate:      c.WithdrawFeeRate,
		CooldownDays: c.WithdrawCooldownDays,
	}
}

// DemoMode reports whether card linking runs without a real payment provider
func (c *Config) DemoMode() bool {
	return c.StripeSecretKey == ""
}
