// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// CheckoutConfig provides settings for the Stripe checkout integration.
type CheckoutConfig interface {
	GetStripeSecretKey() string
	GetStripeWebhookSecret() string
	GetStripePriceID(plan string) string
	GetAppBaseURL() string
}

// VapiConfig provides settings for the Vapi voice platform.
type VapiConfig interface {
	GetVapiAPIKey() string
	GetVapiBaseURL() string
	GetVapiDemoAssistantID() string
	GetVapiDemoPhoneNumberID() string
}

// ElevenLabsConfig provides settings for the ElevenLabs TTS integration.
type ElevenLabsConfig interface {
	GetElevenLabsAPIKey() string
	GetElevenLabsBaseURL() string
}

// GeminiConfig provides settings for the Gemini script generation.
type GeminiConfig interface {
	GetGeminiAPIKey() string
	GetGeminiModel() string
}

// RedisConfig provides settings for the voice preview cache.
type RedisConfig interface {
	GetRedisAddr() string
	GetRedisPassword() string
}

// EmailConfig provides settings for go-live notification email.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// =============================================================================
// Config implementation
// =============================================================================

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll bool
	CORSOrigins  []string

	DatabaseURL string
	AppBaseURL  string

	StripeSecretKey     string
	StripeWebhookSecret string
	stripePrices        map[string]string

	VapiAPIKey            string
	VapiBaseURL           string
	VapiDemoAssistantID   string
	VapiDemoPhoneNumberID string

	ElevenLabsAPIKey  string
	ElevenLabsBaseURL string

	GeminiAPIKey string
	GeminiModel  string

	RedisAddr     string
	RedisPassword string

	EmailEnabled     bool
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromName    string
	EmailFromAddress string
}

// Load reads configuration from the environment (and .env when present).
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":3000"),

		CORSAllowAll: getEnvBool("CORS_ALLOW_ALL", true),
		CORSOrigins:  splitList(os.Getenv("CORS_ORIGINS")),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		AppBaseURL:  getEnv("APP_BASE_URL", "http://localhost:3000"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		stripePrices: map[string]string{
			"starter":    os.Getenv("STRIPE_PRICE_STARTER"),
			"growth":     os.Getenv("STRIPE_PRICE_GROWTH"),
			"enterprise": os.Getenv("STRIPE_PRICE_ENTERPRISE"),
		},

		VapiAPIKey:            os.Getenv("VAPI_PRIVATE_KEY"),
		VapiBaseURL:           getEnv("VAPI_BASE_URL", "https://api.vapi.ai"),
		VapiDemoAssistantID:   os.Getenv("VAPI_DEMO_ASSISTANT_ID"),
		VapiDemoPhoneNumberID: os.Getenv("VAPI_DEMO_PHONE_NUMBER_ID"),

		ElevenLabsAPIKey:  os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsBaseURL: getEnv("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		EmailEnabled:     getEnvBool("EMAIL_ENABLED", false),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		SMTPUsername:     os.Getenv("SMTP_USERNAME"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "RinglyAI"),
		EmailFromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.EmailEnabled && (cfg.SMTPHost == "" || cfg.EmailFromAddress == "") {
		return nil, fmt.Errorf("EMAIL_ENABLED requires SMTP_HOST and EMAIL_FROM_ADDRESS")
	}

	return cfg, nil
}

// Interface implementations

func (c *Config) GetDatabaseURL() string   { return c.DatabaseURL }
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

func (c *Config) GetStripeSecretKey() string     { return c.StripeSecretKey }
func (c *Config) GetStripeWebhookSecret() string { return c.StripeWebhookSecret }
func (c *Config) GetAppBaseURL() string          { return strings.TrimRight(c.AppBaseURL, "/") }

// GetStripePriceID returns the price for a plan tier, or "" when the plan
// has no mapped price.
func (c *Config) GetStripePriceID(plan string) string {
	return c.stripePrices[plan]
}

func (c *Config) GetVapiAPIKey() string            { return c.VapiAPIKey }
func (c *Config) GetVapiBaseURL() string           { return c.VapiBaseURL }
func (c *Config) GetVapiDemoAssistantID() string   { return c.VapiDemoAssistantID }
func (c *Config) GetVapiDemoPhoneNumberID() string { return c.VapiDemoPhoneNumberID }

func (c *Config) GetElevenLabsAPIKey() string  { return c.ElevenLabsAPIKey }
func (c *Config) GetElevenLabsBaseURL() string { return c.ElevenLabsBaseURL }

func (c *Config) GetGeminiAPIKey() string { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string  { return c.GeminiModel }

func (c *Config) GetRedisAddr() string     { return c.RedisAddr }
func (c *Config) GetRedisPassword() string { return c.RedisPassword }

func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }

// IsCheckoutEnabled reports whether a Stripe credential is configured.
func (c *Config) IsCheckoutEnabled() bool {
	return c.StripeSecretKey != ""
}

// Helpers

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
