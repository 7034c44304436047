package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Payments    PaymentsConfig
	Subscribers SubscribersConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Mail        MailConfig
	Tracing     TracingConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	// PublicBaseURL is the origin referral links are shared under, e.g. https://go.example.com
	PublicBaseURL string
	WebAppURI     string
}

// PaymentsConfig holds webhook verification secrets for the payment providers.
// An empty secret disables verification for that provider.
type PaymentsConfig struct {
	PaystackSecretKey   string
	StripeWebhookSecret string
}

// SubscribersConfig points at the external account system used for eligibility checks
type SubscribersConfig struct {
	BaseURL    string
	ServiceKey string
	Timeout    time.Duration
}

// RedisConfig holds link cache settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	LinkTTL  time.Duration
}

// KafkaConfig holds conversion event publishing settings
type KafkaConfig struct {
	Brokers         []string
	ConversionTopic string
}

// MailConfig holds admin alert email settings
type MailConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	AdminAlertEmail    string
}

// TracingConfig holds OpenTelemetry export settings
type TracingConfig struct {
	Enabled     bool
	Endpoint    string // OTLP/HTTP collector URL, e.g. http://localhost:4318/v1/traces
	ServiceName string
	Environment string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.PublicBaseURL = strings.TrimRight(getEnvWithDefault("PUBLIC_BASE_URL", "http://localhost:"+serverPort), "/")
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Payment provider secrets
	cfg.Payments.PaystackSecretKey = os.Getenv("PAYSTACK_SECRET_KEY")
	cfg.Payments.StripeWebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")

	// External account system
	if cfg.Subscribers.BaseURL, err = requireEnv("SUBSCRIBERS_URL"); err != nil {
		return nil, err
	}
	if cfg.Subscribers.ServiceKey, err = requireEnv("SUBSCRIBERS_SERVICE_KEY"); err != nil {
		return nil, err
	}
	cfg.Subscribers.Timeout, err = time.ParseDuration(getEnvWithDefault("SUBSCRIBERS_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SUBSCRIBERS_TIMEOUT: %w", err)
	}

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}
	cfg.Redis.LinkTTL, err = time.ParseDuration(getEnvWithDefault("LINK_CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse LINK_CACHE_TTL: %w", err)
	}

	// Kafka configuration
	cfg.Kafka.Brokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Kafka.ConversionTopic = getEnvWithDefault("KAFKA_CONVERSION_TOPIC", "affiliate.conversions")

	// Mail configuration
	cfg.Mail.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Mail.DefaultEmailSender = getEnvWithDefault("DEFAULT_EMAIL_SENDER_ADDRESS", "alerts@localhost")
	cfg.Mail.AdminAlertEmail = os.Getenv("ADMIN_ALERT_EMAIL")

	// Tracing configuration
	cfg.Tracing.Enabled = getEnvWithDefault("OTEL_ENABLED", "false") == "true"
	cfg.Tracing.Endpoint = os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT")
	cfg.Tracing.ServiceName = getEnvWithDefault("OTEL_SERVICE_NAME", "affiliate-server")
	cfg.Tracing.Environment = getEnvWithDefault("GO_ENV", "development")

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
