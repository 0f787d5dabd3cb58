package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/inventoryops/warehouse-api/pkg/database"
)

// Config holds all service configuration, loaded from the environment
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    string

	DB database.Config

	JWTAccessSecret  string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	ResetTokenTTL    time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	AlertRecipient string

	// Empty means low-stock events are not published to Kafka
	KafkaBrokers []string

	FrontendBaseURL string
}

// Load reads configuration from the environment, with a .env file as
// fallback for local development
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", "warehouse-api"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),

		DB: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "warehousedb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		JWTAccessSecret:  getEnv("ACCESS_TOKEN_SECRET", "access-secret"),
		JWTRefreshSecret: getEnv("REFRESH_TOKEN_SECRET", "refresh-secret"),
		AccessTokenTTL:   getDuration("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTokenTTL:  getDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		ResetTokenTTL:    getDuration("RESET_TOKEN_TTL", 15*time.Minute),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "noreply@warehouse.local"),

		AlertRecipient: getEnv("ALERT_RECIPIENT", "admin@warehouse.local"),

		FrontendBaseURL: getEnv("FE_BASE_URL", "http://localhost:3000"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
