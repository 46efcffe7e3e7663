package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Dan9191/investment-calculator/internal/utils"
)

// Config holds application configuration
type Config struct {
	Port         string
	LogLevel     string
	Currency     string
	DayCount     string
	JWTSecret    string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Currency:     strings.ToUpper(getEnv("CURRENCY", "USD")),
		DayCount:     getEnv("DAY_COUNT", utils.ACT365F),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "no-reply@localhost"),
	}

	if cfg.Currency == "" {
		return nil, fmt.Errorf("CURRENCY is required")
	}
	convention := utils.NormalizeConvention(cfg.DayCount)
	if convention == "" {
		return nil, fmt.Errorf("DAY_COUNT %q is not supported (use %s, %s or %s)",
			cfg.DayCount, utils.ACT365F, utils.ACT360, utils.E30360)
	}
	cfg.DayCount = convention

	return cfg, nil
}

// EmailEnabled reports whether SMTP delivery is configured
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
