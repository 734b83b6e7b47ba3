package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment.
// Every integration is optional: a missing value disables the feature
// instead of blocking startup, so the site keeps taking orders even when
// the store or a gateway is not provisioned yet.
type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string

	SendGridAPIKey string
	EmailFrom      string

	AdminPhone string
	AdminEmail string

	FCMServerKey string

	AllowedOrigins     []string
	DefaultCountryCode string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:            getEnv("APP_PORT", "3001"),
		AppEnv:             getEnv("APP_ENV", "production"),
		DBHost:             os.Getenv("DB_HOST"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBPort:             getEnv("DB_PORT", "5432"),
		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:  os.Getenv("TWILIO_PHONE_NUMBER"),
		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@locodhaasu.com"),
		AdminPhone:         os.Getenv("ADMIN_PHONE"),
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		FCMServerKey:       os.Getenv("FCM_SERVER_KEY"),
		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "+34"),
	}

	cfg.AllowedOrigins = []string{
		"http://localhost:5500",
		"http://localhost:3000",
		"http://127.0.0.1:5500",
		"http://127.0.0.1:3000",
	}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, frontend)
	}
	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	return cfg
}

// StoreConfigured reports whether the order store can be dialed at all.
func (c *Config) StoreConfigured() bool {
	return c.DBHost != ""
}

// TwilioConfigured reports whether SMS sending is possible.
func (c *Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioPhoneNumber != ""
}

// SendGridConfigured reports whether email sending is possible.
func (c *Config) SendGridConfigured() bool {
	return c.SendGridAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
