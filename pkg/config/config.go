package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries all process-wide settings. It is built once in main
// and handed to the components that need it; nothing reads env vars
// after startup.
type Config struct {
	Server ServerConfig
	Admin  AdminConfig
	Email  EmailConfig
	JWT    JWTConfig

	DatabaseURL string
	BaseURL     string
}

type ServerConfig struct {
	Port string
}

// AdminConfig identifies the operator inbox that receives submission
// notifications and the daily digest.
type AdminConfig struct {
	Email string
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
}

type JWTConfig struct {
	Secret string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Admin: AdminConfig{
			Email: getEnv("ADMIN_EMAIL", "info@bluehawks.com"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "Bluehawks Security Services <noreply@bluehawks.com>"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "bluehawks-dev-secret"),
		},
		DatabaseURL: getEnv("DATABASE_URL", ""),
		BaseURL:     getEnv("BASE_URL", "https://bluehawks.com"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
