package config

import (
	"os"
	"strings"
)

// Config holds the configuration values for the application.
type Config struct {
	ListenPort     string
	DatabaseURL    string
	SecretKey      string
	Environment    string
	AllowedOrigins []string
	AdminUsername  string
	AdminPassword  string
}

// LoadConfig loads configuration from environment variables or uses default
// values. The defaults are for local development only; production deployments
// must set DATABASE_URL and SECRET_KEY explicitly.
func LoadConfig() (*Config, error) {
	allowedOrigins := []string{"http://localhost:3000"}
	if s := os.Getenv("ALLOWED_ORIGINS"); s != "" {
		allowedOrigins = strings.Split(s, ",")
	}

	return &Config{
		ListenPort:     getEnvOrDefault("LISTEN_PORT", "8080"),
		DatabaseURL:    getEnvOrDefault("DATABASE_URL", "file:clinic.db"),
		SecretKey:      getEnvOrDefault("SECRET_KEY", "clinic-dev-secret-key"),
		Environment:    getEnvOrDefault("ENVIRONMENT", "development"),
		AllowedOrigins: allowedOrigins,
		AdminUsername:  getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnvOrDefault("ADMIN_PASSWORD", "admin123"),
	}, nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
