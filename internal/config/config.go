package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Mongo     MongoConfig
	CORS      CORSConfig
	Assistant AssistantConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name     string
	Port     int
	Env      string
	LogLevel string
}

// MongoConfig holds the MongoDB connection settings
type MongoConfig struct {
	URL      string
	Database string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// AssistantConfig holds text generation settings. An empty APIKey
// disables the model path; the template catalog still answers.
type AssistantConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func Load() (*Config, error) {
	// A .env file is a local convenience; deployed environments set
	// real variables, so a missing file is not an error.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Name:     getEnv("APP_NAME", "hrpay-backend"),
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// MongoDB configuration
	config.Mongo = MongoConfig{
		URL:      getEnv("MONGO_URL", ""),
		Database: getEnv("DB_NAME", ""),
	}

	// CORS configuration
	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ORIGINS", "*"),
	}

	// Assistant configuration
	assistantTimeout, err := strconv.Atoi(getEnv("ASSISTANT_TIMEOUT_SECONDS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid ASSISTANT_TIMEOUT_SECONDS: %w", err)
	}

	config.Assistant = AssistantConfig{
		APIKey:  getEnv("GEMINI_API_KEY", ""),
		Model:   getEnv("ASSISTANT_MODEL", "gemini-2.5-flash"),
		Timeout: time.Duration(assistantTimeout) * time.Second,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration, naming every missing required
// variable at once.
func (c *Config) Validate() error {
	var missing []string

	if c.Mongo.URL == "" {
		missing = append(missing, "MONGO_URL")
	}
	if c.Mongo.Database == "" {
		missing = append(missing, "DB_NAME")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if c.Assistant.Timeout <= 0 {
		return fmt.Errorf("ASSISTANT_TIMEOUT_SECONDS must be positive")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
