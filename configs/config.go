package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port              string
	Environment       string
	ModelEndpoint     string
	ModelName         string
	ModelTimeout      time.Duration
	Tagset            string
	WordBankDir       string
	AdminAPIKey       string
	QuestionsPerRound int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:              getEnv("PORT", "5000"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		ModelEndpoint:     getEnv("MODEL_ENDPOINT", ""),
		ModelName:         getEnv("MODEL_NAME", "tl_calamancy_md-0.2.0"),
		ModelTimeout:      getEnvDuration("MODEL_TIMEOUT", 15*time.Second),
		Tagset:            getEnv("POS_TAGSET", "core"),
		WordBankDir:       getEnv("WORD_BANK_DIR", "words"),
		AdminAPIKey:       getEnv("ADMIN_API_KEY", ""),
		QuestionsPerRound: getEnvInt("QUESTIONS_PER_ROUND", 5),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
