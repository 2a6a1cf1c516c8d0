// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	HIBP      HIBPConfig
	Evaluator EvaluatorConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// HIBPConfig holds breach-database client configuration.
type HIBPConfig struct {
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
	Enabled   bool
}

// EvaluatorConfig holds strength evaluator tuning.
// These mirror the domain scoring policy; they are configuration, not
// behavior inferred at runtime.
type EvaluatorConfig struct {
	MinLength        int
	BonusLength      int
	EntropyThreshold float64
	SimilarityRatio  float64
	WordlistFile     string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		HIBP: HIBPConfig{
			Endpoint:  getEnv("HIBP_ENDPOINT", "https://api.pwnedpasswords.com"),
			UserAgent: getEnv("HIBP_USER_AGENT", "password-auditor"),
			Timeout:   getEnvAsDuration("HIBP_TIMEOUT", 5*time.Second),
			Enabled:   getEnvAsBool("HIBP_ENABLED", true),
		},
		Evaluator: EvaluatorConfig{
			MinLength:        getEnvAsInt("EVALUATOR_MIN_LENGTH", 8),
			BonusLength:      getEnvAsInt("EVALUATOR_BONUS_LENGTH", 12),
			EntropyThreshold: getEnvAsFloat("EVALUATOR_ENTROPY_THRESHOLD", 60),
			SimilarityRatio:  getEnvAsFloat("EVALUATOR_SIMILARITY_RATIO", 0.78),
			WordlistFile:     getEnv("EVALUATOR_WORDLIST_FILE", ""),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
