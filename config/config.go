// Package config provides configuration for the farmchat orchestrator.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the orchestrator configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Model endpoint
	OllamaURL   string
	OllamaModel string
	LLMTimeout  time.Duration

	// Weather provider
	WeatherAPIKey  string
	WeatherAPIURL  string
	WeatherTimeout time.Duration

	// Session store. Empty DatabaseURL selects the in-memory store.
	DatabaseURL string
	SessionMax  int
	SessionTTL  time.Duration

	// Provider gating policy. Empty selects the built-in default policy.
	ProviderPolicyFile string

	// Decoding parameters sent with every model request
	Temperature float64
	TopK        int
	TopP        float64

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:           getEnvInt("HTTP_PORT", 5001),
		OllamaURL:          getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:        getEnv("OLLAMA_MODEL", "llama3"),
		LLMTimeout:         time.Duration(getEnvInt("LLM_TIMEOUT_MS", 180000)) * time.Millisecond,
		WeatherAPIKey:      getEnv("WEATHER_API_KEY", ""),
		WeatherAPIURL:      getEnv("WEATHER_API_URL", "http://api.weatherapi.com/v1/current.json"),
		WeatherTimeout:     time.Duration(getEnvInt("WEATHER_TIMEOUT_MS", 10000)) * time.Millisecond,
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		SessionMax:         getEnvInt("SESSION_MAX", 1000),
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_MS", 3600000)) * time.Millisecond,
		ProviderPolicyFile: getEnv("PROVIDER_POLICY_FILE", ""),
		Temperature:        0.5,
		TopK:               40,
		TopP:               0.9,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
