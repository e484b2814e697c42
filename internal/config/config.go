package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Generative-text service (any OpenAI-compatible chat completions API)
	LLMBaseURL           string
	LLMModel             string
	LLMAPIKey            string
	LLMSummaryMaxTokens  int
	LLMAnswerMaxTokens   int
	LLMTemperature       float32
	LLMRequestsPerSecond float64
	LLMTimeout           time.Duration

	// Transcript source
	TranscriptBaseURL           string
	TranscriptLanguages         []string
	TranscriptTimeout           time.Duration
	// TranscriptRequestsPerSecond paces requests to the transcript source.
	TranscriptRequestsPerSecond float64

	MinTranscriptLength int

	DBPath      string
	APIPort     string
	LogLevel    slog.Level
	LogFormat   string
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMBaseURL:        getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:          getEnv("LLM_MODEL", "gpt-4o"),
		LLMAPIKey:         getEnv("LLM_API_KEY", os.Getenv("OPENAI_API_KEY")),
		TranscriptBaseURL: getEnv("TRANSCRIPT_BASE_URL", "https://www.youtube.com"),
		DBPath:            getEnv("DB_PATH", "./data/transcript-tutor.db"),
		APIPort:           getEnv("API_PORT", "5001"),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY (or OPENAI_API_KEY) is required")
	}

	if cfg.LLMSummaryMaxTokens, err = getPositiveInt("LLM_SUMMARY_MAX_TOKENS", 4000); err != nil {
		return nil, err
	}
	if cfg.LLMAnswerMaxTokens, err = getPositiveInt("LLM_ANSWER_MAX_TOKENS", 1000); err != nil {
		return nil, err
	}
	if cfg.MinTranscriptLength, err = getPositiveInt("MIN_TRANSCRIPT_LENGTH", 50); err != nil {
		return nil, err
	}

	temperature, err := strconv.ParseFloat(getEnv("LLM_TEMPERATURE", "0.7"), 32)
	if err != nil {
		return nil, fmt.Errorf("LLM_TEMPERATURE must be a number: %w", err)
	}
	if temperature < 0 || temperature > 2 {
		return nil, fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2")
	}
	cfg.LLMTemperature = float32(temperature)

	if cfg.LLMRequestsPerSecond, err = getPositiveFloat("LLM_REQUESTS_PER_SECOND", 2); err != nil {
		return nil, err
	}
	if cfg.TranscriptRequestsPerSecond, err = getPositiveFloat("TRANSCRIPT_REQUESTS_PER_SECOND", 1); err != nil {
		return nil, err
	}

	if cfg.LLMTimeout, err = getDuration("LLM_TIMEOUT", 120*time.Second); err != nil {
		return nil, err
	}
	if cfg.TranscriptTimeout, err = getDuration("TRANSCRIPT_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	cfg.TranscriptLanguages = getList("TRANSCRIPT_LANGUAGES", []string{"en"})
	cfg.CORSOrigins = getList("CORS_ORIGINS", []string{"*"})

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	// Create the data directory for the DB file
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getPositiveInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return n, nil
}

func getPositiveFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return f, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 30s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return d, nil
}

// getList splits a comma-separated variable, dropping empty entries.
func getList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
