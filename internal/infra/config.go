package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment
// variables. Provider credentials and the database are optional: without them
// the service still answers every request from the template tier.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	GroqAPIKey     string
	GroqBaseURL    string
	GroqChatModel  string
	GroqImageModel string

	HFAPIToken string
	HFBaseURL  string

	HFMaxLoadingRetries int
	HFLoadingBackoff    time.Duration
	HFRateLimitCooldown time.Duration
	HFTimeoutRetries    int
	HFTimeoutBackoff    time.Duration

	AllowedOrigins   []string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		GroqAPIKey:          os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:         getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqChatModel:       getEnv("GROQ_CHAT_MODEL", "llama-3.1-70b-versatile"),
		GroqImageModel:      getEnv("GROQ_IMAGE_MODEL", "dall-e-3"),
		HFAPIToken:          os.Getenv("HF_API_TOKEN"),
		HFBaseURL:           getEnv("HF_BASE_URL", "https://api-inference.huggingface.co"),
		HFMaxLoadingRetries: getEnvInt("HF_MAX_RETRIES", 3),
		HFLoadingBackoff:    time.Second * time.Duration(getEnvInt("HF_LOADING_BACKOFF_SECONDS", 15)),
		HFRateLimitCooldown: time.Second * time.Duration(getEnvInt("HF_RATE_LIMIT_COOLDOWN_SECONDS", 30)),
		HFTimeoutRetries:    getEnvInt("HF_TIMEOUT_RETRIES", 2),
		HFTimeoutBackoff:    time.Second * time.Duration(getEnvInt("HF_TIMEOUT_BACKOFF_SECONDS", 5)),
		AllowedOrigins:      splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:     getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	return cfg, nil
}

// HistoryEnabled reports whether generation history persistence is on.
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
