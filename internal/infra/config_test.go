package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("HF_API_TOKEN", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.GroqChatModel != "llama-3.1-70b-versatile" {
		t.Fatalf("GroqChatModel = %q", cfg.GroqChatModel)
	}
	if cfg.GroqImageModel != "dall-e-3" {
		t.Fatalf("GroqImageModel = %q", cfg.GroqImageModel)
	}
	if cfg.HFBaseURL != "https://api-inference.huggingface.co" {
		t.Fatalf("HFBaseURL = %q", cfg.HFBaseURL)
	}
	if cfg.HistoryEnabled() {
		t.Fatal("history must be disabled without DATABASE_URL")
	}
	if cfg.RateLimitPerMin != 30 {
		t.Fatalf("RateLimitPerMin = %d", cfg.RateLimitPerMin)
	}
	if cfg.HFMaxLoadingRetries != 3 || cfg.HFLoadingBackoff != 15*time.Second {
		t.Fatalf("HF loading retry defaults = %d, %v", cfg.HFMaxLoadingRetries, cfg.HFLoadingBackoff)
	}
	if cfg.HFRateLimitCooldown != 30*time.Second {
		t.Fatalf("HFRateLimitCooldown = %v", cfg.HFRateLimitCooldown)
	}
	if cfg.HFTimeoutRetries != 2 || cfg.HFTimeoutBackoff != 5*time.Second {
		t.Fatalf("HF timeout retry defaults = %d, %v", cfg.HFTimeoutRetries, cfg.HFTimeoutBackoff)
	}
}

func TestLoadConfigHonorsOverrides(t *testing.T) {
	t.Setenv("PORT", "1919")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("GROQ_CHAT_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com ")
	t.Setenv("HF_MAX_RETRIES", "5")
	t.Setenv("HF_LOADING_BACKOFF_SECONDS", "20")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "1919" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if !cfg.HistoryEnabled() {
		t.Fatal("history must be enabled with DATABASE_URL")
	}
	if cfg.GroqChatModel != "llama-3.3-70b-versatile" {
		t.Fatalf("GroqChatModel = %q", cfg.GroqChatModel)
	}
	want := []string{"https://app.example.com", "https://staging.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %#v", cfg.AllowedOrigins)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Fatalf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
	if cfg.HFMaxLoadingRetries != 5 {
		t.Fatalf("HFMaxLoadingRetries = %d", cfg.HFMaxLoadingRetries)
	}
	if cfg.HFLoadingBackoff != 20*time.Second {
		t.Fatalf("HFLoadingBackoff = %v", cfg.HFLoadingBackoff)
	}
}
