package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error when OPENAI_API_KEY is unset")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("Expected error to name OPENAI_API_KEY, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Expected default model gpt-4o-mini, got %q", cfg.Model)
	}
	if cfg.RequestTimeout != 120*time.Second {
		t.Errorf("Expected default request timeout 120s, got %v", cfg.RequestTimeout)
	}
	if !cfg.IsDevelopment() {
		t.Error("Expected development mode with no FRONTEND_URL")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("REQUEST_TIMEOUT", "45s")
	t.Setenv("DOCUMENT_TTL", "72h")
	t.Setenv("FRONTEND_URL", "https://studio.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %q", cfg.Port)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("Expected model gpt-4o, got %q", cfg.Model)
	}
	if cfg.RequestTimeout != 45*time.Second {
		t.Errorf("Expected request timeout 45s, got %v", cfg.RequestTimeout)
	}
	if cfg.DocumentTTL != 72*time.Hour {
		t.Errorf("Expected document TTL 72h, got %v", cfg.DocumentTTL)
	}
	if cfg.IsDevelopment() {
		t.Error("Expected production mode with a public FRONTEND_URL")
	}
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RequestTimeout != 120*time.Second {
		t.Errorf("Expected fallback timeout 120s, got %v", cfg.RequestTimeout)
	}
}
