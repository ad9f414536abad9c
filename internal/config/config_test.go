package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LIFELENS_API_URL", "LIFELENS_DEBUG", "LIFELENS_REQUEST_TIMEOUT", "LIFELENS_REQUESTS_PER_SEC"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.APIURL != "http://localhost:8000" {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.RequestsPerSec != 5 {
		t.Errorf("RequestsPerSec = %v, want 5", cfg.RequestsPerSec)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LIFELENS_API_URL", "https://api.example.com")
	t.Setenv("LIFELENS_DEBUG", "true")
	t.Setenv("LIFELENS_REQUEST_TIMEOUT", "5s")

	cfg := Load()

	if cfg.APIURL != "https://api.example.com" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("LIFELENS_DEBUG", "not-a-bool")
	t.Setenv("LIFELENS_REQUEST_TIMEOUT", "soon")
	t.Setenv("LIFELENS_REQUESTS_PER_SEC", "many")

	cfg := Load()

	if cfg.Debug {
		t.Error("invalid bool should fall back to false")
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("invalid duration should fall back, got %v", cfg.RequestTimeout)
	}
	if cfg.RequestsPerSec != 5 {
		t.Errorf("invalid float should fall back, got %v", cfg.RequestsPerSec)
	}
}
