package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "AUTHORITY_BASE_URL", "AUTHORITY_TOKEN", "AUTHORITY_TIMEOUT", "AUTHORITY_MODE", "CATALOG_TTL", "SESSION_LOAD_TIMEOUT", "SESSION_IDLE_TTL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.AuthorityMode != AuthorityModeRemote || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AuthorityTimeout != 15*time.Second || cfg.CatalogTTL != 5*time.Minute || cfg.SessionIdleTTL != 30*time.Minute {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AUTHORITY_BASE_URL", "https://warranty.example.com/api/")
	t.Setenv("AUTHORITY_MODE", "DynamoDB")
	t.Setenv("CATALOG_TTL", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.AuthorityBaseURL != "https://warranty.example.com/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.AuthorityBaseURL)
	}
	if cfg.AuthorityMode != AuthorityModeDynamoDB {
		t.Fatalf("expected dynamodb mode, got %q", cfg.AuthorityMode)
	}
	if cfg.CatalogTTL != 30*time.Second {
		t.Fatalf("expected 30s, got %v", cfg.CatalogTTL)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"PORT":              "http",
		"AUTHORITY_TIMEOUT": "soon",
		"AUTHORITY_MODE":    "carrier-pigeon",
		"SESSION_IDLE_TTL":  "forever",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, val)
			}
		})
	}
}
