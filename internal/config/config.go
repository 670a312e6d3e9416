package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	AuthorityModeRemote   = "remote"
	AuthorityModeDynamoDB = "dynamodb"
)

// Config is read from the environment. cmd/api autoloads a .env file first.
type Config struct {
	Port               int
	AuthorityBaseURL   string
	AuthorityToken     string
	AuthorityTimeout   time.Duration
	AuthorityMode      string
	CatalogTTL         time.Duration
	SessionLoadTimeout time.Duration
	SessionIdleTTL     time.Duration
	LogLevel           string
}

func Load() (*Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	timeout, err := time.ParseDuration(getenvDefault("AUTHORITY_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTHORITY_TIMEOUT: %w", err)
	}

	catalogTTL, err := time.ParseDuration(getenvDefault("CATALOG_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_TTL: %w", err)
	}

	loadTimeout, err := time.ParseDuration(getenvDefault("SESSION_LOAD_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_LOAD_TIMEOUT: %w", err)
	}

	idleTTL, err := time.ParseDuration(getenvDefault("SESSION_IDLE_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_IDLE_TTL: %w", err)
	}

	mode := strings.ToLower(strings.TrimSpace(getenvDefault("AUTHORITY_MODE", AuthorityModeRemote)))
	switch mode {
	case AuthorityModeRemote, AuthorityModeDynamoDB:
	default:
		return nil, fmt.Errorf("invalid AUTHORITY_MODE %q (expected %s or %s)", mode, AuthorityModeRemote, AuthorityModeDynamoDB)
	}

	return &Config{
		Port:               port,
		AuthorityBaseURL:   strings.TrimRight(getenvDefault("AUTHORITY_BASE_URL", "http://localhost:8081/api"), "/"),
		AuthorityToken:     os.Getenv("AUTHORITY_TOKEN"),
		AuthorityTimeout:   timeout,
		AuthorityMode:      mode,
		CatalogTTL:         catalogTTL,
		SessionLoadTimeout: loadTimeout,
		SessionIdleTTL:     idleTTL,
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
	}, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
