package config

import (
	"fmt"
	"time"
)

// Console client defaults.
const (
	DefaultClientServerURL      = "http://localhost:8080"
	DefaultClientRequestTimeout = 30 * time.Second
)

// ClientAdapter holds network settings used by the console transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the go-family-tree API.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the console client.
type ClientConfig struct {
	// Adapter contains the server URL and request timeout.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
}

// GetClientConfig loads the console client configuration from environment
// variables, applies defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if cfg.Adapter.ServerURL == "" {
		cfg.Adapter.ServerURL = DefaultClientServerURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, cfg.validate()
}
