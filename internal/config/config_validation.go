// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// All violations are reported together, each wrapped in the sentinel of
// its configuration group.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs))
	}

	if err := validateEndpoint(cfg.AI.Endpoint); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidAIConfigs, err))
	}
	if cfg.AI.MaxTokens < 0 {
		errs = append(errs, fmt.Errorf("%w: max tokens must not be negative", ErrInvalidAIConfigs))
	}
	if t := cfg.AI.Temperature; t != nil && (*t < 0 || *t > 2) {
		errs = append(errs, fmt.Errorf("%w: temperature must be in [0, 2]", ErrInvalidAIConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if err := validateEndpoint(cfg.Adapter.ServerURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}

func validateEndpoint(raw string) error {
	if raw == "" {
		return errors.New("endpoint is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint %q must be an absolute http(s) URL", raw)
	}
	return nil
}
