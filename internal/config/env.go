// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment following the `env` and
// `envPrefix` tags. Every variable that fails to parse is reported, not
// just the first one.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var agg env.AggregateError
	if errors.As(err, &agg) && len(agg.Errors) > 1 {
		return fmt.Errorf("error getting env configs: %w", errors.Join(agg.Errors...))
	}
	return fmt.Errorf("error getting env configs: %w", err)
}
