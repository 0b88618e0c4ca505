// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the merged config before it is used at startup. Zero
// values are usable everywhere except that a configured database needs a
// flush interval.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
		}
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN != "" && cfg.Workers.SyncInterval <= 0 {
		return fmt.Errorf("%w: sync interval is required with a database", ErrInvalidWorkerConfigs)
	}

	return nil
}
