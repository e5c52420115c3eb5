// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. An empty config (nothing
// merged yet) is accepted so that partial builders can be tested.
func (cfg *StructuredConfig) validate() error {
	if *cfg == (StructuredConfig{}) {
		return nil
	}

	if cfg.App.SessionTTL <= 0 || cfg.App.TokenIssuer == "" || cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.ExtractionDelay < 0 {
		return fmt.Errorf("%w: negative extraction delay", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.ExtractionURL != "" {
		u, err := url.Parse(cfg.Adapter.ExtractionURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: malformed extraction url", ErrInvalidAdapterConfigs)
		}
		if cfg.Adapter.RequestTimeout <= 0 {
			return fmt.Errorf("%w: request timeout is required for remote extraction", ErrInvalidAdapterConfigs)
		}
	}

	if cfg.Workers.AutosaveInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validateServer checks the settings the HTTP API needs on top of
// [StructuredConfig.validate].
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	// drafts must survive a restart of the terminal client
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.AutosaveInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
