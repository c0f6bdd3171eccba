// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// defaultTokenLength is the number of random bytes in a minted auth token
// when APP_TOKEN_LENGTH is not configured.
const defaultTokenLength = 20

// applyDefaults fills in values that have sane defaults and are therefore
// not required from any configuration source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenLength == 0 {
		cfg.App.TokenLength = defaultTokenLength
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
