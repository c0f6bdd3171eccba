// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the merged configuration has
	// no database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidServerConfigs is returned when the merged configuration has
	// no HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configs: HTTP address is required")
)
