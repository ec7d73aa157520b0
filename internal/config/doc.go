// SPDX-License-Identifier: MPL-2.0

// Package config resolves the conch configuration from built-in defaults,
// a TOML file in the platform config directory, and CONCH_* environment
// variables, in that order of precedence (later sources win).
package config
