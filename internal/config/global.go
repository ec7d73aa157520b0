// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride lets tests point the package at a temporary directory.
var configDirOverride string

// Reset restores the default config directory resolution.
// This function is primarily intended for use in tests.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride sets a custom config directory.
// This function is primarily intended for use in tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
