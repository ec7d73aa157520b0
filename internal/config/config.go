// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "conch"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// All type declarations consolidated in a single block.
type (
	// Config is the toolkit configuration.
	Config struct {
		UI    UIConfig    `mapstructure:"ui" toml:"ui"`
		Shell ShellConfig `mapstructure:"shell" toml:"shell"`
	}

	// UIConfig controls prompt rendering.
	UIConfig struct {
		// Color enables styled output.
		Color bool `mapstructure:"color" toml:"color"`
		// WrapWidth is the write wrap width: a positive number of columns,
		// 0 for no wrapping, or -1 to track the terminal width.
		WrapWidth int `mapstructure:"wrap_width" toml:"wrap_width"`
		// Theme names the color palette used by the demo commands.
		Theme string `mapstructure:"theme" toml:"theme"`
	}

	// ShellConfig controls the interactive shell.
	ShellConfig struct {
		// PromptPrefix is written before each read; $s expands to the
		// current screen ID.
		PromptPrefix string `mapstructure:"prompt_prefix" toml:"prompt_prefix"`
		// AutoRenderMenu re-renders the menu after each executed item.
		AutoRenderMenu bool `mapstructure:"auto_render_menu" toml:"auto_render_menu"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Color:     true,
			WrapWidth: 0,
			Theme:     "charm",
		},
		Shell: ShellConfig{
			PromptPrefix:   "($s) => ",
			AutoRenderMenu: false,
		},
	}
}

// ConfigDir returns the conch configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigPath returns the full path of the config file.
func ConfigPath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load reads the configuration: defaults first, then the TOML config file
// when one exists, then CONCH_* environment variables. The resolved file
// path is returned alongside; it is empty when only defaults and
// environment applied.
func Load() (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.color", defaults.UI.Color)
	v.SetDefault("ui.wrap_width", defaults.UI.WrapWidth)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("shell.prompt_prefix", defaults.Shell.PromptPrefix)
	v.SetDefault("shell.auto_render_menu", defaults.Shell.AutoRenderMenu)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""
	cfgPath, err := ConfigPath()
	if err != nil {
		return nil, "", err
	}
	if fileExists(cfgPath) {
		v.SetConfigFile(cfgPath)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
		}
		resolvedPath = cfgPath
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, resolvedPath, nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// CreateDefaultConfig creates a default config file if it doesn't exist
func CreateDefaultConfig() error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath, err := ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); err == nil {
		return nil // File exists
	}

	return Save(DefaultConfig())
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath, err := ConfigPath()
	if err != nil {
		return err
	}

	content, err := GenerateTOML(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateTOML renders the configuration as TOML with a short comment
// header, matching what CreateDefaultConfig writes to disk.
func GenerateTOML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# Conch configuration\n\n")

	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
