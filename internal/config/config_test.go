// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// useTempConfigDir routes the package at a fresh directory for one test.
func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.UI.Color {
		t.Error("expected color enabled by default")
	}
	if cfg.UI.WrapWidth != 0 {
		t.Errorf("expected wrap width 0, got %d", cfg.UI.WrapWidth)
	}
	if cfg.UI.Theme != "charm" {
		t.Errorf("expected theme charm, got %q", cfg.UI.Theme)
	}
	if cfg.Shell.PromptPrefix != "($s) => " {
		t.Errorf("unexpected prompt prefix %q", cfg.Shell.PromptPrefix)
	}
	if cfg.Shell.AutoRenderMenu {
		t.Error("expected auto render menu disabled by default")
	}
}

func TestConfigDirOverride(t *testing.T) {
	dir := useTempConfigDir(t)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if got != dir {
		t.Errorf("expected %q, got %q", dir, got)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	useTempConfigDir(t)

	cfg, path, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != "" {
		t.Errorf("expected empty resolved path, got %q", path)
	}
	if cfg.UI.Theme != "charm" {
		t.Errorf("expected default theme, got %q", cfg.UI.Theme)
	}
}

func TestLoadWithFile(t *testing.T) {
	dir := useTempConfigDir(t)

	content := "[ui]\ncolor = false\nwrap_width = 72\ntheme = \"mono\"\n"
	cfgPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, path, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != cfgPath {
		t.Errorf("expected resolved path %q, got %q", cfgPath, path)
	}
	if cfg.UI.Color {
		t.Error("expected color disabled")
	}
	if cfg.UI.WrapWidth != 72 {
		t.Errorf("expected wrap width 72, got %d", cfg.UI.WrapWidth)
	}
	if cfg.UI.Theme != "mono" {
		t.Errorf("expected theme mono, got %q", cfg.UI.Theme)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Shell.PromptPrefix != "($s) => " {
		t.Errorf("unexpected prompt prefix %q", cfg.Shell.PromptPrefix)
	}
}

func TestLoadEnvironmentOverride(t *testing.T) {
	useTempConfigDir(t)
	t.Setenv("CONCH_UI_THEME", "mono")
	t.Setenv("CONCH_SHELL_PROMPT_PREFIX", "$s> ")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "mono" {
		t.Errorf("expected env theme mono, got %q", cfg.UI.Theme)
	}
	if cfg.Shell.PromptPrefix != "$s> " {
		t.Errorf("expected env prompt prefix, got %q", cfg.Shell.PromptPrefix)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	dir := useTempConfigDir(t)

	cfgPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(cfgPath, []byte("[ui\nnot toml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := Load(); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := useTempConfigDir(t)

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig: %v", err)
	}

	cfgPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	content, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.HasPrefix(string(content), "# Conch configuration") {
		t.Errorf("expected comment header, got %q", string(content))
	}

	// A second call must not overwrite an existing file.
	if err := os.WriteFile(cfgPath, []byte("# edited\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig: %v", err)
	}
	content, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(content) != "# edited\n" {
		t.Error("existing config file was overwritten")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.UI.WrapWidth = -1
	cfg.UI.Theme = "dracula"
	cfg.Shell.AutoRenderMenu = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UI.WrapWidth != -1 {
		t.Errorf("expected wrap width -1, got %d", loaded.UI.WrapWidth)
	}
	if loaded.UI.Theme != "dracula" {
		t.Errorf("expected theme dracula, got %q", loaded.UI.Theme)
	}
	if !loaded.Shell.AutoRenderMenu {
		t.Error("expected auto render menu enabled")
	}
}

func TestGenerateTOML(t *testing.T) {
	t.Parallel()

	out, err := GenerateTOML(DefaultConfig())
	if err != nil {
		t.Fatalf("GenerateTOML: %v", err)
	}
	text := string(out)
	for _, want := range []string{"[ui]", "[shell]", "wrap_width", "prompt_prefix"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q:\n%s", want, text)
		}
	}
}
