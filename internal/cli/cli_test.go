package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
	if !strings.HasPrefix(dir, os.Getenv("XDG_CACHE_HOME")) {
		t.Errorf("cacheDir() = %q, should be under XDG_CACHE_HOME", dir)
	}
}

func TestCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	expected := []string{"plan", "apply", "render", "play", "history", "cache", "serve", "completion"}
	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range expected {
		if !names[want] {
			t.Errorf("root command missing subcommand %q", want)
		}
	}
}

func TestParseFormatsDefault(t *testing.T) {
	got := parseFormats("")
	if len(got) != 1 || got[0] != "text" {
		t.Errorf("parseFormats(\"\") = %v, want [text]", got)
	}

	got = parseFormats("svg,png")
	if len(got) != 2 || got[0] != "svg" || got[1] != "png" {
		t.Errorf("parseFormats = %v, want [svg png]", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := loadConfig()
	if cfg == nil {
		t.Fatal("loadConfig() should never return nil")
	}
	if cfg.RedisURL != "" || cfg.MongoURI != "" {
		t.Errorf("missing config should give zero values, got %+v", cfg)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(cfgDir, 0700); err != nil {
		t.Fatal(err)
	}
	content := "redis_url = \"redis://localhost:6379/0\"\naddr = \":9000\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfig()
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("RedisURL = %q, want redis URL from config", cfg.RedisURL)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Addr)
	}
}
