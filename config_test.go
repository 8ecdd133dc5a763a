package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, found, err := loadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if found {
		t.Fatalf("found = true for missing file")
	}
	if cfg != defaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_AppliesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[server]
status_listen = "0.0.0.0:8080"

[p2pool]
data_api_dir = "/srv/p2pool/api"

[page]
title = "Rig stats"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, found, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !found {
		t.Fatalf("found = false")
	}
	want := defaultConfig()
	want.StatusAddr = "0.0.0.0:8080"
	want.DataAPIDir = "/srv/p2pool/api"
	want.PageTitle = "Rig stats"
	want.LogLevel = "debug"
	if cfg != want {
		t.Fatalf("cfg = %+v\nwant  %+v", cfg, want)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\nstatus_listen = "), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := loadConfig(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestApplyRuntimeOverrides(t *testing.T) {
	cfg := defaultConfig()
	applyRuntimeOverrides(&cfg, runtimeOverrides{
		dataDir:    "/tmp/status",
		dataAPIDir: " /run/p2pool ",
		listen:     ":9000",
	})
	if cfg.DataDir != "/tmp/status" || cfg.DataAPIDir != "/run/p2pool" || cfg.StatusAddr != ":9000" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("empty override changed LogLevel to %q", cfg.LogLevel)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty listen", func(c *Config) { c.StatusAddr = "" }, "status_listen"},
		{"listen without port", func(c *Config) { c.StatusAddr = "localhost" }, "status_listen"},
		{"empty data api", func(c *Config) { c.DataAPIDir = " " }, "data_api_dir"},
		{"empty title", func(c *Config) { c.PageTitle = "" }, "title"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateConfig: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("validateConfig error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestReloadStatusConfig_KeepsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[p2pool]\ndata_api_dir = \"/from/file\"\n[page]\ntitle = \"Reloaded\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := reloadStatusConfig(path, runtimeOverrides{dataAPIDir: "/from/flag"})
	if err != nil {
		t.Fatalf("reloadStatusConfig: %v", err)
	}
	if cfg.DataAPIDir != "/from/flag" || cfg.PageTitle != "Reloaded" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestExampleConfigRoundTrips(t *testing.T) {
	data, err := exampleConfigBytes()
	if err != nil {
		t.Fatalf("exampleConfigBytes: %v", err)
	}
	var fc baseFileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		t.Fatalf("example does not parse: %v\n%s", err, data)
	}
	cfg := Config{}
	applyBaseConfig(&cfg, fc)
	want := defaultConfig()
	if cfg.StatusAddr != want.StatusAddr || cfg.DataAPIDir != want.DataAPIDir || cfg.PageTitle != want.PageTitle || cfg.LogLevel != want.LogLevel {
		t.Fatalf("example config = %+v, want defaults %+v", cfg, want)
	}
}

func TestEnsureExampleFiles(t *testing.T) {
	dataDir := t.TempDir()
	ensureExampleFiles(dataDir)
	if _, err := os.Stat(filepath.Join(dataDir, "config", "examples", "config.toml.example")); err != nil {
		t.Fatalf("example not written: %v", err)
	}
}
