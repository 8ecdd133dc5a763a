package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
)

// loadConfig starts from defaults and applies configPath when it exists. A
// missing file is not an error; the flags alone are enough to run.
func loadConfig(configPath string) (Config, bool, error) {
	cfg := defaultConfig()
	fc, ok, err := loadTOMLFile[baseFileConfig](configPath)
	if err != nil {
		return Config{}, false, err
	}
	if ok {
		applyBaseConfig(&cfg, *fc)
	}
	return cfg, ok, nil
}

func loadTOMLFile[T any](path string) (*T, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg T
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, true, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, true, nil
}

func applyBaseConfig(cfg *Config, fc baseFileConfig) {
	if v := strings.TrimSpace(fc.Server.StatusListen); v != "" {
		cfg.StatusAddr = v
	}
	if v := strings.TrimSpace(fc.P2Pool.DataAPIDir); v != "" {
		cfg.DataAPIDir = v
	}
	if v := strings.TrimSpace(fc.Page.Title); v != "" {
		cfg.PageTitle = v
	}
	if v := strings.TrimSpace(fc.Page.StratumTitle); v != "" {
		cfg.StratumPageTitle = v
	}
	if v := strings.TrimSpace(fc.Logging.Level); v != "" {
		cfg.LogLevel = v
	}
}
