package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ensureExampleFiles writes config/examples/config.toml.example under
// dataDir so operators have a starting point. Failures only warn.
func ensureExampleFiles(dataDir string) {
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	examplesDir := filepath.Join(dataDir, "config", "examples")
	if err := os.MkdirAll(examplesDir, 0o755); err != nil {
		logger.Warn("create examples directory failed", "dir", examplesDir, "error", err)
		return
	}
	path := filepath.Join(examplesDir, "config.toml.example")
	data, err := exampleConfigBytes()
	if err != nil {
		logger.Warn("encode config example failed", "error", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Warn("write example config failed", "path", path, "error", err)
	}
}

func buildBaseFileConfig(cfg Config) baseFileConfig {
	return baseFileConfig{
		Server:  serverConfig{StatusListen: cfg.StatusAddr},
		P2Pool:  p2poolConfig{DataAPIDir: cfg.DataAPIDir},
		Page:    pageConfig{Title: cfg.PageTitle, StratumTitle: cfg.StratumPageTitle},
		Logging: loggingConfig{Level: cfg.LogLevel},
	}
}

func exampleConfigBytes() ([]byte, error) {
	data, err := toml.Marshal(buildBaseFileConfig(defaultConfig()))
	if err != nil {
		return nil, err
	}
	header := fmt.Appendf(nil, `# p2poolStatus config.toml example
# Copy to %s and edit. Every key is optional.
#
# [p2pool].data_api_dir must point at the directory p2pool was started with
# via --data-api; local/stratum and network/stats are read from it.

`, defaultConfigPath(defaultDataDir))
	return append(header, data...), nil
}
