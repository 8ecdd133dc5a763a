package main

import "path/filepath"

const (
	defaultDataDir          = "data"
	defaultStatusAddr       = "127.0.0.1:3000"
	defaultDataAPIDir       = "/var/lib/p2pool/data-api"
	defaultPageTitle        = "Local Monero P2Pool stats"
	defaultStratumPageTitle = "Local Monero P2Pool stratum"
	defaultLogLevel         = "info"
)

func defaultConfig() Config {
	return Config{
		StatusAddr:       defaultStatusAddr,
		DataDir:          defaultDataDir,
		DataAPIDir:       defaultDataAPIDir,
		PageTitle:        defaultPageTitle,
		StratumPageTitle: defaultStratumPageTitle,
		LogLevel:         defaultLogLevel,
	}
}

func defaultConfigPath(dataDir string) string {
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	return filepath.Join(dataDir, "config", "config.toml")
}
