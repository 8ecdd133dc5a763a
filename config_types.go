package main

import "fmt"

type Config struct {
	// StatusAddr is the HTTP listen address for the dashboard.
	StatusAddr string

	// DataDir holds this process's own files: config/, logs/, templates/.
	DataDir string
	// DataAPIDir is p2pool's --data-api directory. Read only.
	DataAPIDir string

	PageTitle        string
	StratumPageTitle string

	LogLevel string
}

// Effective renders the settings for the startup log line.
func (c Config) Effective() string {
	return fmt.Sprintf("status_listen=%s data_dir=%s data_api_dir=%s log_level=%s",
		c.StatusAddr, c.DataDir, c.DataAPIDir, c.LogLevel)
}
