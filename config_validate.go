package main

import (
	"fmt"
	"net"
	"strings"
)

func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.StatusAddr) == "" {
		return fmt.Errorf("status_listen is required")
	}
	if _, _, err := net.SplitHostPort(cfg.StatusAddr); err != nil {
		return fmt.Errorf("status_listen %q: %w", cfg.StatusAddr, err)
	}
	if strings.TrimSpace(cfg.DataAPIDir) == "" {
		return fmt.Errorf("data_api_dir is required (set [p2pool].data_api_dir or -data-api)")
	}
	if strings.TrimSpace(cfg.PageTitle) == "" || strings.TrimSpace(cfg.StratumPageTitle) == "" {
		return fmt.Errorf("page titles cannot be empty")
	}
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}
