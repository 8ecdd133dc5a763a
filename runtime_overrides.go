package main

import "strings"

// runtimeOverrides carries command-line values; empty means "keep config".
type runtimeOverrides struct {
	dataDir    string
	dataAPIDir string
	listen     string
	logLevel   string
}

func applyRuntimeOverrides(cfg *Config, overrides runtimeOverrides) {
	if v := strings.TrimSpace(overrides.dataDir); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(overrides.dataAPIDir); v != "" {
		cfg.DataAPIDir = v
	}
	if v := strings.TrimSpace(overrides.listen); v != "" {
		cfg.StatusAddr = v
	}
	if v := strings.TrimSpace(overrides.logLevel); v != "" {
		cfg.LogLevel = v
	}
}

// reloadStatusConfig re-reads the config file and reapplies the same
// command-line overrides, for SIGUSR2.
func reloadStatusConfig(cfgPath string, overrides runtimeOverrides) (Config, error) {
	cfg, _, err := loadConfig(cfgPath)
	if err != nil {
		return Config{}, err
	}
	applyRuntimeOverrides(&cfg, overrides)
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyReloadedConfig makes a SIGUSR2 reload take effect. The listen address
// is bound once at startup, so a change there is logged and ignored. A new
// data dir moves the log file and template overrides with it.
func applyReloadedConfig(s *StatusServer, cfg Config) {
	current := s.Config()
	if cfg.StatusAddr != current.StatusAddr {
		logger.Warn("status_listen change requires a restart", "current", current.StatusAddr, "configured", cfg.StatusAddr)
		cfg.StatusAddr = current.StatusAddr
	}

	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("reloaded log level rejected", "level", cfg.LogLevel, "error", err)
		cfg.LogLevel = current.LogLevel
	} else {
		setLogLevel(level)
	}

	dataDirChanged := cfg.DataDir != current.DataDir
	if dataDirChanged {
		logPath, err := initLogOutput(cfg.DataDir, logger.mirrorsStdout())
		if err != nil {
			logger.Error("data_dir change rejected", "data_dir", cfg.DataDir, "error", err)
			cfg.DataDir = current.DataDir
			dataDirChanged = false
		} else {
			logger.Info("log output moved", "log_path", logPath)
		}
	}

	s.UpdateConfig(cfg)
	if dataDirChanged {
		if err := s.ReloadTemplates(); err != nil {
			logger.Error("template reload failed", "data_dir", cfg.DataDir, "error", err)
		}
	}
	logger.Info("config reloaded", "config", cfg.Effective())
}
