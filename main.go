package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	debugpkg "runtime/debug"
	"syscall"
	"time"
)

func main() {
	// Keep a stack trace on disk for anything that escapes the handlers.
	defer func() {
		if r := recover(); r != nil {
			if f, err := os.OpenFile("panic.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				defer f.Close()
				fmt.Fprintf(f, "[%s] panic: %v\n%s\n\n", time.Now().UTC().Format(time.RFC3339), r, debugpkg.Stack())
			}
			panic(r)
		}
	}()

	configFlag := flag.String("config", "", "path to config.toml (default <data-dir>/config/config.toml)")
	dataDirFlag := flag.String("data-dir", "", "directory for logs, config and template overrides")
	dataAPIFlag := flag.String("data-api", "", "p2pool --data-api directory to read snapshots from")
	listenFlag := flag.String("listen", "", "HTTP listen address, e.g. 127.0.0.1:3000")
	logLevelFlag := flag.String("log-level", "", "override log level (debug/info/warn/error)")
	stdoutLogFlag := flag.Bool("stdout", false, "mirror logs to stdout")
	flag.Parse()

	overrides := runtimeOverrides{
		dataDir:    *dataDirFlag,
		dataAPIDir: *dataAPIFlag,
		listen:     *listenFlag,
		logLevel:   *logLevelFlag,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reloadChan := make(chan os.Signal, 1)
	signal.Notify(reloadChan, syscall.SIGUSR1, syscall.SIGUSR2)

	cfgPath := *configFlag
	if cfgPath == "" {
		cfgPath = defaultConfigPath(*dataDirFlag)
	}
	cfg, cfgFound, err := loadConfig(cfgPath)
	if err != nil {
		fatal("config file", err, "path", cfgPath)
	}
	applyRuntimeOverrides(&cfg, overrides)
	if err := validateConfig(cfg); err != nil {
		fatal("config", err)
	}

	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		fatal("log level", err)
	}
	setLogLevel(level)

	logPath, err := initLogOutput(cfg.DataDir, *stdoutLogFlag)
	if err != nil {
		fatal("log file", err)
	}
	defer logger.Stop()

	ensureExampleFiles(cfg.DataDir)
	if !cfgFound {
		logger.Info("config file not found; using defaults and flags", "path", cfgPath)
	}
	logger.Info("starting p2pool status", "log_path", logPath)
	logger.Info("effective config", "config", cfg.Effective())
	if info, err := os.Stat(cfg.DataAPIDir); err != nil || !info.IsDir() {
		// Not fatal: p2pool may create the directory after we start, and
		// every request reports the read failure on its own.
		logger.Warn("data api directory not readable yet", "path", cfg.DataAPIDir, "error", err)
	}

	startTime := time.Now()
	statusServer, err := NewStatusServer(cfg, startTime)
	if err != nil {
		fatal("load templates", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-reloadChan:
				switch sig {
				case syscall.SIGUSR1:
					logger.Info("SIGUSR1 received, reloading templates")
					if err := statusServer.ReloadTemplates(); err != nil {
						logger.Error("template reload failed", "error", err)
					}
				case syscall.SIGUSR2:
					logger.Info("SIGUSR2 received, reloading config")
					reloaded, err := reloadStatusConfig(cfgPath, overrides)
					if err != nil {
						logger.Error("config reload failed", "error", err)
						continue
					}
					applyReloadedConfig(statusServer, reloaded)
				}
			}
		}
	}()

	httpServer := &http.Server{
		Addr:              cfg.StatusAddr,
		Handler:           newStatusMux(statusServer),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("status http shutdown error", "error", err)
		}
	}()

	logger.Info("status page listening (http)", "addr", cfg.StatusAddr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fatal("status server error", err)
	}
	logger.Info("shutdown complete", "uptime", time.Since(startTime).Round(time.Second))
}
