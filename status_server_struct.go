package main

import (
	"fmt"
	"html/template"
	"sync"
	"sync/atomic"
	"time"
)

// StatusServer serves the report pages. Each request rebuilds its report
// from the snapshot files; the only shared state is templates and config.
type StatusServer struct {
	tmpl    *template.Template
	tmplMu  sync.RWMutex
	tmplGen atomic.Uint64
	cfg     atomic.Value
	start   time.Time

	// now stamps chain-tip ages; nil means time.Now.
	now func() time.Time
}

func NewStatusServer(cfg Config, start time.Time) (*StatusServer, error) {
	tmpl, err := loadTemplates(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	s := &StatusServer{tmpl: tmpl, start: start}
	s.UpdateConfig(cfg)
	return s, nil
}

func (s *StatusServer) Config() Config {
	if s == nil {
		return Config{}
	}
	if v := s.cfg.Load(); v != nil {
		if cfg, ok := v.(Config); ok {
			return cfg
		}
	}
	return Config{}
}

func (s *StatusServer) UpdateConfig(cfg Config) {
	s.cfg.Store(cfg)
}

// ReloadTemplates re-reads the templates from disk (SIGUSR1). On error the
// previous set stays active.
func (s *StatusServer) ReloadTemplates() error {
	if s == nil {
		return fmt.Errorf("status server is nil")
	}
	tmpl, err := loadTemplates(s.Config().DataDir)
	if err != nil {
		return err
	}
	s.tmplMu.Lock()
	s.tmpl = tmpl
	s.tmplMu.Unlock()
	s.tmplGen.Add(1)
	logger.Info("templates reloaded successfully")
	return nil
}

func (s *StatusServer) templates() *template.Template {
	s.tmplMu.RLock()
	defer s.tmplMu.RUnlock()
	return s.tmpl
}

// templateGeneration counts successful reloads; it keys page ETags.
func (s *StatusServer) templateGeneration() uint64 {
	return s.tmplGen.Load()
}

func (s *StatusServer) renderer() reportRenderer {
	return reportRenderer{tmpl: s.templates()}
}

func (s *StatusServer) reportBuilder() *reportBuilder {
	b := newReportBuilder(s.Config())
	if s.now != nil {
		b.now = s.now
	}
	return b
}
