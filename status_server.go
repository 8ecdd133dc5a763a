package main

import (
	"errors"
	"net/http"
	"time"
)

func (s *StatusServer) handleReport(w http.ResponseWriter, r *http.Request) {
	s.serveReportPage(w, r, true)
}

func (s *StatusServer) handleStratumReport(w http.ResponseWriter, r *http.Request) {
	s.serveReportPage(w, r, false)
}

func (s *StatusServer) buildReport(withChain bool) (Report, error) {
	b := s.reportBuilder()
	if withChain {
		return b.Build()
	}
	return b.BuildPoolOnly()
}

func (s *StatusServer) serveReportPage(w http.ResponseWriter, r *http.Request, withChain bool) {
	if !allowReadMethod(w, r) {
		return
	}
	start := time.Now()

	rep, err := s.buildReport(withChain)
	if err != nil {
		logger.Error("build report", "path", r.URL.Path, "error", err)
		title, message := snapshotErrorSummary(err)
		s.renderErrorPage(w, r, http.StatusInternalServerError, title, message, "")
		return
	}
	h := w.Header()
	h.Set("Cache-Control", "no-cache")
	etag, err := reportETag(rep, s.templateGeneration())
	if err != nil {
		logger.Warn("report etag", "path", r.URL.Path, "error", err)
	} else {
		h.Set("ETag", etag)
		if etagMatches(r.Header.Get("If-None-Match"), etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	body, err := s.renderer().Render(rep)
	if err != nil {
		h.Del("ETag")
		logger.Error("status template error", "path", r.URL.Path, "error", err)
		s.renderErrorPage(w, r, http.StatusInternalServerError,
			"Status page error",
			"We couldn't render the pool status page.",
			"Template error while rendering the report.")
		return
	}

	payload := []byte(body)
	h.Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	if _, err := w.Write(payload); err != nil {
		logger.Warn("write report response", "path", r.URL.Path, "error", err)
	}
	if debugEnabled() {
		logger.Debug("report served", "path", r.URL.Path, "chain", withChain, "bytes", len(payload), "elapsed", time.Since(start))
	}
}

func (s *StatusServer) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	if !allowReadMethod(w, r) {
		return
	}
	rep, err := s.buildReport(true)
	if err != nil {
		logger.Error("build report", "path", r.URL.Path, "error", err)
		_, message := snapshotErrorSummary(err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: message})
		return
	}
	writeJSON(w, http.StatusOK, rep.toJSON())
}

func (s *StatusServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowReadMethod(w, r) {
		return
	}
	uptime := int64(0)
	if !s.start.IsZero() {
		uptime = int64(time.Since(s.start) / time.Second)
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", UptimeSeconds: uptime})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := fastJSONMarshal(v)
	if err != nil {
		logger.Error("encode json response", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		logger.Warn("write json response", "error", err)
	}
}

func allowReadMethod(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

// snapshotErrorSummary maps a pipeline failure to page text. Paths and raw
// decoder messages stay in the log.
func snapshotErrorSummary(err error) (title, message string) {
	var ioErr *SnapshotIOError
	var parseErr *SnapshotParseError
	switch {
	case errors.As(err, &ioErr):
		return "Snapshot unavailable", "A p2pool snapshot file could not be read. Check that p2pool is running with --data-api."
	case errors.As(err, &parseErr):
		return "Snapshot unreadable", "The " + parseErr.Snapshot + " snapshot could not be parsed."
	default:
		return "Status page error", "The report could not be built."
	}
}

// renderErrorPage renders the shared error template, falling back to
// http.Error if the template itself fails.
func (s *StatusServer) renderErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, title, message, detail string) {
	data := ErrorPageData{
		StatusCode: statusCode,
		Title:      title,
		Message:    message,
		Detail:     detail,
		Path:       r.URL.Path,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	tmpl := s.templates()
	if tmpl == nil {
		_, _ = w.Write([]byte(message))
		return
	}
	if err := tmpl.ExecuteTemplate(w, "error", data); err != nil {
		logger.Error("error page template error", "error", err)
	}
}
