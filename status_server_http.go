package main

import "net/http"

// newStatusMux wires the dashboard routes. "/" is exact-match inside
// ServeHTTP; everything unknown falls through to its 404 page.
func newStatusMux(s *StatusServer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/stratum", s.handleStratumReport)
	mux.HandleFunc("/api/report", s.handleReportJSON)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/", s)
	return mux
}

func (s *StatusServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/", "":
		s.handleReport(w, r)
	default:
		s.renderErrorPage(w, r, http.StatusNotFound,
			"Page not found",
			"The page you requested could not be found.",
			"Try / for the full report or /stratum for pool metrics only.")
	}
}
