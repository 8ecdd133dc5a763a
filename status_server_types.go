package main

type ErrorPageData struct {
	StatusCode int
	Title      string
	Message    string
	Detail     string
	Path       string
}

type healthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

type errorResponse struct {
	Error string `json:"error"`
}
