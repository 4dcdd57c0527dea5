package server

import "net/http"

// Routes registers every handler on a new mux wrapped with request logging.
func (s *ServerContext) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/config", s.HandleConfig)
	mux.HandleFunc("GET /api/sessions/{id}/export", s.HandleExport)
	mux.HandleFunc("GET /favicon.svg", s.HandleFavicon)
	mux.HandleFunc("GET /ws", s.HandleWS)
	mux.HandleFunc("GET /", s.HandleIndex)

	return RequestLogger(mux)
}
