// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/woozymasta/dzmeasure/internal/export"
)

// clientConfig is the subset of configuration the page needs.
type clientConfig struct {
	Projection      string  `json:"projection"`
	DefaultSelector string  `json:"default_selector"`
	Attribution     string  `json:"attribution,omitempty"`
	Scale           float64 `json:"scale"`
}

// HandleConfig serves the page configuration as JSON.
func (s *ServerContext) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(clientConfig{
		Projection:      s.Config.Projection,
		DefaultSelector: s.Config.DefaultSelector,
		Attribution:     s.Config.Attribution,
		Scale:           s.Config.Scale,
	})
}

// HandleFavicon serves the site icon.
func (s *ServerContext) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.Favicon)
}

// HandleIndex serves the measurement page.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && strings.Contains(r.URL.Path, ".") {
		http.NotFound(w, r)
		return
	}

	etag := fmt.Sprintf(`"%x"`, len(s.IndexHTML))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// HandleExport serves the committed features of a session as a GeoJSON download.
func (s *ServerContext) HandleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.Session(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := sess.Export()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}
