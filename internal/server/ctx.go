package server

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/woozymasta/dzmeasure/assets"
	"github.com/woozymasta/dzmeasure/internal/config"
	"github.com/woozymasta/dzmeasure/internal/geo"
	"github.com/woozymasta/dzmeasure/internal/session"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config    *config.Config
	IndexHTML []byte
	Favicon   []byte

	upgrader websocket.Upgrader
	sessions map[string]*session.Session
	mu       sync.RWMutex
}

// ErrPageProjection is returned for projections the map page cannot draw in.
// The page sends planar metre coordinates; lon/lat scripts go through replay.
var ErrPageProjection = errors.New("projection not supported by the map page")

// NewServerContext builds the page assets and prepares the session registry.
func NewServerContext(cfg *config.Config) (*ServerContext, error) {
	if cfg.Projection != "" && cfg.Projection != geo.ProjectionPlanar {
		return nil, fmt.Errorf("%w: %q", ErrPageProjection, cfg.Projection)
	}

	m := assets.Minifier()

	index, err := assets.Build(m)
	if err != nil {
		return nil, err
	}

	favicon, err := assets.Favicon(m)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("projection", cfg.Projection).
		Float64("scale", cfg.Scale).
		Str("default_selector", cfg.DefaultSelector).
		Int("index_bytes", len(index)).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:    cfg,
		IndexHTML: index,
		Favicon:   favicon,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		sessions: make(map[string]*session.Session),
	}, nil
}

// SessionOptions derives per-session options from the configuration.
func (s *ServerContext) SessionOptions() session.Options {
	return session.Options{
		Math:        s.Config.Math(),
		Offsets:     s.Config.Offsets(),
		DefaultKind: s.Config.DefaultKind(),
	}
}

// Session looks up a live session by id.
func (s *ServerContext) Session(id string) (*session.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

// Sessions returns the number of live sessions.
func (s *ServerContext) Sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

func (s *ServerContext) register(sess *session.Session) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	log.Debug().Str("session", sess.ID).Int("sessions", n).Msg("Session registered")
}

func (s *ServerContext) unregister(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()

	log.Debug().Str("session", id).Int("sessions", n).Msg("Session unregistered")
}
