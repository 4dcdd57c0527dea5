package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/woozymasta/dzmeasure/internal/session"
)

const writeWait = 10 * time.Second

// wsOutbox writes session commands to a websocket connection.
type wsOutbox struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Send implements session.Outbox.
func (o *wsOutbox) Send(cmd session.Command) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return o.conn.WriteJSON(cmd)
}

// HandleWS runs one measurement session per websocket connection.
// Events are handled in the order they are read.
func (s *ServerContext) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Str("ip", r.RemoteAddr).Msg("Websocket upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()

	sess := session.New(&wsOutbox{conn: conn}, s.SessionOptions())
	s.register(sess)
	defer s.unregister(sess.ID)

	sess.Open()
	defer sess.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				log.Warn().Err(err).Str("session", sess.ID).Msg("Websocket closed unexpectedly")
			}
			return
		}

		var ev session.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			log.Warn().Err(err).Str("session", sess.ID).Msg("Malformed event")
			continue
		}

		if err := sess.Handle(ev); err != nil {
			log.Warn().Err(err).Str("session", sess.ID).Str("type", ev.Type).Msg("Event rejected")
		}
	}
}
