package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/plotkit-dev/plotkit/pkg/document"
)

// streamMessage is one websocket frame on the event stream. The first frame
// carries the full document; every later frame carries a change event, and
// the client refetches what it needs.
type streamMessage struct {
	Type     string           `json:"type"` // "document" or "event"
	Document *document.Record `json:"document,omitempty"`
	Event    *document.Event  `json:"event,omitempty"`
}

// handleStream upgrades to a websocket and pushes the current document
// followed by change events until the client disconnects.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	rec, err := s.doc.Serialize()
	if err != nil {
		// Refuse the upgrade rather than stream an unrenderable document.
		writeError(w, statusFor(err), err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.metrics.activeStreams.Inc()
	defer s.metrics.activeStreams.Dec()

	events, unsubscribe := s.doc.Subscribe(s.config.EventBuffer)
	defer unsubscribe()

	// Reader goroutine: the stream is one-way, reads only notice closure.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := s.writeMessage(conn, streamMessage{Type: "document", Document: rec}); err != nil {
		return
	}

	ping := time.NewTicker(s.config.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := s.writeMessage(conn, streamMessage{Type: "event", Event: &ev}); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure) {
					s.logger.Error("stream write failed", "error", err)
				}
				return
			}
			s.metrics.eventsSent.Inc()

		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(s.config.WriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Server) writeMessage(conn *websocket.Conn, msg streamMessage) error {
	conn.SetWriteDeadline(time.Now().Add(s.config.WriteWait))
	return conn.WriteJSON(msg)
}
