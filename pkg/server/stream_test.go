package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/plotkit-dev/plotkit/pkg/annotations"
	"github.com/plotkit-dev/plotkit/pkg/document"
)

func dialStream(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/document/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) streamMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg streamMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestStreamSendsDocumentThenEvents(t *testing.T) {
	doc := document.New()
	addTooltip(t, doc, "initial")
	srv := New(doc, &Config{
		Registry:     prometheus.NewRegistry(),
		CheckOrigin:  func(r *http.Request) bool { return true },
		PingInterval: time.Hour, // keep pings out of the test
	})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dialStream(t, ts)
	defer conn.Close()

	// First frame: the full document.
	msg := readMessage(t, conn)
	if msg.Type != "document" || msg.Document == nil {
		t.Fatalf("first frame = %+v, want document", msg)
	}
	if len(msg.Document.Models) != 1 {
		t.Fatalf("document models = %d, want 1", len(msg.Document.Models))
	}

	// Mutations surface as events.
	id := addTooltip(t, doc, "second")
	msg = readMessage(t, conn)
	if msg.Type != "event" || msg.Event == nil {
		t.Fatalf("frame = %+v, want event", msg)
	}
	if msg.Event.Kind != document.EventAdd || msg.Event.ModelID != id {
		t.Errorf("event = %+v", msg.Event)
	}

	doc.Remove(id)
	msg = readMessage(t, conn)
	if msg.Event == nil || msg.Event.Kind != document.EventRemove {
		t.Errorf("frame = %+v, want remove event", msg)
	}
}

func TestStreamRefusesUnrenderableDocument(t *testing.T) {
	doc := document.New()
	tip, _ := annotations.NewTooltip() // content unassigned
	doc.Add(tip)
	srv := New(doc, &Config{Registry: prometheus.NewRegistry()})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/document/stream"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected upgrade to be refused")
	}
	if resp == nil || resp.StatusCode != 422 {
		t.Fatalf("resp = %+v", resp)
	}
}
