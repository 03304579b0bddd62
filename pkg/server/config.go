package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/plotkit-dev/plotkit/pkg/docstore"
)

// Config configures the document server.
type Config struct {
	// Addr is the listen address (default ":8700").
	Addr string

	// Store enables the named-document persistence routes. When nil the
	// server only serves its live document.
	Store docstore.Store

	// MaxDocumentBytes caps uploaded document bodies (default 4 MiB).
	MaxDocumentBytes int64

	// CheckOrigin controls websocket origin checks. Defaults to the
	// upgrader's same-origin policy.
	CheckOrigin func(*http.Request) bool

	// PingInterval is the websocket keepalive period (default 30s).
	PingInterval time.Duration

	// WriteWait bounds each websocket write (default 10s).
	WriteWait time.Duration

	// EventBuffer is the per-subscriber event buffer (default 64).
	// Subscribers that fall behind miss events and should refetch.
	EventBuffer int

	// ReadHeaderTimeout and IdleTimeout configure the underlying
	// http.Server. Read/write timeouts stay unset because the stream
	// endpoint holds connections open indefinitely.
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// Registry receives the server's Prometheus metrics
	// (default prometheus.DefaultRegisterer).
	Registry prometheus.Registerer
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Addr:              ":8700",
		MaxDocumentBytes:  4 << 20,
		PingInterval:      30 * time.Second,
		WriteWait:         10 * time.Second,
		EventBuffer:       64,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		Registry:          prometheus.DefaultRegisterer,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c *Config) withDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	d := DefaultConfig()
	out := *c
	if out.Addr == "" {
		out.Addr = d.Addr
	}
	if out.MaxDocumentBytes == 0 {
		out.MaxDocumentBytes = d.MaxDocumentBytes
	}
	if out.PingInterval == 0 {
		out.PingInterval = d.PingInterval
	}
	if out.WriteWait == 0 {
		out.WriteWait = d.WriteWait
	}
	if out.EventBuffer == 0 {
		out.EventBuffer = d.EventBuffer
	}
	if out.ReadHeaderTimeout == 0 {
		out.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if out.IdleTimeout == 0 {
		out.IdleTimeout = d.IdleTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	if out.Registry == nil {
		out.Registry = d.Registry
	}
	return &out
}
