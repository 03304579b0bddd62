// Package server exposes a live plotkit document to rendering clients over
// HTTP and websocket.
//
// The server serializes the document on demand (GET /document), streams
// change events to connected renderers (GET /document/stream), and, when a
// docstore is configured, persists and serves named documents under
// /documents/{name}. It never renders anything; it only moves validated
// records.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/plotkit-dev/plotkit/pkg/docstore"
	"github.com/plotkit-dev/plotkit/pkg/document"
	"github.com/plotkit-dev/plotkit/pkg/property"
)

const tracerName = "plotkit/server"

// Server serves one live document plus an optional store of named documents.
type Server struct {
	doc      *document.Document
	config   *Config
	upgrader websocket.Upgrader
	router   chi.Router
	metrics  *metrics
	tracer   trace.Tracer
	logger   *slog.Logger

	httpServer *http.Server
}

// New creates a Server for the given live document.
func New(doc *document.Document, config *Config) *Server {
	config = config.withDefaults()

	s := &Server{
		doc:    doc,
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     config.CheckOrigin,
		},
		metrics: newMetrics(config.Registry),
		tracer:  otel.Tracer(tracerName),
		logger:  slog.Default().With("component", "server"),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/document", s.handleGetDocument)
	r.Get("/document/stream", s.handleStream)
	r.Handle("/metrics", promhttp.Handler())

	if s.config.Store != nil {
		r.Get("/documents", s.handleListDocuments)
		r.Get("/documents/{name}", s.handleLoadDocument)
		r.Put("/documents/{name}", s.handleSaveDocument)
		r.Delete("/documents/{name}", s.handleDeleteDocument)
	}
	return r
}

// Handler returns the server's http.Handler for mounting in external
// routers or tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start runs the HTTP server until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGetDocument serializes the live document. A document with
// unresolved required fields is a client-fixable state, reported as 422.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "document.serialize")
	defer span.End()

	start := time.Now()
	rec, err := s.doc.Serialize()
	s.metrics.serializeDuration.Observe(time.Since(start).Seconds())
	s.metrics.serializeTotal.Inc()

	if err != nil {
		s.metrics.serializeErrors.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "serialize failed")
		s.logger.Warn("serialize failed", "error", err)
		writeError(w, statusFor(err), err)
		return
	}

	span.SetAttributes(attribute.Int("document.models", len(rec.Models)))
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	names, err := s.config.Store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"documents": names})
}

func (s *Server) handleLoadDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	data, err := s.config.Store.Load(r.Context(), name)
	if errors.Is(err, docstore.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleSaveDocument validates an uploaded document before storing it, so
// the store only ever holds renderable documents.
func (s *Server) handleSaveDocument(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "document.save")
	defer span.End()

	name := chi.URLParam(r, "name")
	data, err := io.ReadAll(io.LimitReader(r.Body, s.config.MaxDocumentBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if int64(len(data)) > s.config.MaxDocumentBytes {
		writeError(w, http.StatusRequestEntityTooLarge, errors.New("plotkit: document too large"))
		return
	}

	doc, err := document.Parse(data)
	if err != nil {
		s.metrics.validationErrors.Inc()
		span.RecordError(err)
		writeError(w, statusFor(err), err)
		return
	}
	if err := doc.Validate(); err != nil {
		s.metrics.validationErrors.Inc()
		span.RecordError(err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if err := s.config.Store.Save(ctx, name, data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store save failed")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.metrics.documentsSaved.Inc()
	s.logger.Info("document saved", "name", name, "models", doc.Len())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.config.Store.Delete(r.Context(), name); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps model-layer failures to HTTP statuses: shape violations
// are bad requests, unresolved required fields are unprocessable content.
func statusFor(err error) int {
	var ve *property.ValidationError
	var mr *property.MissingRequiredError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &mr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
