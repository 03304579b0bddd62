package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the document server.
type metrics struct {
	serializeTotal    prometheus.Counter
	serializeErrors   prometheus.Counter
	serializeDuration prometheus.Histogram
	documentsSaved    prometheus.Counter
	validationErrors  prometheus.Counter
	activeStreams     prometheus.Gauge
	eventsSent        prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		serializeTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "plotkit",
			Name:      "document_serializations_total",
			Help:      "Total document serializations served.",
		}),
		serializeErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "plotkit",
			Name:      "document_serialization_errors_total",
			Help:      "Document serializations that failed validation.",
		}),
		serializeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "plotkit",
			Name:      "document_serialization_seconds",
			Help:      "Time spent serializing the live document.",
			Buckets:   prometheus.DefBuckets,
		}),
		documentsSaved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "plotkit",
			Name:      "documents_saved_total",
			Help:      "Documents accepted and written to the store.",
		}),
		validationErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "plotkit",
			Name:      "document_validation_errors_total",
			Help:      "Uploaded documents rejected by validation.",
		}),
		activeStreams: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "plotkit",
			Name:      "active_streams",
			Help:      "Open websocket event streams.",
		}),
		eventsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "plotkit",
			Name:      "stream_events_sent_total",
			Help:      "Change events pushed to stream subscribers.",
		}),
	}
}
