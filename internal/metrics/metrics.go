// Package metrics defines the Prometheus instrumentation for the
// inspection server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for flvdump.
type Metrics struct {
	// Decode metrics
	RecordsDecoded *prometheus.CounterVec // labelled by record kind
	BytesConsumed  prometheus.Counter
	DecodeErrors   prometheus.Counter

	// Inspection session metrics
	ActiveSessions  prometheus.Gauge
	SessionsStarted prometheus.Counter
}

// New creates all metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsDecoded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flvdump_records_decoded_total",
			Help: "Total number of records decoded, by kind",
		}, []string{"kind"}),
		BytesConsumed: factory.NewCounter(prometheus.CounterOpts{
			Name: "flvdump_bytes_consumed_total",
			Help: "Total number of stream bytes consumed by the decoder",
		}),
		DecodeErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "flvdump_decode_errors_total",
			Help: "Total number of fatal decode errors",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "flvdump_active_sessions",
			Help: "Current number of open inspection sessions",
		}),
		SessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "flvdump_sessions_started_total",
			Help: "Total number of inspection sessions accepted",
		}),
	}
}

// Record kind label values.
const (
	KindPrevTagSize = "prev_tag_size"
	KindAudio       = "audio"
	KindVideo       = "video"
	KindScript      = "script"
	KindReserved    = "reserved"
)
