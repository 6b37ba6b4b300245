// Package inspect serves incremental FLV decoding over WebSocket: the
// client streams raw FLV bytes as binary frames and receives one JSON
// text frame per decoded record.
package inspect

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/gengteng/flv-dump/internal/metrics"
)

// Handler handles WebSocket inspection requests.
type Handler struct {
	metrics  *metrics.Metrics
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a new inspection handler.
func NewHandler(m *metrics.Metrics, log *slog.Logger) *Handler {
	return &Handler{
		metrics: m,
		log:     log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins; the client supplies its own bytes.
				return true
			},
		},
	}
}

// ServeHTTP handles WebSocket upgrade and runs the decode session.
// Endpoint: GET /ws/inspect
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade failed, response already sent
		return
	}
	defer conn.Close()

	h.metrics.SessionsStarted.Inc()
	h.metrics.ActiveSessions.Inc()
	defer h.metrics.ActiveSessions.Dec()

	sess := newSession(conn, h.metrics, h.log)
	if err := sess.run(); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return
		}
		h.log.Debug("session ended", "error", err)
	}
}

// RegisterRoutes registers inspection routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/inspect", h.ServeHTTP)
}
