// Package ws bridges websocket connections onto the broadcast hub. Each
// connection registers with the hub, may join at most one project group,
// and receives the group's signals as JSON frames.
package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"taskhub/internal/config"
	"taskhub/internal/domain"
	"taskhub/pkg/ctxutil"
)

const (
	actionJoin  = "join"
	actionLeave = "leave"
)

// clientFrame is an inbound control frame from the browser.
type clientFrame struct {
	Action    string `json:"action"`
	ProjectID string `json:"projectId"`
}

// broadcaster is the slice of the hub the handler needs.
type broadcaster interface {
	Register(connID string) (<-chan domain.Signal, error)
	Unregister(connID string)
	Join(connID, projectID string) error
	Leave(connID string)
}

// Handler upgrades HTTP requests to websocket connections and pumps hub
// signals out to them.
type Handler struct {
	hub      broadcaster
	cfg      config.HubConfig
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket Handler.
func NewHandler(hub broadcaster, cfg config.HubConfig, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		cfg: cfg,
		log: logger.With("handler", "ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin enforcement happens in the CORS middleware before
			// the upgrade is reached.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve handles GET /hubs/notifications. The caller must be authenticated;
// the connection lives until the client closes it or a pump fails.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	identity, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	sock, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		h.log.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	connID := uuid.NewString()
	signals, err := h.hub.Register(connID)
	if err != nil {
		sock.Close()
		return
	}

	log := h.log.With(
		slog.String("conn_id", connID),
		slog.String("user", identity.Email),
	)
	log.Info("websocket connected")

	done := make(chan struct{})
	go h.writePump(sock, signals, done, log)
	h.readPump(sock, connID, log)

	// Unregister closes the signal channel, which stops the write pump.
	h.hub.Unregister(connID)
	<-done
	sock.Close()
	log.Info("websocket disconnected")
}

// readPump consumes control frames until the connection drops.
func (h *Handler) readPump(sock *websocket.Conn, connID string, log *slog.Logger) {
	sock.SetReadLimit(h.cfg.ReadLimit)

	wait := h.cfg.PingInterval * 2
	sock.SetReadDeadline(time.Now().Add(wait)) //nolint:errcheck
	sock.SetPongHandler(func(string) error {
		return sock.SetReadDeadline(time.Now().Add(wait))
	})

	for {
		_, payload, err := sock.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read failed", slog.String("error", err.Error()))
			}
			return
		}

		var frame clientFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			log.Warn("discarding malformed frame", slog.String("error", err.Error()))
			continue
		}

		switch frame.Action {
		case actionJoin:
			if err := h.hub.Join(connID, frame.ProjectID); err != nil {
				if errors.Is(err, domain.ErrConflict) {
					log.Warn("join rejected, connection already in a group",
						slog.String("project_id", frame.ProjectID))
				}
			}
		case actionLeave:
			h.hub.Leave(connID)
		default:
			log.Warn("discarding unknown action", slog.String("action", frame.Action))
		}
	}
}

// writePump forwards hub signals to the socket and keeps it alive with pings.
// It runs until the signal channel is closed or a write fails.
func (h *Handler) writePump(sock *websocket.Conn, signals <-chan domain.Signal, done chan<- struct{}, log *slog.Logger) {
	defer close(done)
	// Closing the socket here unblocks the read pump when a write fails.
	defer sock.Close()

	ticker := time.NewTicker(h.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case sig, ok := <-signals:
			sock.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout)) //nolint:errcheck
			if !ok {
				sock.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck
				return
			}
			if err := sock.WriteJSON(sig); err != nil {
				log.Warn("websocket write failed", slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			sock.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout)) //nolint:errcheck
			if err := sock.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
