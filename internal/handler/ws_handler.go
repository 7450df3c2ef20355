package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"learnhub/internal/auth"
	apperrors "learnhub/internal/errors"
	"learnhub/internal/realtime"
)

// WebSocketHandler upgrades authenticated dashboard clients onto the notification hub.
type WebSocketHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a handler accepting connections from origins.
// An empty list or "*" accepts any origin.
func NewWebSocketHandler(hub *realtime.Hub, origins []string) *WebSocketHandler {
	allowed := map[string]bool{}
	for _, o := range origins {
		allowed[o] = true
	}
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(allowed) == 0 || allowed["*"] || allowed[origin]
			},
		},
	}
}

// Connect upgrades the request and attaches it to the hub.
func (h *WebSocketHandler) Connect(c echo.Context) error {
	user := auth.CurrentUser(c)
	if user == nil {
		return apperrors.ErrNoToken
	}
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the failure response.
		log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("websocket upgrade failed")
		return nil
	}
	h.hub.Attach(conn, user.ID)
	return nil
}
