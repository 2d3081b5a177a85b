package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adith/hostelcore/internal/middleware"
)

// Handler upgrades authenticated dashboard connections
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

// HandleConnection upgrades the HTTP connection and registers the
// client with the hub. Requires JWT auth middleware upstream so the
// role and subject are on the context.
func (h *Handler) HandleConnection(c *gin.Context) {
	role, ok := middleware.RoleFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	subjectID := middleware.SubjectFrom(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}

	client := &Client{
		hub:       h.hub,
		conn:      conn,
		send:      make(chan []byte, 64),
		subjectID: subjectID,
		role:      role,
		logger:    h.logger,
	}

	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
