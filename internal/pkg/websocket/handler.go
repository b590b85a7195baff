package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Handler upgrades authenticated requests to notification streams
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler. An empty allowedOrigins accepts any origin.
func NewHandler(hub *Hub, allowedOrigins []string, logger zerolog.Logger) *Handler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}

	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(origins) == 0 {
					return true
				}
				return origins[r.Header.Get("Origin")]
			},
		},
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Stream notifications
// @Description Upgrades to a WebSocket that receives the caller's notifications as they are created
// @Tags notifications
// @Security BearerAuth
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} dto.APIResponse
// @Router /ws/notifications [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	userID, ok := c.Get("userID")
	id, isInt := userID.(int64)
	if !ok || !isInt {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Int64("userID", id).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := NewClient(h.hub, conn, id, h.logger)
	if !h.hub.Register(client) {
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
