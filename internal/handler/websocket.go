package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"holiday_planner/internal/service"
	"holiday_planner/pkg/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	authService service.AuthService
	chatService service.ChatService
	hub         *service.ChatHub
	log         logger.Logger
}

func NewWebSocketHandler(authService service.AuthService, chatService service.ChatService, hub *service.ChatHub, log logger.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		authService: authService,
		chatService: chatService,
		hub:         hub,
		log:         log,
	}
}

// StreamChat upgrades the connection and pushes new chat messages for the
// holiday as they arrive. Browsers cannot set headers on websocket
// requests, so the token travels as a query parameter.
func (h *WebSocketHandler) StreamChat(c *gin.Context) {
	holidayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	user, err := h.authService.ValidateToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.chatService.CanJoinStream(c.Request.Context(), holidayID, user.ID); err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("Failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	h.hub.Subscribe(holidayID, conn)
	defer h.hub.Unsubscribe(holidayID, conn)

	h.log.Info("Chat stream opened", "holiday_id", holidayID, "user_id", user.ID)

	// Messages are sent over the REST endpoint; the socket is read only to
	// detect the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
