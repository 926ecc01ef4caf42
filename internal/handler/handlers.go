package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"holiday_planner/internal/config"
	"holiday_planner/internal/service"
	"holiday_planner/pkg/errors"
	"holiday_planner/pkg/logger"
)

type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	User       *UserHandler
	Holiday    *HolidayHandler
	Invitation *InvitationHandler
	Activity   *ActivityHandler
	Chat       *ChatHandler
	Contact    *ContactHandler
	Stats      *StatsHandler
	WebSocket  *WebSocketHandler
}

func NewHandlers(services *service.Services, cfg *config.Config, log logger.Logger) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(cfg),
		Auth:       NewAuthHandler(services.Auth, log),
		User:       NewUserHandler(services.User, log),
		Holiday:    NewHolidayHandler(services.Holiday, services.Weather, services.Calendar, log),
		Invitation: NewInvitationHandler(services.Invitation, log),
		Activity:   NewActivityHandler(services.Activity, services.Weather, log),
		Chat:       NewChatHandler(services.Chat, log),
		Contact:    NewContactHandler(services.Dispatcher, cfg.Contact, log),
		Stats:      NewStatsHandler(services.Stats, log),
		WebSocket:  NewWebSocketHandler(services.Auth, services.Chat, services.Hub, log),
	}
}

// respondError translates a service error into the matching HTTP status.
func respondError(c *gin.Context, err error) {
	c.JSON(errors.HTTPStatusFromError(err), gin.H{"error": err.Error()})
}

func currentUserID(c *gin.Context) uuid.UUID {
	userID, _ := c.Get("user_id")
	return userID.(uuid.UUID)
}
