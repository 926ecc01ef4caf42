package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"holiday_planner/internal/service"
	"holiday_planner/pkg/logger"
)

type InvitationHandler struct {
	invitationService service.InvitationService
	log               logger.Logger
}

func NewInvitationHandler(invitationService service.InvitationService, log logger.Logger) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
		log:               log,
	}
}

type InviteRequest struct {
	HolidayID uuid.UUID `json:"holidayId" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
}

func (h *InvitationHandler) Invite(c *gin.Context) {
	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.invitationService.Invite(c.Request.Context(), req.HolidayID, req.Email, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InvitationHandler) Leave(c *gin.Context) {
	holidayID, err := uuid.Parse(c.Param("holidayId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	if err := h.invitationService.Leave(c.Request.Context(), holidayID, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
