package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"holiday_planner/internal/config"
	"holiday_planner/internal/service"
	"holiday_planner/pkg/logger"
)

type ContactHandler struct {
	dispatcher *service.Dispatcher
	cfg        config.ContactConfig
	log        logger.Logger
}

func NewContactHandler(dispatcher *service.Dispatcher, cfg config.ContactConfig, log logger.Logger) *ContactHandler {
	return &ContactHandler{
		dispatcher: dispatcher,
		cfg:        cfg,
		log:        log,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submit forwards a contact-form message to the support mailbox.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body := fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message)
	h.dispatcher.Dispatch(
		[]service.Recipient{{Name: "Support", Email: h.cfg.SupportEmail}},
		"[Contact] "+req.Subject,
		body,
	)

	c.JSON(http.StatusAccepted, gin.H{"message": "Message received"})
}
