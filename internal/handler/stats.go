package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holiday_planner/internal/service"
	"holiday_planner/pkg/logger"
)

type StatsHandler struct {
	statsService service.StatsService
	log          logger.Logger
}

func NewStatsHandler(statsService service.StatsService, log logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		log:          log,
	}
}

func (h *StatsHandler) GetUserStatistics(c *gin.Context) {
	stats, err := h.statsService.GetUserStatistics(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
