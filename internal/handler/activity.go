package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"holiday_planner/internal/domain"
	"holiday_planner/internal/service"
	"holiday_planner/pkg/logger"
)

type ActivityHandler struct {
	activityService service.ActivityService
	weatherService  service.WeatherService
	log             logger.Logger
}

func NewActivityHandler(activityService service.ActivityService, weatherService service.WeatherService, log logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		weatherService:  weatherService,
		log:             log,
	}
}

type ActivityRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description,omitempty"`
	StartDate   domain.DateTime `json:"startDate"`
	EndDate     domain.DateTime `json:"endDate"`
	Address     domain.Address  `json:"address"`
	Category    string          `json:"category" binding:"required"`
}

func (r ActivityRequest) toDetails() (domain.ActivityDetails, error) {
	category, err := domain.ParseCategory(r.Category)
	if err != nil {
		return domain.ActivityDetails{}, err
	}
	return domain.ActivityDetails{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Address:     r.Address,
		Category:    category,
	}, nil
}

func (h *ActivityHandler) Create(c *gin.Context) {
	holidayID, err := uuid.Parse(c.Param("holidayId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details, err := req.toDetails()
	if err != nil {
		respondError(c, err)
		return
	}

	activity, err := h.activityService.Create(c.Request.Context(), holidayID, details, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

func (h *ActivityHandler) GetByID(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	activity, err := h.activityService.Get(c.Request.Context(), activityID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

func (h *ActivityHandler) ListForHoliday(c *gin.Context) {
	holidayID, err := uuid.Parse(c.Param("holidayId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	activities, err := h.activityService.ListForHoliday(c.Request.Context(), holidayID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

// Weather reports current conditions at the activity location.
func (h *ActivityHandler) Weather(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	activity, err := h.activityService.Get(c.Request.Context(), activityID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.weatherService.GetForCity(c.Request.Context(), activity.Address.City)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ActivityHandler) Update(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details, err := req.toDetails()
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.activityService.Update(c.Request.Context(), activityID, details, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), activityID, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
