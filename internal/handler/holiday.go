package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"holiday_planner/internal/domain"
	"holiday_planner/internal/service"
	"holiday_planner/pkg/logger"
)

type HolidayHandler struct {
	holidayService  service.HolidayService
	weatherService  service.WeatherService
	calendarService service.CalendarService
	log             logger.Logger
}

func NewHolidayHandler(holidayService service.HolidayService, weatherService service.WeatherService, calendarService service.CalendarService, log logger.Logger) *HolidayHandler {
	return &HolidayHandler{
		holidayService:  holidayService,
		weatherService:  weatherService,
		calendarService: calendarService,
		log:             log,
	}
}

type HolidayRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description,omitempty"`
	StartDate   domain.DateTime `json:"startDate"`
	EndDate     domain.DateTime `json:"endDate"`
	Address     domain.Address  `json:"address"`
	Published   bool            `json:"published"`
}

func (r HolidayRequest) toDetails() domain.HolidayDetails {
	return domain.HolidayDetails{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Address:     r.Address,
		Published:   r.Published,
	}
}

type HolidayDetailResponse struct {
	*domain.Holiday
	Activities []domain.Activity `json:"activities"`
	Guests     []*domain.Guest   `json:"guests"`
}

func (h *HolidayHandler) Create(c *gin.Context) {
	var req HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holiday, err := h.holidayService.Create(c.Request.Context(), req.toDetails(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": holiday.ID})
}

func (h *HolidayHandler) GetByID(c *gin.Context) {
	holidayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	holiday, guests, err := h.holidayService.Get(c.Request.Context(), holidayID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, HolidayDetailResponse{Holiday: holiday, Activities: holiday.Activities, Guests: guests})
}

func (h *HolidayHandler) ListPublished(c *gin.Context) {
	filter, err := parseHolidayFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holidays, err := h.holidayService.ListPublished(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, holidays)
}

func (h *HolidayHandler) ListInvited(c *gin.Context) {
	filter, err := parseHolidayFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holidays, err := h.holidayService.ListInvited(c.Request.Context(), currentUserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, holidays)
}

func (h *HolidayHandler) Update(c *gin.Context) {
	holidayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	var req HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.holidayService.Update(c.Request.Context(), holidayID, req.toDetails(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HolidayHandler) Delete(c *gin.Context) {
	holidayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	if err := h.holidayService.Delete(c.Request.Context(), holidayID, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportCalendar streams the holiday as a downloadable ICS file.
func (h *HolidayHandler) ExportCalendar(c *gin.Context) {
	holidayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	holiday, _, err := h.holidayService.Get(c.Request.Context(), holidayID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	ics := h.calendarService.BuildICS(holiday)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", holiday.Name+".ics"))
	c.Data(http.StatusOK, "text/calendar", []byte(ics))
}

// Weather reports current conditions at the holiday destination.
func (h *HolidayHandler) Weather(c *gin.Context) {
	holidayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	holiday, _, err := h.holidayService.Get(c.Request.Context(), holidayID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.weatherService.GetForCity(c.Request.Context(), holiday.Address.City)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func parseHolidayFilter(c *gin.Context) (domain.HolidayFilter, error) {
	filter := domain.HolidayFilter{Query: c.Query("query")}

	if raw := c.Query("startDate"); raw != "" {
		from, err := domain.ParseDateTime(raw)
		if err != nil {
			return domain.HolidayFilter{}, err
		}
		filter.From = &from
	}
	if raw := c.Query("endDate"); raw != "" {
		to, err := domain.ParseDateTime(raw)
		if err != nil {
			return domain.HolidayFilter{}, err
		}
		filter.To = &to
	}

	return filter, nil
}
