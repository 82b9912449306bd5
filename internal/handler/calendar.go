package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alphadash/internal/models"
	"alphadash/internal/repository"
)

type CalendarHandler struct {
	Repo repository.Repository
}

type calendarEventRequest struct {
	Title     string  `json:"title" binding:"required"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	AllDay    bool    `json:"all_day"`
	Color     *string `json:"color"`
}

func (h *CalendarHandler) Register(r *gin.Engine) {
	group := r.Group("/api/calendar-events")
	group.GET("", h.list)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
}

// @Summary List calendar events
// @Tags calendar
// @Success 200 {object} handler.apiResponse
// @Router /api/calendar-events [get]
func (h *CalendarHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	items, err := h.Repo.ListCalendarEvents(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

// @Summary Create a calendar event
// @Tags calendar
// @Success 200 {object} handler.apiResponse
// @Router /api/calendar-events [post]
func (h *CalendarHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req calendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	item := models.CalendarEvent{
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		AllDay:    req.AllDay,
		Color:     req.Color,
	}
	if err := h.Repo.InsertCalendarEvent(c.Request.Context(), &item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Replace a calendar event
// @Tags calendar
// @Param id path int true "event id"
// @Success 200 {object} handler.apiResponse
// @Router /api/calendar-events/{id} [put]
func (h *CalendarHandler) update(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req calendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	existing, err := h.Repo.GetCalendarEventByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if existing == nil {
		Error(c, http.StatusNotFound, "event not found", nil)
		return
	}
	item := models.CalendarEvent{
		ID:        existing.ID,
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		AllDay:    req.AllDay,
		Color:     req.Color,
		CreatedAt: existing.CreatedAt,
	}
	if err := h.Repo.UpdateCalendarEvent(c.Request.Context(), &item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Delete a calendar event
// @Tags calendar
// @Param id path int true "event id"
// @Success 200 {object} handler.apiResponse
// @Router /api/calendar-events/{id} [delete]
func (h *CalendarHandler) remove(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	deleted, err := h.Repo.DeleteCalendarEvent(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if deleted == 0 {
		Error(c, http.StatusNotFound, "event not found", nil)
		return
	}
	Ok(c, map[string]any{"id": id, "deleted": deleted}, nil)
}
