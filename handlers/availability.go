package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tailortalk/services/calendar"
	"tailortalk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves availability lookups and raw event listings.
type CalendarHandler struct {
	Calendar calendar.Service
	Logger   *zap.Logger
}

func NewCalendarHandler(cal calendar.Service, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Calendar: cal, Logger: logger}
}

func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, c.Query("start_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start_date", err.Error())
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(time.RFC3339, c.Query("end_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end_date", err.Error())
		return time.Time{}, time.Time{}, false
	}
	if !end.After(start) {
		utils.JSONError(c, http.StatusBadRequest, "invalid range", "end_date must be after start_date")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// CheckAvailability handles GET /api/availability.
func (h *CalendarHandler) CheckAvailability(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	durationMinutes := 60
	if raw := c.Query("duration_minutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration_minutes", raw)
			return
		}
		durationMinutes = parsed
	}

	slots, err := h.Calendar.FindFreeSlots(c.Request.Context(), start, end, durationMinutes)
	if err != nil {
		h.Logger.Error("availability: failed to find free slots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"available_slots": slots})
}

// GetEvents handles GET /api/events (admin only).
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	events, err := h.Calendar.ListEvents(c.Request.Context(), start, end)
	if err != nil {
		h.Logger.Error("events: failed to list events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
