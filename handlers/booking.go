package handlers

import (
	"fmt"
	"net/http"

	"tailortalk/models"
	"tailortalk/services/agent"
	"tailortalk/services/calendar"
	"tailortalk/services/tasks"
	"tailortalk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler commits confirmed appointments to the calendar.
type BookingHandler struct {
	Calendar  calendar.Service
	Drafts    agent.DraftStore
	Reminders tasks.Scheduler
	Logger    *zap.Logger
}

func NewBookingHandler(cal calendar.Service, drafts agent.DraftStore, reminders tasks.Scheduler, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Calendar: cal, Drafts: drafts, Reminders: reminders, Logger: logger}
}

// BookAppointment handles POST /api/book.
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}

	event, err := h.Calendar.CreateEvent(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("booking: failed to create event", zap.Error(err))
		c.JSON(http.StatusOK, models.BookingResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to book appointment: %v", err),
		})
		return
	}

	// The booking closes the confirmation gate for this session.
	if req.SessionID != "" {
		if err := h.Drafts.Clear(c.Request.Context(), req.SessionID); err != nil {
			h.Logger.Warn("booking: failed to clear pending draft",
				zap.Error(err),
				zap.String("sessionId", req.SessionID),
			)
		}
	}

	if h.Reminders != nil {
		if err := h.Reminders.ScheduleEventReminder(c.Request.Context(), event); err != nil {
			h.Logger.Warn("booking: failed to schedule reminder", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		Success:      true,
		Message:      fmt.Sprintf("Appointment booked successfully for %s", event.Start.Format("January 02, 2006 at 03:04 PM")),
		EventID:      event.ID,
		EventDetails: event,
	})
}
