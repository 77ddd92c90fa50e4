// File: services/calendar/interface.go
package calendar

import (
	"context"
	"time"

	eventsRepo "tailortalk/database/repository/events"
	"tailortalk/models"

	"go.uber.org/zap"
)

// Service is the calendar collaborator consumed by the transport layer.
// The chat agent itself never touches it; only the booking and availability
// endpoints do.
type Service interface {
	ListEvents(ctx context.Context, start, end time.Time) ([]models.Event, error)
	FindFreeSlots(ctx context.Context, start, end time.Time, durationMinutes int) ([]models.AvailabilitySlot, error)
	CreateEvent(ctx context.Context, req models.BookingRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// DefaultCalendarService computes availability over the stored events.
type DefaultCalendarService struct {
	Repo   eventsRepo.EventRepository
	Logger *zap.Logger

	// Business hours (24h clock). Slots outside this window are never offered.
	WorkingHoursStart int
	WorkingHoursEnd   int
}

// NewDefaultCalendarService constructs the calendar service with the given
// working hours.
func NewDefaultCalendarService(repo eventsRepo.EventRepository, logger *zap.Logger, workStart, workEnd int) *DefaultCalendarService {
	return &DefaultCalendarService{
		Repo:              repo,
		Logger:            logger,
		WorkingHoursStart: workStart,
		WorkingHoursEnd:   workEnd,
	}
}
