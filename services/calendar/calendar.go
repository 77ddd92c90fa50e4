// File: services/calendar/calendar.go
package calendar

import (
	"context"
	"fmt"
	"time"

	"tailortalk/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Candidate slot start hours within a working day (24h clock). A business
// rule, not derived from the service catalog.
var slotStartHours = []int{9, 14, 16}

const maxFreeSlots = 10

func (s *DefaultCalendarService) ListEvents(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	events, err := s.Repo.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// FindFreeSlots enumerates candidate slots between start and end: weekdays
// only, fixed start hours, requested duration, minus any slot overlapping a
// stored event. At most maxFreeSlots slots are returned.
func (s *DefaultCalendarService) FindFreeSlots(ctx context.Context, start, end time.Time, durationMinutes int) ([]models.AvailabilitySlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("find free slots: duration must be positive, got %d", durationMinutes)
	}

	events, err := s.Repo.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("find free slots: %w", err)
	}

	var slots []models.AvailabilitySlot
	duration := time.Duration(durationMinutes) * time.Minute

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	for !day.After(end) && len(slots) < maxFreeSlots {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			day = day.AddDate(0, 0, 1)
			continue
		}

		for _, hour := range slotStartHours {
			if hour < s.WorkingHoursStart || hour >= s.WorkingHoursEnd {
				continue
			}
			slotStart := day.Add(time.Duration(hour) * time.Hour)
			slotEnd := slotStart.Add(duration)
			if slotStart.Before(start) || slotStart.After(end) {
				continue
			}
			if overlapsAny(slotStart, slotEnd, events) {
				continue
			}
			slots = append(slots, models.AvailabilitySlot{Start: slotStart, End: slotEnd})
			if len(slots) >= maxFreeSlots {
				break
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	return slots, nil
}

func overlapsAny(start, end time.Time, events []models.Event) bool {
	for _, ev := range events {
		if start.Before(ev.End) && ev.Start.Before(end) {
			return true
		}
	}
	return false
}

func (s *DefaultCalendarService) CreateEvent(ctx context.Context, req models.BookingRequest) (*models.Event, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("create event: end time must be after start time")
	}

	event := &models.Event{
		ID:            uuid.New().String(),
		Title:         req.Title,
		Description:   req.Description,
		Start:         req.StartTime,
		End:           req.EndTime,
		AttendeeEmail: req.AttendeeEmail,
		Status:        "confirmed",
		CreatedAt:     time.Now(),
	}

	if err := s.Repo.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.Logger.Info("calendar: created event",
		zap.String("eventId", event.ID),
		zap.Time("start", event.Start),
	)
	return event, nil
}

func (s *DefaultCalendarService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	s.Logger.Info("calendar: deleted event", zap.String("eventId", id))
	return nil
}
