package calendar

import (
	"context"
	"testing"
	"time"

	"tailortalk/models"

	"go.uber.org/zap"
)

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	events []models.Event
}

func (r *fakeEventRepo) Insert(ctx context.Context, event *models.Event) error {
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	for i := range r.events {
		if r.events[i].ID == id {
			return &r.events[i], nil
		}
	}
	return nil, nil
}

func (r *fakeEventRepo) ListRange(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	var out []models.Event
	for _, ev := range r.events {
		if ev.Start.Before(end) && start.Before(ev.End) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id string) error {
	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeEventRepo) EnsureIndexes(ctx context.Context) error { return nil }

func newTestCalendar(repo *fakeEventRepo) *DefaultCalendarService {
	return NewDefaultCalendarService(repo, zap.NewNop(), 9, 17)
}

// Monday 2025-03-03 through Tuesday end of day.
var (
	rangeStart = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2025, time.March, 4, 23, 59, 0, 0, time.UTC)
)

func TestFindFreeSlotsEmptyCalendar(t *testing.T) {
	svc := newTestCalendar(&fakeEventRepo{})

	slots, err := svc.FindFreeSlots(context.Background(), rangeStart, rangeEnd, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Two weekdays, three candidate hours each.
	if len(slots) != 6 {
		t.Fatalf("got %d slots, want 6", len(slots))
	}
	if got, want := slots[0].Start.Hour(), 9; got != want {
		t.Errorf("first slot hour = %d, want %d", got, want)
	}
	if got := slots[0].End.Sub(slots[0].Start); got != time.Hour {
		t.Errorf("slot duration = %v, want 1h", got)
	}
}

func TestFindFreeSlotsExcludesBookedTimes(t *testing.T) {
	repo := &fakeEventRepo{events: []models.Event{{
		ID:    "busy",
		Start: time.Date(2025, time.March, 3, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.March, 3, 15, 0, 0, 0, time.UTC),
	}}}
	svc := newTestCalendar(repo)

	slots, err := svc.FindFreeSlots(context.Background(), rangeStart, rangeEnd, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 5 {
		t.Fatalf("got %d slots, want 5", len(slots))
	}
	for _, slot := range slots {
		if slot.Start.Day() == 3 && slot.Start.Hour() == 14 {
			t.Errorf("booked 14:00 slot still offered: %+v", slot)
		}
	}
}

func TestFindFreeSlotsSkipsWeekends(t *testing.T) {
	svc := newTestCalendar(&fakeEventRepo{})

	// Saturday through Sunday.
	start := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 9, 23, 59, 0, 0, time.UTC)

	slots, err := svc.FindFreeSlots(context.Background(), start, end, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("got %d slots over a weekend, want 0", len(slots))
	}
}

func TestFindFreeSlotsCapped(t *testing.T) {
	svc := newTestCalendar(&fakeEventRepo{})

	start := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)

	slots, err := svc.FindFreeSlots(context.Background(), start, end, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 10 {
		t.Errorf("got %d slots, want cap of 10", len(slots))
	}
}

func TestFindFreeSlotsRejectsBadDuration(t *testing.T) {
	svc := newTestCalendar(&fakeEventRepo{})

	if _, err := svc.FindFreeSlots(context.Background(), rangeStart, rangeEnd, 0); err == nil {
		t.Error("expected an error for zero duration")
	}
}

func TestCreateEvent(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := newTestCalendar(repo)

	start := time.Date(2025, time.March, 4, 14, 0, 0, 0, time.UTC)
	event, err := svc.CreateEvent(context.Background(), models.BookingRequest{
		Title:     "Haircut - Jane Doe",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.ID == "" {
		t.Error("expected a generated event ID")
	}
	if event.Status != "confirmed" {
		t.Errorf("status = %q, want %q", event.Status, "confirmed")
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected event to be persisted, repo has %d", len(repo.events))
	}

	// The new booking must now block the matching free slot.
	slots, err := svc.FindFreeSlots(context.Background(), rangeStart, rangeEnd, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, slot := range slots {
		if slot.Start.Equal(start) {
			t.Errorf("booked slot still offered: %+v", slot)
		}
	}
}

func TestCreateEventRejectsInvertedRange(t *testing.T) {
	svc := newTestCalendar(&fakeEventRepo{})

	start := time.Date(2025, time.March, 4, 14, 0, 0, 0, time.UTC)
	_, err := svc.CreateEvent(context.Background(), models.BookingRequest{
		Title:     "bad",
		StartTime: start,
		EndTime:   start,
	})
	if err == nil {
		t.Error("expected an error when end is not after start")
	}
}
