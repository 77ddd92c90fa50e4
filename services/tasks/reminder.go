package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tailortalk/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds the asynq task carrying a reminder payload,
// scheduled to fire at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues appointment reminders.
type Scheduler interface {
	ScheduleEventReminder(ctx context.Context, event *models.Event) error
}

// AsynqScheduler schedules reminders on the asynq queue, firing Lead before
// the appointment start.
type AsynqScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
	Logger *zap.Logger
}

func NewAsynqScheduler(client *asynq.Client, lead time.Duration, logger *zap.Logger) *AsynqScheduler {
	return &AsynqScheduler{Client: client, Lead: lead, Logger: logger}
}

func (s *AsynqScheduler) ScheduleEventReminder(ctx context.Context, event *models.Event) error {
	fireAt := event.Start.Add(-s.Lead)
	if fireAt.Before(time.Now()) {
		// Appointment starts within the lead window; nothing to schedule.
		return nil
	}

	payload := models.ReminderPayload{
		EventID:  event.ID,
		Title:    "Upcoming appointment",
		Body:     fmt.Sprintf("Reminder: %s at %s", event.Title, event.Start.Format("January 02, 2006 at 03:04 PM")),
		FireDate: fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("build reminder task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}

	s.Logger.Info("tasks: scheduled appointment reminder",
		zap.String("eventId", event.ID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}
