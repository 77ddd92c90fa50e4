package cron

import (
	"context"
	"encoding/json"

	"tailortalk/config"
	"tailortalk/models"
	"tailortalk/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(logger))

	go func() {
		logger.Info("reminder worker: starting async worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker: failed to start", zap.Error(err))
		}
	}()
}

func handleReminderTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder worker: invalid payload", zap.Error(err))
			return err
		}

		// Delivery channel (email/push) is not wired yet; the reminder is
		// surfaced through the log stream.
		logger.Info("reminder worker: firing appointment reminder",
			zap.String("eventId", p.EventID),
			zap.String("title", p.Title),
			zap.String("body", p.Body),
			zap.String("fireDate", p.FireDate),
		)
		return nil
	}
}
