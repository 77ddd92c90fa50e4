// File: tailortalk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailortalk/config"
	"tailortalk/cron"
	"tailortalk/database"
	eventsRepo "tailortalk/database/repository/events"
	"tailortalk/handlers"
	"tailortalk/middleware"
	"tailortalk/models"
	"tailortalk/routes"
	"tailortalk/services/agent"
	"tailortalk/services/calendar"
	"tailortalk/services/tasks"
	"tailortalk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitDraftCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	eventRepo := eventsRepo.NewMongoEventRepo()
	if err := eventRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Warnf("main: failed to ensure event indexes: %v", err)
	}

	// services.
	agentService := agent.NewDefaultService(models.DefaultServiceCatalog(), logger)
	draftStore := agent.NewRedisDraftStore(utils.GetDraftCacheClient(), 30*time.Minute)
	calendarService := calendar.NewDefaultCalendarService(
		eventRepo,
		logger,
		config.AppConfig.WorkingHoursStart,
		config.AppConfig.WorkingHoursEnd,
	)

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()
	reminderScheduler := tasks.NewAsynqScheduler(
		reminderClient,
		time.Duration(config.AppConfig.ReminderLeadMinutes)*time.Minute,
		logger,
	)
	cron.InitReminderWorker(logger)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetDraftCacheClient()},
		database.MongoClient,
	)

	// handlers.
	chatHandler := handlers.NewChatHandler(agentService, draftStore, logger)
	bookingHandler := handlers.NewBookingHandler(calendarService, draftStore, reminderScheduler, logger)
	calendarHandler := handlers.NewCalendarHandler(calendarService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HandleChat:        chatHandler.HandleChat,
		BookAppointment:   bookingHandler.BookAppointment,
		CheckAvailability: calendarHandler.CheckAvailability,
		GetEvents:         calendarHandler.GetEvents,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
