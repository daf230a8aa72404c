package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawcare/config"
	"pawcare/cron"
	"pawcare/database"
	appointmentRepo "pawcare/database/repository/appointment"
	serviceRepo "pawcare/database/repository/service"
	"pawcare/handlers"
	"pawcare/middleware"
	"pawcare/routes"
	"pawcare/services/booking"
	"pawcare/services/provider"
	"pawcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepo.NewMongoServiceRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// asynq client for scheduled hold-expiry tasks.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldQueueDB,
	})
	defer asynqClient.Close()

	// services.
	providerService, err := provider.NewDefaultProviderService(svcRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize provider service: %v", err)
	}

	holdWindow := time.Duration(config.AppConfig.HoldWindowMinutes) * time.Minute
	bookingService, err := booking.NewDefaultBookingEngine(
		svcRepo,
		apptRepo,
		asynqClient,
		holdWindow,
		config.AppConfig.SearchHorizonDays,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking engine: %v", err)
	}

	providerHandler := handlers.NewProviderHandler(providerService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	routes.RegisterRoutes(router, providerHandler, bookingHandler)

	// Background hold-expiry worker and health monitoring.
	cron.InitHoldExpiryWorker(bookingService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
