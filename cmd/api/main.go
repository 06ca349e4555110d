package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"salonboard/internal/analytics"
	"salonboard/internal/application/services"
	"salonboard/internal/config"
	httpHandler "salonboard/internal/infrastructure/http"
	"salonboard/internal/infrastructure/mongo"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := initLogger(cfg)
	defer logger.Sync()

	logger.Info("starting salonboard API", zap.String("addr", cfg.AppAddr))

	mongoClient, err := mongo.NewClient(&mongo.Config{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDatabase,
		Username: cfg.MongoUsername,
		Password: cfg.MongoPassword,
		Timeout:  cfg.MongoTimeout,
	})
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Close(); err != nil {
			logger.Error("error closing MongoDB connection", zap.Error(err))
		}
	}()
	if err := mongoClient.Ping(); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	database := mongoClient.Database()

	// Redis is optional: without it analytics queries compute directly
	// against the store on every request.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unreachable, analytics caching disabled", zap.Error(err))
			redisClient = nil
		} else {
			logger.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))
			defer redisClient.Close()
		}
	}

	// Repositories
	directory := mongo.NewUserDirectory(database, logger)
	appointmentRepo := mongo.NewAppointmentRepository(database, logger)
	companyRepo := mongo.NewCompanyRepository(database, directory, logger)
	serviceRepo := mongo.NewServiceRepository(database, logger)

	// Services
	analyticsCache := analytics.NewCache(redisClient, cfg.AnalyticsTTL)
	analyticsService := analytics.NewService(appointmentRepo, analyticsCache, logger)
	scheduleService := services.NewScheduleService(appointmentRepo, directory, logger)
	bookingService := services.NewBookingService(appointmentRepo, serviceRepo, analyticsService, logger)

	// HTTP surface
	router := httpHandler.NewRouter(httpHandler.Controllers{
		Company:     httpHandler.NewCompanyController(companyRepo, logger),
		Schedule:    httpHandler.NewScheduleController(scheduleService, logger),
		Analytics:   httpHandler.NewAnalyticsController(analyticsService, logger),
		Appointment: httpHandler.NewAppointmentController(bookingService, logger),
	}, logger, cfg.AppRequestTimeout)

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

func initLogger(cfg *config.Config) *zap.Logger {
	if cfg.LogFormat == "json" || cfg.IsProduction() {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}
