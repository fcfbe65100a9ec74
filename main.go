package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skillsage/skillsage-service/internal/ai"
	"github.com/skillsage/skillsage-service/internal/config"
	"github.com/skillsage/skillsage-service/internal/events"
	"github.com/skillsage/skillsage-service/internal/handlers"
	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/repositories/memory"
	pgrepo "github.com/skillsage/skillsage-service/internal/repositories/postgres"
	"github.com/skillsage/skillsage-service/internal/services"
	"github.com/skillsage/skillsage-service/internal/utils"
	"github.com/skillsage/skillsage-service/internal/validator"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Storage: postgres for deployments, memory for local runs and tests.
	repo, redisClient, err := setupStorage(cfg, slogLogger)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Events: Kafka when brokers are configured, in-process mock otherwise.
	var publisher events.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = events.NewKafkaEventPublisher(cfg.KafkaBrokers, slogLogger)
		if err != nil {
			log.Fatalf("Failed to initialize Kafka publisher: %v", err)
		}
	} else {
		publisher = events.NewMockEventPublisher(slogLogger)
	}

	gateway := ai.NewGateway(ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel), slogLogger)

	v := validator.New()

	serviceManager := services.NewServiceManager(repo, publisher, gateway, slogLogger, v)

	handlerManager := handlers.NewHandlerManager(serviceManager, repo, cfg, logger)

	if cfg.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting server",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"storage", cfg.Storage)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	if err := repo.Close(); err != nil {
		log.Printf("Failed to close storage: %v", err)
	}

	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server exited")
}

// setupStorage builds the configured repository and seeds the catalog.
func setupStorage(cfg *config.Config, logger *slog.Logger) (repositories.Repository, *redis.Client, error) {
	ctx := context.Background()

	if cfg.Storage == config.StorageMemory {
		repo := memory.NewRepository()
		if err := repo.Course().Seed(ctx); err != nil {
			return nil, nil, fmt.Errorf("seed courses: %w", err)
		}
		return repo, nil, nil
	}

	db, err := gorm.Open(pgdriver.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.ChatMessage{},
		&models.SkillProgress{},
		&models.Activity{},
		&models.InterviewSession{},
	); err != nil {
		return nil, nil, fmt.Errorf("migrate schema: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn("invalid REDIS_URL, running without cache", "error", err)
		} else {
			redisClient = redis.NewClient(opts)
			if err := redisClient.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, running without cache", "error", err)
				redisClient.Close()
				redisClient = nil
			}
		}
	}

	repo := pgrepo.NewRepository(pgrepo.RepositoryConfig{
		DB:          db,
		RedisClient: redisClient,
	})
	if err := repo.Course().Seed(ctx); err != nil {
		return nil, nil, fmt.Errorf("seed courses: %w", err)
	}

	return repo, redisClient, nil
}
