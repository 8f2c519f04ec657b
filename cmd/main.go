package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/Dharshan0025/neural-resq/internal/config"
	"github.com/Dharshan0025/neural-resq/internal/detector"
	"github.com/Dharshan0025/neural-resq/internal/geo"
	v1 "github.com/Dharshan0025/neural-resq/internal/handler/http/v1"
	"github.com/Dharshan0025/neural-resq/internal/notification"
	"github.com/Dharshan0025/neural-resq/internal/repository"
	"github.com/Dharshan0025/neural-resq/internal/service"
	"github.com/Dharshan0025/neural-resq/pkg/logger"
	"github.com/Dharshan0025/neural-resq/pkg/postgres"
	redisclient "github.com/Dharshan0025/neural-resq/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/Dharshan0025/neural-resq/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Neural ResQ API
// @version 1.0
// @description Emergency response dispatch API: volunteer geolocation, proximity matching and SOS dispatch.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Гео-ядро: хранилище координат, реестр волонтёров, индекс и движок поиска
	core := geo.NewCore()

	// Инициализация репозитория
	repo := repository.NewRepository(dbpool, redisClient)

	// Восстановление гео-ядра из базы после рестарта
	if err := service.RestoreCore(ctx, core, repo, log); err != nil {
		log.Warnf("Failed to restore geo core from storage: %v", err)
	}

	// Издатель и воркер push-уведомлений
	pushPublisher := notification.NewRedisPushPublisher(redisClient)
	pushWorker := notification.NewPushWorker(redisClient, log, cfg)
	pushWorker.Start(ctx)

	// SMS-шлюз и классификатор аудио
	smsClient := notification.NewSMSClient(cfg, log)
	audioDetector := detector.NewHTTPDetector(cfg)

	// Инициализация сервисов
	volunteerService := service.NewVolunteerService(core, repo, log)
	locationService := service.NewLocationService(core, repo, log)
	matchingService := service.NewMatchingService(core, cfg, log)
	dispatchService := service.NewDispatchService(core, repo, smsClient, audioDetector, pushPublisher, cfg, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(volunteerService, locationService, matchingService, dispatchService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
