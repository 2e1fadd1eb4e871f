package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shelfwise/catalog-service/internal/catalog"
	httpDelivery "github.com/shelfwise/catalog-service/internal/catalog/delivery/http"
	"github.com/shelfwise/catalog-service/internal/catalog/domain"
	"github.com/shelfwise/catalog-service/internal/config"
	"github.com/shelfwise/catalog-service/kafka"
	"github.com/shelfwise/catalog-service/pkg/database"
	"github.com/shelfwise/catalog-service/pkg/logger"
	"github.com/shelfwise/catalog-service/pkg/tracing"
)

const serviceName = "catalog-service"

func main() {
	cfg := config.Load()

	logger.Init(serviceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", cfg.Server.Env).
		Str("log_level", cfg.LogLevel).
		Msg("Starting catalog service")

	// Initialize tracing
	tp, err := tracing.InitTracer(serviceName, cfg.Jaeger.Endpoint)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
		}
	}()

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(&domain.Category{}, &domain.Product{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Initialize handler with Wire DI
	handler, err := catalog.InitializeCatalogHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	// Attach Kafka publisher when enabled
	if cfg.Kafka.Enabled {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Strs("brokers", cfg.Kafka.Brokers).Msg("Failed to connect to Kafka")
		}
		defer publisher.Close()

		handler.WithPublisher(publisher)
		logger.Logger.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka publisher attached")
	}

	// Attach Redis response cache when enabled
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		handler.WithCache(httpDelivery.NewResponseCache(redisClient, 30*time.Second))
		logger.Logger.Info().Str("addr", cfg.Redis.Addr).Msg("Redis response cache attached")
	}

	startHTTPServer(handler, sqlDB, cfg.Server.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(handler *httpDelivery.CatalogHandler, db *sql.DB, port string) {
	router := mux.NewRouter()

	middlewareConfig := httpDelivery.DefaultMiddlewareConfig()
	httpDelivery.RegisterMiddlewares(router, middlewareConfig)

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	corsHandler := httpDelivery.SetupCORS(middlewareConfig)

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+port, corsHandler(router)); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}
