package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/metrics"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	registry := metrics.New()
	publisher, closePublisher := newPublisher(configs, logger)
	defer closePublisher()

	app, err := cmd.NewCompositionRoot(configs, gormDB, registry.InstrumentPublisher(publisher), logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager, err := app.JobManager(registry)
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startWebServer(ctx, app, registry, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.OrderEventPublisher, func()) {
	brokers := configs.KafkaBrokers()
	if len(brokers) == 0 {
		logger.Warn("KAFKA_HOST is not set, order status events are not published")
		return kafka.NopPublisher{}, func() {}
	}

	producer := kafka.NewOrderEventProducer(brokers, configs.KafkaOrderChangedTopic)
	logger.Info("Publishing order status events", "topic", producer.Topic(), "brokers", brokers)
	return producer, func() {
		if err := producer.Close(); err != nil {
			logger.Error("Failed to close kafka producer", "error", err)
		}
	}
}

func startWebServer(
	ctx context.Context,
	app cmd.CompositionRoot,
	registry *metrics.Metrics,
	logger *slog.Logger,
	port string,
) {
	server := httpin.NewServer(app.HTTPHandlers(), logger)
	e, err := httpin.NewRouter(server, httpin.RouterOptions{
		Logger:         logger,
		Observer:       registry,
		MetricsHandler: registry.Handler(),
	})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		logger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
