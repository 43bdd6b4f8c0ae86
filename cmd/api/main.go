package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"danubio/internal/api"
	"danubio/internal/config"
	"danubio/internal/domain"
	"danubio/internal/events"
	"danubio/internal/logging"
	"danubio/internal/metrics"
	"danubio/internal/repository"
	"danubio/internal/service"
	"danubio/internal/storage"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewStore(&logger)

	redisClient, throttleRepo := initThrottle(ctx, cfg, &logger)
	if redisClient != nil {
		defer func() { _ = repository.Close(redisClient) }()
	}

	eventBus := events.NewEventBus()
	subscribeEvents(eventBus, &logger)

	catalogService := service.NewCatalogService(store, &logger)
	bookingService := service.NewBookingService(store, eventBus, &logger)
	inquiryService := service.NewInquiryService(store, eventBus, &logger)

	httpServer := api.NewHTTPServer(cfg, catalogService, bookingService, inquiryService, throttleRepo, &logger)

	startMetrics(ctx, cfg, &logger)

	return startServer(ctx, httpServer, &logger)
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}
	logger := baseLogger.With().Str("component", "api-main").Logger()

	return cfg, logger, closer, nil
}

// initThrottle wires the submission throttle: Redis-backed when an address is
// configured, with an in-memory fallback behind a failover wrapper. Without
// Redis the in-memory throttle runs alone.
func initThrottle(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*redis.Client, domain.ThrottleRepository) {
	fallback := repository.NewMemoryThrottleRepository()

	if cfg.Redis.Address == "" {
		logger.Info().Msg("redis not configured, using in-memory throttle")
		return nil, fallback
	}

	redisClient := repository.NewRedisClient(cfg.Redis)
	if err := repository.Ping(ctx, redisClient); err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable")
	}

	primary := repository.NewRedisThrottleRepository(redisClient)
	return redisClient, repository.NewFailoverThrottleRepository(primary, fallback, logger)
}

func subscribeEvents(eventBus *events.EventBus, logger *zerolog.Logger) {
	eventBus.Subscribe(events.EventBookingCreated, func(event *events.Event) error {
		var payload events.BookingEventPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		logger.Info().
			Int64("booking_id", payload.BookingID).
			Str("item_type", payload.ItemType).
			Int64("total_price", payload.TotalPrice).
			Msg("booking created")
		return nil
	})

	eventBus.Subscribe(events.EventBookingStatusChanged, func(event *events.Event) error {
		var payload events.BookingEventPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		logger.Info().
			Int64("booking_id", payload.BookingID).
			Str("status", payload.Status).
			Msg("booking status changed")
		return nil
	})

	eventBus.Subscribe(events.EventInquiryCreated, func(event *events.Event) error {
		var payload events.InquiryEventPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		logger.Info().
			Int64("inquiry_id", payload.InquiryID).
			Msg("inquiry created")
		return nil
	})
}

func startMetrics(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Monitoring.PrometheusEnabled {
		return
	}

	metrics.Register()
	port := cfg.Monitoring.PrometheusPort
	if port == 0 {
		port = 9090
	}
	go startMetricsServer(ctx, port, logger)
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}

func startServer(ctx context.Context, httpServer *api.HTTPServer, logger *zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info().Msg("API server stopped")
	return nil
}
