// Package pricescheduler собирает процесс, который периодически ставит
// задачи обновления цен в RabbitMQ.
package pricescheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/crypto-portfolio/internal/config"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/metrics"
	pricing "github.com/magabrotheeeer/crypto-portfolio/internal/services/pricing"
	"github.com/magabrotheeeer/crypto-portfolio/internal/storage"
)

const (
	dbReadyAttempts = 10
	dbReadyDelay    = 3 * time.Second
	shutdownTimeout = 5 * time.Second
)

// App представляет приложение планировщика.
type App struct {
	schedulerService *pricing.SchedulerService
	metricsServer    *http.Server
	db               *storage.Storage
	conn             *amqp.Connection
	ch               *amqp.Channel
	logger           *slog.Logger
}

// New создает новый экземпляр приложения планировщика. Схему создаёт API,
// поэтому планировщик ждёт её появления.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "pricescheduler.New"

	db, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect storage: %w", op, err)
	}
	if err = db.WaitReady(ctx, dbReadyAttempts, dbReadyDelay); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RetryDelay)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to connect RabbitMQ: %w", op, err)
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.PricesExchange, rabbitmq.GetPriceQueues())
	if err != nil {
		closeResources(nil, conn, logger)
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to setup RabbitMQ channel: %w", op, err)
	}

	registry := metrics.NewRegistry()
	m := metrics.New(registry)

	return &App{
		schedulerService: pricing.NewSchedulerService(db, ch, cfg.Interval, logger, m),
		metricsServer:    metrics.NewServer(cfg.MetricsAddress, registry),
		db:               db,
		conn:             conn,
		ch:               ch,
		logger:           logger,
	}, nil
}

func closeResources(ch *amqp.Channel, conn *amqp.Connection, logger *slog.Logger) {
	if ch != nil {
		if err := ch.Close(); err != nil {
			logger.Error("failed to close channel", sl.Err(err))
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close connection", sl.Err(err))
		}
	}
}

// Run запускает планировщик и блокируется до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	go func() {
		a.logger.Info("metrics server starting on", slog.String("address", a.metricsServer.Addr))
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", sl.Err(err))
		}
	}()

	a.schedulerService.Run(ctx)

	a.logger.Info("shutting down price scheduler")

	timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.metricsServer.Shutdown(timeoutCtx); err != nil {
		a.logger.Error("failed to stop metrics server", sl.Err(err))
	}

	closeResources(a.ch, a.conn, a.logger)
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
	return nil
}
