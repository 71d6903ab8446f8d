// Package priceupdater собирает процесс, который читает задачи обновления цен
// из RabbitMQ, запрашивает котировки и записывает их в активы.
package priceupdater

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/crypto-portfolio/internal/cache"
	"github.com/magabrotheeeer/crypto-portfolio/internal/config"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/marketdata"
	"github.com/magabrotheeeer/crypto-portfolio/internal/metrics"
	pricing "github.com/magabrotheeeer/crypto-portfolio/internal/services/pricing"
	"github.com/magabrotheeeer/crypto-portfolio/internal/storage"
)

const (
	dbReadyAttempts = 10
	dbReadyDelay    = 3 * time.Second
	shutdownTimeout = 5 * time.Second
)

// App представляет приложение обработчика задач.
type App struct {
	updaterService *pricing.UpdaterService
	metricsServer  *http.Server
	db             *storage.Storage
	cache          *cache.Cache
	conn           *amqp.Connection
	ch             *amqp.Channel
	concurrency    int
	logger         *slog.Logger
}

// New создает новый экземпляр обработчика. Как и в API, Redis необязателен.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "priceupdater.New"

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
		_ = conn.Close()
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to setup RabbitMQ channel: %w", op, err)
	}

	var quoteCache marketdata.QuoteCache
	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		logger.Warn("redis unavailable, quotes will not be cached", sl.Err(err))
	} else {
		quoteCache = cacheRedis
	}

	registry := metrics.NewRegistry()
	m := metrics.New(registry)
	market := marketdata.New(logger, cfg.MarketData, quoteCache, m)

	return &App{
		updaterService: pricing.NewUpdaterService(db, market, logger, m),
		metricsServer:  metrics.NewServer(cfg.MetricsAddress, registry),
		db:             db,
		cache:          cacheRedis,
		conn:           conn,
		ch:             ch,
		concurrency:    cfg.Concurrency,
		logger:         logger,
	}, nil
}

// Run потребляет очередь до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	go func() {
		a.logger.Info("metrics server starting on", slog.String("address", a.metricsServer.Addr))
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", sl.Err(err))
		}
	}()

	a.logger.Info("consuming price refresh jobs",
		slog.String("queue", rabbitmq.RefreshQueue),
		slog.Int("concurrency", a.concurrency),
	)
	err := rabbitmq.ConsumeMessages(ctx, a.ch, rabbitmq.RefreshQueue, a.concurrency, a.logger, a.updaterService.HandleMessage)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	a.logger.Info("shutting down price updater")
	a.close()
	return err
}

func (a *App) close() {
	timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.metricsServer.Shutdown(timeoutCtx); err != nil {
		a.logger.Error("failed to stop metrics server", sl.Err(err))
	}
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close redis", sl.Err(err))
		}
	}
}
