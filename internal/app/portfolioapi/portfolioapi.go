package portfolioapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/crypto-portfolio/internal/cache"
	"github.com/magabrotheeeer/crypto-portfolio/internal/config"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/jwt"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/password"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/marketdata"
	"github.com/magabrotheeeer/crypto-portfolio/internal/metrics"
	"github.com/magabrotheeeer/crypto-portfolio/internal/migrations"
	authsvc "github.com/magabrotheeeer/crypto-portfolio/internal/services/auth"
	portfoliosvc "github.com/magabrotheeeer/crypto-portfolio/internal/services/portfolio"
	"github.com/magabrotheeeer/crypto-portfolio/internal/storage"
)

const shutdownTimeout = 15 * time.Second

// App — HTTP API портфеля.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

// New подключает хранилище, применяет миграции и собирает маршруты.
// Недоступный Redis не мешает старту: котировки просто не кэшируются.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "portfolioapi.New"

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
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
	portfolioService := portfoliosvc.NewPortfolioService(db, market, logger)
	authService := authsvc.NewAuthService(
		db,
		password.NewHasher(cfg.BcryptCost),
		jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL),
		portfolioService,
		logger,
		m,
	)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Dependencies{
		Auth:           authService,
		Portfolio:      portfolioService,
		Market:         market,
		DB:             db,
		Metrics:        m,
		MetricsHandler: metrics.Handler(registry),
		RateLimit:      cfg.RateLimit,
		RateBurst:      cfg.RateBurst,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeoutHTTP,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err = a.server.Shutdown(timeoutCtx)
	}
	a.close()
	return err
}

func (a *App) close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close redis", sl.Err(err))
		}
	}
}
