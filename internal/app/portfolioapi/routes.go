// Package portfolioapi собирает HTTP API портфеля: маршруты, зависимости и сервер.
package portfolioapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/auth/deleteaccount"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/auth/profile"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/auth/verify"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/health"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/holdings/create"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/holdings/list"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/holdings/refresh"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/holdings/remove"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/holdings/withdraw"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/market/overview"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/market/price"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/market/search"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/handlers/portfolio/stats"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crypto-portfolio/internal/marketdata"
	"github.com/magabrotheeeer/crypto-portfolio/internal/metrics"
	authsvc "github.com/magabrotheeeer/crypto-portfolio/internal/services/auth"
	portfoliosvc "github.com/magabrotheeeer/crypto-portfolio/internal/services/portfolio"

	// Документация Swagger.
	_ "github.com/magabrotheeeer/crypto-portfolio/docs"
)

// Dependencies — всё, что нужно маршрутам.
type Dependencies struct {
	Auth           *authsvc.AuthService
	Portfolio      *portfoliosvc.PortfolioService
	Market         *marketdata.Client
	DB             health.Pinger
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	RateLimit      float64
	RateBurst      int
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Dependencies) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.CORS,
		middlewarectx.MetricsMiddleware(deps.Metrics),
	)

	r.Get("/health", health.New(logger, deps.DB).ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, deps.RateLimit, deps.RateBurst))

		// Открытые конечные точки
		r.Post("/register", register.New(logger, deps.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, deps.Auth).ServeHTTP)
		r.Get("/profile", profile.New(logger, deps.Auth).ServeHTTP)
		r.Get("/verify", verify.New(logger, deps.Auth).ServeHTTP)

		r.Get("/crypto_price/{symbol}", price.New(logger, deps.Market).ServeHTTP)
		r.Post("/search_crypto", search.New(logger, deps.Market).ServeHTTP)
		r.Get("/market_data", overview.New(logger, deps.Market).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(deps.Auth, logger))
			r.Delete("/profile", deleteaccount.New(logger, deps.Auth).ServeHTTP)
			r.Get("/holdings", list.New(logger, deps.Portfolio).ServeHTTP)
			r.Post("/holdings", create.New(logger, deps.Portfolio).ServeHTTP)
			r.Post("/holdings/refresh", refresh.New(logger, deps.Portfolio).ServeHTTP)
			r.Delete("/holdings/{id}", remove.New(logger, deps.Portfolio).ServeHTTP)
			r.Post("/holdings/{id}/withdraw", withdraw.New(logger, deps.Portfolio).ServeHTTP)
			r.Get("/portfolio/stats", stats.New(logger, deps.Portfolio).ServeHTTP)
		})
	})

	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
