package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/user/provider-registry/internal/adapter/api/handler"
	"github.com/user/provider-registry/internal/adapter/api/middleware"
	"github.com/user/provider-registry/internal/adapter/metrics"
	"github.com/user/provider-registry/internal/domain"
	"github.com/user/provider-registry/internal/pkg/config"
	"github.com/user/provider-registry/internal/usecase"
)

// NewRouter creates and configures the main HTTP router for the API.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.HTTPMetrics,
	authUseCase usecase.AuthUseCase,
	providerUseCase usecase.ProviderUseCase,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics(m))

	authHandler := handler.NewAuthHandler(authUseCase, logger)
	providerHandler := handler.NewProviderHandler(providerUseCase, logger, cfg.MaxBodySize)

	authenticated := middleware.Auth(cfg.JWTSecret, logger)
	loginLimit := middleware.RateLimit(rate.Limit(cfg.LoginRatePerSec), cfg.LoginRateBurst, logger)

	// Identity endpoints
	r.Post("/registry", authHandler.Register)
	r.With(loginLimit).Post("/login", authHandler.Login)

	// Public reads
	r.Get("/provider", providerHandler.List)
	r.Get("/provider/{id}", providerHandler.Get)

	// Authenticated writes
	r.Group(func(pr chi.Router) {
		pr.Use(authenticated)
		pr.Post("/provider", providerHandler.Create)
		pr.Put("/provider/{id}", providerHandler.Replace)
		pr.With(middleware.RequireClaim(domain.ClaimDeleteProvider, logger)).
			Delete("/provider/{id}", providerHandler.Delete)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
