package handlers

import (
	"log/slog"

	"github.com/SscSPs/currency_admin/cmd/docs"
	portssvc "github.com/SscSPs/currency_admin/internal/core/ports/services"
	"github.com/SscSPs/currency_admin/internal/middleware"
	"github.com/SscSPs/currency_admin/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const defaultRefreshRate = "10-M"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tracker middleware.EventTracker,
) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{cfg.FrontendBaseURL},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}))

	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services, tracker)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	tracker middleware.EventTracker,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.PosthogMiddleware(tracker))

	registerCurrencyRoutes(v1, service.Currency, refreshRateLimit(cfg.RateLimit))
	registerExchangeRateRoutes(v1, service.ExchangeRate)
}

// refreshRateLimit builds the per-IP limiter for the bulk refresh. An
// unparsable format falls back to the default.
func refreshRateLimit(format string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT, using default", slog.String("value", format), slog.String("default", defaultRefreshRate))
		rate, _ = limiter.NewRateFromFormatted(defaultRefreshRate)
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
