package handlers

import (
	"github.com/SscSPs/coin_vault_app/cmd/docs"
	portssvc "github.com/SscSPs/coin_vault_app/internal/core/ports/services"
	"github.com/SscSPs/coin_vault_app/internal/middleware"
	"github.com/SscSPs/coin_vault_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// rateLimiter and db may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
	db Pinger,
) {
	r.GET("/health", getHealth(db))

	setupAPIV1Routes(r, cfg, services, rateLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")
	if rateLimiter != nil {
		v1.Use(middleware.RateLimit(rateLimiter))
	}
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	RegisterCurrencyRoutes(v1, service.Currency)
	RegisterAccountRoutes(v1, service.Account)
	RegisterVaultRoutes(v1, service.Vault, service.Currency)
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
