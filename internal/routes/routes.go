// Package routes defines HTTP routes for the auth service.
package routes

import (
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/docs"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/config"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/handlers"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/metrics"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/middleware"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
	jwtService service.JWTService,
	cfg *config.Config,
	metricsCollector *metrics.Metrics,
) {
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
	}))
	router.Use(metricsCollector.Middleware())

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	user := api.Group("/user")
	user.Use(middleware.RequireAuth(jwtService))
	{
		user.GET("/me", userHandler.Me)
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
