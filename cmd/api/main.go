// Package main is the entry point for the auth service.
package main

import (
	"fmt"
	"os"

	_ "github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/docs"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/config"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/handlers"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/metrics"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/middleware"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/repository"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/routes"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/service"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title User Auth Service API
// @version 1.0
// @description Registration, login and current-user endpoints issuing bearer tokens
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Configure logging
	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Initialize repository
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler(db)

	// Initialize metrics
	metricsCollector := metrics.New()

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	// Setup routes
	routes.Setup(router, authHandler, userHandler, healthHandler, jwtService, cfg, metricsCollector)

	// Start server
	log.Info().Str("port", cfg.Port).Msg("Starting auth service")
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
