package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"guestportal-service/internal/handler"
	mid "guestportal-service/internal/middleware"
	"guestportal-service/internal/session"
	"guestportal-service/internal/store"
	"guestportal-service/pkg/config"
	"guestportal-service/pkg/database"
	"guestportal-service/pkg/jwtutil"
	"guestportal-service/pkg/logger"
	"guestportal-service/prometheus"
)

func main() {
	// Load .env file; missing is fine, env vars may come from the platform
	_ = godotenv.Load()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting guestportal-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	db := database.GetDB()
	users := store.NewUserRepository(db)
	hotels := store.NewHotelRepository(db)
	links := store.NewLinkRepository(db)

	sessions := session.NewRegistry(users, hotels, links, log)
	h := handler.New(sessions, users, hotels, links)

	// Initialize Echo instance
	e := echo.New()
	e.Validator = handler.NewValidator()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public routes
	e.POST("/api/auth/signup", h.Signup)
	e.POST("/api/auth/login", h.Login)
	e.GET("/portal/:hotelID", h.Portal)

	// Dashboard API routes - JWT required
	api := e.Group("/api", mid.AuthMiddleware)
	api.GET("/dashboard", h.Dashboard)
	api.GET("/stats", h.Stats)

	api.PUT("/hotel", h.UpdateHotel)

	api.GET("/links", h.ListLinks)
	api.POST("/links", h.CreateLink)
	api.PUT("/links/reorder", h.ReorderLinks)
	api.PUT("/links/:id", h.UpdateLink)
	api.DELETE("/links/:id", h.DeleteLink)

	api.GET("/activities", h.ListActivities)
	api.POST("/activities", h.CreateActivity)
	api.PUT("/activities/:id", h.UpdateActivity)
	api.DELETE("/activities/:id", h.DeleteActivity)

	api.PUT("/settings/profile", h.UpdateProfile)
	api.PUT("/settings/password", h.UpdatePassword)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
