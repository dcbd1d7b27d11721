package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"location-filter-go/internal/auth"
	"location-filter-go/internal/handler"
	"location-filter-go/internal/location"
	"location-filter-go/internal/middleware"
	"location-filter-go/internal/provider"
	"location-filter-go/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.SetupLogging(); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	table := location.Philippines
	log.WithFields(log.Fields{
		"regions": table.Len(),
		"cities":  table.CityCount(),
	}).Info("Loaded location table")

	// Initialize handlers
	locationHandler := handler.NewLocationHandler(table)

	// Set up Gin router
	router := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}
	router.Use(cors.New(corsConfig))

	// Public location routes
	router.GET("/api/regions", locationHandler.GetRegions)
	router.GET("/api/regions/summary", locationHandler.GetRegionSummaries)
	router.GET("/api/regions/:name/cities", locationHandler.GetRegionCities)
	router.GET("/api/cities/:city/regions", locationHandler.GetCityRegions)
	router.GET("/api/locations/filter", locationHandler.GetLocationFilter)
	router.POST("/api/locations/filter", locationHandler.RepopulateLocationFilter)

	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, accounts and provider directory disabled")
	} else {
		// Connect to database
		db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		authService := auth.NewAuthService(db, cfg.JWTSecret, table)
		providerService := provider.NewProviderService(db, table)

		authHandler := handler.NewAuthHandler(authService)
		providerHandler := handler.NewProviderHandler(providerService)

		router.POST("/api/login", authHandler.Login)
		router.POST("/api/register", authHandler.Register)
		router.GET("/api/providers", providerHandler.SearchProviders)

		// Protected routes
		protected := router.Group("/api")
		protected.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
		{
			protected.GET("/user/profile", authHandler.GetUserProfile)
			protected.PUT("/providers/me/location", providerHandler.UpdateMyLocation)
		}
	}

	log.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
