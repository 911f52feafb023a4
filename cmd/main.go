package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"palahian/database"
	"palahian/docs"
	"palahian/internal/auth"
	"palahian/internal/cache"
	"palahian/internal/config"
	"palahian/internal/controllers"
	"palahian/internal/geocode"
	"palahian/internal/middleware"
	"palahian/internal/repository"
	"palahian/internal/services"
	"palahian/internal/utils"
	"palahian/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// @title Palahian API
// @version 1.0
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadEnvFiles(".env", "../.env")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Palahian API"
	docs.SwaggerInfo.Description = "Gamefowl marketplace: farms, stables, bloodlines, chickens and search."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections(ctx, db)

	var (
		redisClient  *cache.RedisClient
		geocodeCache geocode.Cache
	)
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Redis unavailable, geocode responses will not be cached: %v", err)
		} else {
			defer redisClient.Close()
			geocodeCache = redisClient
		}
	}

	userRepo := repository.NewUserRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	stableRepo := repository.NewStableRepository(db)
	bloodlineRepo := repository.NewBloodlineRepository(db)
	chickenRepo := repository.NewChickenRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	mailer := utils.NewSMTPMailer(cfg.Mail)
	geocoder := geocode.NewClient(geocode.Config{
		BaseURL:   cfg.GeocodeURL,
		UserAgent: cfg.GeocodeUserAgent,
		Timeout:   cfg.GeocodeTimeout,
		CacheTTL:  cfg.GeocodeCacheTTL,
	}, geocodeCache)

	accountService := services.NewAccountService(userRepo, tokens, mailer, cfg.AppURL, cfg.VerificationTTL)
	ownershipService := services.NewOwnershipService(userRepo, farmRepo, stableRepo, bloodlineRepo)
	chickenService := services.NewChickenService(chickenRepo, farmRepo, bloodlineRepo)
	searchService := services.NewSearchService(chickenRepo, userRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	metrics := middleware.NewMetrics()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID(), metrics.Middleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Palahian API is running",
			"version": "1.0.0",
		})
	})
	router.GET("/metrics", metrics.Handler())
	router.GET("/health", func(c *gin.Context) {
		response := gin.H{"status": "healthy", "database": true}
		status := http.StatusOK
		if err := database.Ping(c.Request.Context(), db); err != nil {
			response["status"] = "unhealthy"
			response["database"] = false
			response["error"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if redisClient != nil {
			if redisStatus, err := redisClient.GetStatus(c.Request.Context()); err != nil {
				response["redis"] = gin.H{"connected": false, "error": err.Error()}
			} else {
				response["redis"] = redisStatus
			}
		}
		c.JSON(status, response)
	})

	routes.RegisterAPIRoutes(router, routes.Controllers{
		Account:   controllers.NewAccountController(accountService, cfg.AppURL),
		Farm:      controllers.NewFarmController(ownershipService),
		Stable:    controllers.NewStableController(ownershipService),
		Bloodline: controllers.NewBloodlineController(ownershipService),
		Chicken:   controllers.NewChickenController(chickenService),
		Search:    controllers.NewSearchController(searchService, geocoder),
	}, tokens)
	routes.RegisterSwaggerRoutes(router)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        corsHandler.Handler(router),
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
