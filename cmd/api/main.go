package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	appcache "github.com/wadhefa/wadhefa-backend/internal/cache"
	appconfig "github.com/wadhefa/wadhefa-backend/internal/config"
	"github.com/wadhefa/wadhefa-backend/internal/database"
	"github.com/wadhefa/wadhefa-backend/internal/handlers"
	"github.com/wadhefa/wadhefa-backend/internal/ingest"
	"github.com/wadhefa/wadhefa-backend/internal/repository"
	"github.com/wadhefa/wadhefa-backend/internal/scheduler"
	"github.com/wadhefa/wadhefa-backend/internal/services"
	"github.com/wadhefa/wadhefa-backend/internal/storage"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	ctx := context.Background()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseURL)

	// 3. Redis + Object Storage
	rdb, err := appcache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to redis: ", err)
	}
	cache := appcache.NewRedisCache(rdb)

	store, err := storage.NewS3Store(ctx,
		cfg.StorageAccountID, cfg.StorageAccessKey, cfg.StorageSecretKey,
		cfg.StorageBucket, cfg.StoragePublicBaseURL)
	if err != nil {
		log.Fatal("Failed to create object store: ", err)
	}

	// 4. Repositories
	jobRepo := repository.NewGormJobRepository(db)
	appRepo := repository.NewGormApplicationRepository(db)
	profileRepo := repository.NewGormProfileRepository(db)
	newsRepo := repository.NewGormNewsRepository(db)

	// 5. Core Services
	llmService := services.NewLLMService(cfg.GeminiAPIKey)
	jobService := services.NewJobService(jobRepo, cache)
	applicationService := services.NewApplicationService(appRepo, jobRepo, store)
	profileService := services.NewProfileService(profileRepo)
	ingestService := ingest.NewService(newsRepo, jobRepo, llmService)

	// 6. Ingestion sources
	newsFetcher := ingest.NewFeedFetcher(cfg.NewsFeedURL)
	var jobsFetcher ingest.Fetcher = newsFetcher
	if cfg.JobsPageURL != "" {
		jobsFetcher = &ingest.PageFetcher{
			URL:             cfg.JobsPageURL,
			CardSelector:    ".job-card",
			TitleSelector:   "h2",
			LinkSelector:    "a",
			ContentSelector: ".job-description",
		}
	}

	// 7. Cron-driven ingestion
	sched := scheduler.New(ingestService, newsFetcher, cfg.ScrapeIntervalHours)
	if err := sched.Start(ctx); err != nil {
		log.Fatal("Failed to start scheduler: ", err)
	}
	defer sched.Stop()

	// 8. Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	profileHandler := handlers.NewProfileHandler(profileService)
	ingestHandler := handlers.NewIngestHandler(ingestService, newsFetcher, jobsFetcher)

	// 9. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 10. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/jobs", jobHandler.List)
		api.GET("/jobs/:slug", jobHandler.GetBySlug)
		api.POST("/jobs", jobHandler.Create)
		api.POST("/applications", applicationHandler.Apply)

		api.GET("/profiles/:userID", profileHandler.Get)
		api.PUT("/profiles/:userID", profileHandler.Upsert)

		api.GET("/scrape/news", ingestHandler.RunNews)
		api.GET("/scrape/jobs", ingestHandler.RunJobs)
	}

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
