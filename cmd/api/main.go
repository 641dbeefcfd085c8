// Naptime API
//
// Tells one person whether they should take a nap right now, based on last
// night's wearable-reported sleep.
//
//	@title			Naptime API
//	@version		1.0
//	@description	Nap advisory service: classifies last night's sleep, the time of day, and whether a nap already happened, then says yes or no.
//
//	@BasePath	/v1
//
//	@tag.name			advisory
//	@tag.description	Nap advisory endpoints
//
//	@tag.name			sessions
//	@tag.description	Session archive endpoints
//
//	@tag.name			insights
//	@tag.description	Narrative insights endpoints
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/emily-flambe/naptime/internal/api"
	"github.com/emily-flambe/naptime/internal/api/handler"
	"github.com/emily-flambe/naptime/internal/cache"
	"github.com/emily-flambe/naptime/internal/config"
	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/emily-flambe/naptime/internal/langfuse"
	"github.com/emily-flambe/naptime/internal/llm"
	"github.com/emily-flambe/naptime/internal/provider/oura"
	"github.com/emily-flambe/naptime/internal/repository"
	"github.com/emily-flambe/naptime/internal/seed"
	"github.com/emily-flambe/naptime/internal/service"
	"github.com/emily-flambe/naptime/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Resolve the subject's fixed civil timezone
	loc, err := time.LoadLocation(cfg.SubjectTimezone)
	if err != nil {
		log.Fatalf("Invalid SUBJECT_TIMEZONE %q: %v", cfg.SubjectTimezone, err)
	}

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "naptime-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.SessionRecord{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding session archive with sample data (SEED=true)...")
		if err := seed.Run(db, loc); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize the advisory cache
	var advisoryCache cache.Cache
	if cfg.CacheBackend == "redis" {
		advisoryCache = cache.NewRedis(cfg.RedisAddr)
		log.Printf("Advisory cache: redis (%s)", cfg.RedisAddr)
	} else {
		advisoryCache = cache.NewMemory()
		log.Println("Advisory cache: in-memory")
	}

	// Initialize the wearable provider client
	if cfg.OuraAPIToken == "" {
		log.Println("Warning: OURA_API_TOKEN not configured, provider calls will fail with 401")
	}
	providerClient := oura.NewClient(cfg.OuraBaseURL, cfg.OuraAPIToken)

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(db)

	// Initialize services
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	advisoryService := service.NewAdvisoryService(providerClient, advisoryCache, loc, ttl, cfg.FetchWindowDays)
	sessionService := service.NewSessionService(providerClient, sessionRepo, loc)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAINapInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize Langfuse ingestion client
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	insightsService := service.NewInsightsService(advisoryService, sessionRepo, openaiClient, langfuseClient, loc)

	// Initialize handlers
	advisoryHandler := handler.NewAdvisoryHandler(advisoryService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(advisoryHandler, sessionHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s (subject timezone %s)", addr, cfg.SubjectTimezone)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
