// MNL Recovery API
//
// REST API for shift-work recovery tracking.
//
//	@title			MNL Recovery API
//	@version		1.0
//	@description	Daily shift and health logging with a deterministic recovery simulation: body/mental battery, sleep debt, hourly forecasts, and LLM-generated advice.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User and recovery profile endpoints
//
//	@tag.name			health-logs
//	@tag.description	Daily shift and health log endpoints
//
//	@tag.name			vitals
//	@tag.description	Battery simulation, forecast, and advice endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/sangjun0330/mnl-recovery/internal/api"
	"github.com/sangjun0330/mnl-recovery/internal/api/handler"
	"github.com/sangjun0330/mnl-recovery/internal/config"
	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/engine"
	"github.com/sangjun0330/mnl-recovery/internal/langfuse"
	"github.com/sangjun0330/mnl-recovery/internal/llm"
	"github.com/sangjun0330/mnl-recovery/internal/recorder"
	"github.com/sangjun0330/mnl-recovery/internal/repository"
	"github.com/sangjun0330/mnl-recovery/internal/scheduler"
	"github.com/sangjun0330/mnl-recovery/internal/seed"
	"github.com/sangjun0330/mnl-recovery/internal/service"
	"github.com/sangjun0330/mnl-recovery/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (exports to Langfuse when configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "mnl-recovery-api")
	if err != nil {
		log.Printf("Warning: tracing disabled: %v", err)
	} else {
		defer shutdownTracer(ctx)
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.HealthLog{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	healthLogRepo := repository.NewHealthLogRepository(db)

	// Initialize Langfuse client (used for advice feedback scores)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Load the advice system prompt from Langfuse with a local fallback.
	// Empty means the built-in prompt.
	advicePrompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:    cfg.LangfuseBaseURL,
		PublicKey:  cfg.LangfusePublicKey,
		SecretKey:  cfg.LangfuseSecretKey,
		PromptName: cfg.LangfusePromptName,
		SavePath:   cfg.AdvicePromptFallback,
	})
	if err != nil {
		log.Printf("Warning: using built-in advice prompt: %v", err)
		advicePrompt = ""
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAdviceModel, advicePrompt)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, advice endpoint will be unavailable")
	}

	// Initialize services
	userService := service.NewUserService(userRepo)
	healthLogService := service.NewHealthLogService(healthLogRepo, userRepo)
	vitalsService := service.NewVitalsService(healthLogRepo, userRepo, engine.Version(cfg.EngineVersion))
	forecastService := service.NewForecastService(healthLogRepo, vitalsService)
	adviceService := service.NewAdviceService(vitalsService, forecastService, openaiClient, userRepo)

	// Initialize the snapshot recorder and the nightly recompute job
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.SnapshotDBPath != "" {
		sqliteRec, err := recorder.NewSQLiteRecorder(cfg.SnapshotDBPath)
		if err != nil {
			log.Fatalf("Failed to open snapshot recorder: %v", err)
		}
		rec = sqliteRec
	}
	defer rec.Close()

	sched := scheduler.NewScheduler(ctx, userRepo, vitalsService, rec)
	if err := sched.Register(cfg.RecomputeCron); err != nil {
		log.Fatalf("Failed to register recompute job: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	healthLogHandler := handler.NewHealthLogHandler(healthLogService)
	vitalsHandler := handler.NewVitalsHandler(vitalsService, forecastService)
	adviceHandler := handler.NewAdviceHandler(adviceService, langfuseClient)

	// Setup router
	router := api.NewRouter(userHandler, healthLogHandler, vitalsHandler, adviceHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
