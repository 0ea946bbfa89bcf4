// Switchyard orchestration server — serves the session HTTP API and
// runs multi-agent conversations against an OpenAI-compatible LLM.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/switchyard-ai/switchyard/pkg/agent"
	"github.com/switchyard-ai/switchyard/pkg/api"
	"github.com/switchyard-ai/switchyard/pkg/cleanup"
	"github.com/switchyard-ai/switchyard/pkg/config"
	"github.com/switchyard-ai/switchyard/pkg/database"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/llm"
	"github.com/switchyard-ai/switchyard/pkg/locks"
	"github.com/switchyard-ai/switchyard/pkg/masking"
	"github.com/switchyard-ai/switchyard/pkg/orchestrator"
	"github.com/switchyard-ai/switchyard/pkg/services"
	"github.com/switchyard-ai/switchyard/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config",
		getEnv("CONFIG_PATH", ""),
		"Path to the YAML configuration file (empty runs on defaults plus environment)")
	flag.Parse()

	// Load .env before the config layer reads the environment.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, using existing environment", "error", err)
	}

	logger := slog.Default()
	ctx := context.Background()

	slog.Info("Starting switchyard",
		"version", version.Full(),
		"config", *configPath)

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect to the database (runs embedded migrations)
	dbClient, err := database.NewClient(ctx, cfg.Database.ToDatabase())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Event bus with its standing subscribers: metrics rollups, the
	//    masked audit trail, and the system warnings collector.
	bus := events.NewBus(logger, events.WithQueueSize(cfg.Events.QueueSize))
	metrics := events.NewMetricsCollector()
	sessionMetrics := events.NewSessionMetricsCollector()
	maskingService := masking.NewService(cfg.Masking, logger)
	auditService := services.NewAuditService(dbClient.Client)
	auditLogger := events.NewAuditLogger(auditService, maskingService, logger)
	warningsService := services.NewSystemWarningsService()
	warningsCollector := events.NewWarningsCollector(warningsService, logger)

	if err := bus.SubscribeAll(metrics, 10); err != nil {
		slog.Error("Failed to subscribe metrics collector", "error", err)
		os.Exit(1)
	}
	if err := bus.SubscribeAll(sessionMetrics, 20); err != nil {
		slog.Error("Failed to subscribe session metrics collector", "error", err)
		os.Exit(1)
	}
	if err := bus.SubscribeAll(auditLogger, 30); err != nil {
		slog.Error("Failed to subscribe audit logger", "error", err)
		os.Exit(1)
	}
	if err := bus.Subscribe(events.EventLLMRequestFailed, warningsCollector, 40); err != nil {
		slog.Error("Failed to subscribe warnings collector", "error", err)
		os.Exit(1)
	}
	if err := bus.Subscribe(events.EventLLMRequestCompleted, warningsCollector, 40); err != nil {
		slog.Error("Failed to subscribe warnings collector", "error", err)
		os.Exit(1)
	}
	bus.Start()

	// 4. Domain services
	sessionService := services.NewSessionService(dbClient.Client, bus)
	contextService := services.NewContextService(dbClient.Client, bus)
	approvalService := services.NewApprovalService(dbClient.Client, bus, cfg.Agents.ExtraDestructiveTools)
	slog.Info("Services initialized")

	// 5. Session lock table
	lockManager := locks.NewManager(logger,
		locks.WithIdleTTL(cfg.Locks.IdleTTL),
		locks.WithSweepInterval(cfg.Locks.SweepInterval),
		locks.WithSizeFloor(cfg.Locks.SizeFloor))

	// 6. LLM client: OpenAI-compatible streaming driver behind retry and
	//    a circuit breaker, instrumented so usage lands on the bus.
	openaiClient := llm.NewOpenAIClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, logger,
		llm.WithRetryConfig(llm.RetryConfig{
			MaxAttempts:    cfg.LLM.Retry.MaxAttempts,
			InitialBackoff: cfg.LLM.Retry.InitialBackoff,
			MaxBackoff:     cfg.LLM.Retry.MaxBackoff,
		}),
		llm.WithBreaker(llm.NewBreaker(llm.BreakerConfig{
			FailureThreshold: cfg.LLM.Breaker.FailureThreshold,
			Cooldown:         cfg.LLM.Breaker.Cooldown,
		}, logger)),
		llm.WithChunkTimeout(cfg.LLM.ChunkTimeout),
		llm.WithStreamTimeout(cfg.LLM.StreamTimeout))
	llmClient := llm.NewInstrumentedClient(openaiClient, bus)
	slog.Info("LLM client initialized", "base_url", cfg.LLM.BaseURL, "model", cfg.LLM.Model)

	// 7. Agent roster
	mode, err := agent.ParseMode(cfg.Agents.Mode)
	if err != nil {
		slog.Error("Invalid agent mode", "error", err)
		os.Exit(1)
	}
	registry, err := agent.NewRegistry(mode)
	if err != nil {
		slog.Error("Failed to build agent registry", "error", err)
		os.Exit(1)
	}
	slog.Info("Agent registry initialized", "mode", mode, "agents", len(registry.List()))

	// 8. Orchestrator
	orch := orchestrator.New(orchestrator.Deps{
		Logger:    logger,
		Locks:     lockManager,
		Sessions:  sessionService,
		Contexts:  contextService,
		Approvals: approvalService,
		Registry:  registry,
		LLM:       llmClient,
		Bus:       bus,
		Masker:    maskingService,
	}, orchestrator.Config{
		Model:        cfg.LLM.Model,
		Temperature:  cfg.LLM.Temperature,
		MaxTokens:    cfg.LLM.MaxTokens,
		HistoryLimit: cfg.Agents.HistoryLimit,
		MaxTurns:     cfg.Agents.MaxTurns,
	})

	// 9. Authentication (fails startup when the JWKS URL is unreachable)
	auth, err := api.NewAuthenticator(ctx, cfg.Auth, logger)
	if err != nil {
		slog.Error("Failed to initialize authentication", "error", err)
		os.Exit(1)
	}

	// 10. Background retention task
	cleanupService := cleanup.NewService(cfg.Retention,
		sessionService, approvalService, auditService, sessionMetrics, warningsService, logger)
	cleanupService.Start(ctx)

	// 11. HTTP server (non-blocking)
	httpServer := api.NewServer(api.Deps{
		Logger:         logger,
		DB:             dbClient,
		Sessions:       sessionService,
		Contexts:       contextService,
		Approvals:      approvalService,
		Registry:       registry,
		Orchestrator:   orch,
		Metrics:        metrics,
		SessionMetrics: sessionMetrics,
		Bus:            bus,
		Warnings:       warningsService,
		Auth:           auth,
	}, *cfg)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()

	bus.PublishSystemStartup(ctx, events.SystemStartupPayload{
		Version: version.Full(),
		Mode:    string(mode),
	})
	slog.Info("Switchyard started", "host", cfg.Server.Host, "port", cfg.Server.Port)

	// 12. Wait for a shutdown signal or a server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	reason := ""
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
		reason = sig.String()
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
		reason = "server error"
	}

	bus.PublishSystemShutdown(ctx, events.SystemShutdownPayload{Reason: reason})

	// 13. Graceful shutdown: stop accepting HTTP first so no new turns
	//     start, then wind down the background machinery.
	httpCtx, httpCancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Warn("HTTP server shutdown incomplete", "error", err)
	}

	cleanupService.Stop()
	lockManager.Stop()

	busCtx, busCancel := context.WithTimeout(ctx, 5*time.Second)
	defer busCancel()
	if err := bus.Stop(busCtx); err != nil {
		slog.Warn("Event bus drain incomplete", "error", err)
	}

	slog.Info("Shutdown complete")
}
