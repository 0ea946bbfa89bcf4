// Package e2e boots complete switchyard instances against real Postgres
// and exercises them through the HTTP API, SSE stream included.
package e2e

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/pkg/agent"
	"github.com/switchyard-ai/switchyard/pkg/api"
	"github.com/switchyard-ai/switchyard/pkg/config"
	"github.com/switchyard-ai/switchyard/pkg/database"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/llm"
	"github.com/switchyard-ai/switchyard/pkg/locks"
	"github.com/switchyard-ai/switchyard/pkg/masking"
	"github.com/switchyard-ai/switchyard/pkg/orchestrator"
	"github.com/switchyard-ai/switchyard/pkg/services"
	testdb "github.com/switchyard-ai/switchyard/test/database"
)

// TestApp boots a complete switchyard instance for e2e testing.
type TestApp struct {
	// Core
	Config   *config.Config
	DB       *database.Client
	Bus      *events.Bus
	Registry *agent.Registry

	// Domain services
	Sessions  *services.SessionService
	Contexts  *services.ContextService
	Approvals *services.ApprovalService
	Warnings  *services.SystemWarningsService

	// Test wiring
	LLM *ScriptedLLMClient // nil when WithLLMClient injected a custom client

	// Runtime
	Orchestrator *orchestrator.Service
	Server       *api.Server
	BaseURL      string // e.g. "http://127.0.0.1:54321"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg       *config.Config
	llmClient llm.Client
	mode      string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config. Start from defaultTestConfig to keep
// the test-friendly toggles.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithLLMClient injects the LLM client. Tests exercising the real
// provider path pass an OpenAIClient pointed at a fake endpoint;
// everything else keeps the default scripted client.
func WithLLMClient(client llm.Client) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithAgentMode overrides the deployment mode ("multi" or "single").
func WithAgentMode(mode string) TestAppOption {
	return func(c *testAppConfig) { c.mode = mode }
}

// NewTestApp creates and starts a full switchyard test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.cfg == nil {
		tc.cfg = defaultTestConfig()
	}
	if tc.mode != "" {
		tc.cfg.Agents.Mode = tc.mode
	}
	if tc.llmClient == nil {
		tc.llmClient = NewScriptedLLMClient()
	}

	ctx := context.Background()

	// 1. Database: one isolated schema per test.
	dbClient := testdb.NewTestClient(t)

	// 2. Event bus with the production subscriber set: metrics rollups,
	//    the masked audit trail, and the system warnings collector.
	bus := events.NewBus(nil, events.WithQueueSize(tc.cfg.Events.QueueSize))
	metrics := events.NewMetricsCollector()
	sessionMetrics := events.NewSessionMetricsCollector()
	maskingService := masking.NewService(tc.cfg.Masking, nil)
	auditService := services.NewAuditService(dbClient.Client)
	auditLogger := events.NewAuditLogger(auditService, maskingService, nil)
	warningsService := services.NewSystemWarningsService()
	warningsCollector := events.NewWarningsCollector(warningsService, nil)
	require.NoError(t, bus.SubscribeAll(metrics, 10))
	require.NoError(t, bus.SubscribeAll(sessionMetrics, 20))
	require.NoError(t, bus.SubscribeAll(auditLogger, 30))
	require.NoError(t, bus.Subscribe(events.EventLLMRequestFailed, warningsCollector, 40))
	require.NoError(t, bus.Subscribe(events.EventLLMRequestCompleted, warningsCollector, 40))
	bus.Start()

	// 3. Domain services.
	sessionService := services.NewSessionService(dbClient.Client, bus)
	contextService := services.NewContextService(dbClient.Client, bus)
	approvalService := services.NewApprovalService(dbClient.Client, bus, tc.cfg.Agents.ExtraDestructiveTools)

	// 4. Session lock table.
	lockManager := locks.NewManager(nil,
		locks.WithIdleTTL(tc.cfg.Locks.IdleTTL),
		locks.WithSweepInterval(tc.cfg.Locks.SweepInterval),
		locks.WithSizeFloor(tc.cfg.Locks.SizeFloor))

	// 5. LLM behind the usage instrumentation, same as production.
	llmClient := llm.NewInstrumentedClient(tc.llmClient, bus)

	// 6. Agent roster.
	mode, err := agent.ParseMode(tc.cfg.Agents.Mode)
	require.NoError(t, err)
	registry, err := agent.NewRegistry(mode)
	require.NoError(t, err)

	// 7. Orchestrator.
	orch := orchestrator.New(orchestrator.Deps{
		Locks:     lockManager,
		Sessions:  sessionService,
		Contexts:  contextService,
		Approvals: approvalService,
		Registry:  registry,
		LLM:       llmClient,
		Bus:       bus,
		Masker:    maskingService,
	}, orchestrator.Config{
		Model:        tc.cfg.LLM.Model,
		Temperature:  tc.cfg.LLM.Temperature,
		MaxTokens:    tc.cfg.LLM.MaxTokens,
		HistoryLimit: tc.cfg.Agents.HistoryLimit,
		MaxTurns:     tc.cfg.Agents.MaxTurns,
	})

	// 8. Auth is disabled in the test config, so this never touches the
	//    network; every request runs as the dev user.
	auth, err := api.NewAuthenticator(ctx, tc.cfg.Auth, nil)
	require.NoError(t, err)

	// 9. HTTP server on a random port.
	server := api.NewServer(api.Deps{
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
	}, *tc.cfg)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	app := &TestApp{
		Config:       tc.cfg,
		DB:           dbClient,
		Bus:          bus,
		Registry:     registry,
		Sessions:     sessionService,
		Contexts:     contextService,
		Approvals:    approvalService,
		Warnings:     warningsService,
		Orchestrator: orch,
		Server:       server,
		BaseURL:      "http://" + ln.Addr().String(),
		t:            t,
	}
	if scripted, ok := tc.llmClient.(*ScriptedLLMClient); ok {
		app.LLM = scripted
	}

	// Shutdown in reverse-creation order. The database schema is dropped
	// by testdb.NewTestClient's own cleanup.
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		lockManager.Stop()
		_ = bus.Stop(shutdownCtx)
		_ = llmClient.Close()
	})

	return app
}

// defaultTestConfig is the production default trimmed for tests: auth
// stays off and rate limiting is disabled because whole test files hit
// the server from one IP.
func defaultTestConfig() *config.Config {
	cfg := config.Default()
	cfg.RateLimit.Enabled = false
	return cfg
}
