// Package api exposes the HTTP surface: the SSE streaming endpoint that
// drives orchestration, the session/agent control endpoints, and the
// observability endpoints. Handlers stay thin; all domain behavior lives
// in the services and the orchestrator.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/switchyard-ai/switchyard/pkg/agent"
	"github.com/switchyard-ai/switchyard/pkg/config"
	"github.com/switchyard-ai/switchyard/pkg/database"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/orchestrator"
	"github.com/switchyard-ai/switchyard/pkg/services"
)

// adminLockTimeout caps how long control endpoints wait for a busy
// session before returning a conflict. Stream requests are exempt and
// queue for as long as the client stays connected.
const defaultAdminLockTimeout = 5 * time.Second

// Deps collects the collaborators the server routes requests to. Bus and
// Warnings feed the health endpoint and may be nil.
type Deps struct {
	Logger         *slog.Logger
	DB             *database.Client
	Sessions       *services.SessionService
	Contexts       *services.ContextService
	Approvals      *services.ApprovalService
	Registry       *agent.Registry
	Orchestrator   *orchestrator.Service
	Metrics        *events.MetricsCollector
	SessionMetrics *events.SessionMetricsCollector
	Bus            *events.Bus
	Warnings       *services.SystemWarningsService
	Auth           *Authenticator
}

// Server is the HTTP server. Create it with NewServer, start it with
// Start or StartWithListener, and stop it with Shutdown.
type Server struct {
	logger *slog.Logger
	cfg    config.ServerConfig

	db             *database.Client
	sessions       *services.SessionService
	contexts       *services.ContextService
	approvals      *services.ApprovalService
	registry       *agent.Registry
	orch           *orchestrator.Service
	admin          *orchestrator.Service
	metrics        *events.MetricsCollector
	sessionMetrics *events.SessionMetricsCollector
	bus            *events.Bus
	warnings       *services.SystemWarningsService
	auth           *Authenticator
	limiter        *ipRateLimiter

	engine *gin.Engine
	http   *http.Server
}

// NewServer wires the router. Auth may be nil, in which case every
// request runs unauthenticated with an empty user id; main always
// provides one, tests sometimes do not.
func NewServer(deps Deps, cfg config.Config) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "api")

	adminTimeout := cfg.Locks.AcquireTimeout
	if adminTimeout <= 0 {
		adminTimeout = defaultAdminLockTimeout
	}

	s := &Server{
		logger:         logger,
		cfg:            cfg.Server,
		db:             deps.DB,
		sessions:       deps.Sessions,
		contexts:       deps.Contexts,
		approvals:      deps.Approvals,
		registry:       deps.Registry,
		orch:           deps.Orchestrator,
		admin:          deps.Orchestrator.WithLockTimeout(adminTimeout),
		metrics:        deps.Metrics,
		sessionMetrics: deps.SessionMetrics,
		bus:            deps.Bus,
		warnings:       deps.Warnings,
		auth:           deps.Auth,
	}

	if cfg.RateLimit.Enabled {
		s.limiter = newIPRateLimiter(cfg.RateLimit, logger)
	}

	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Order matters: recovery outermost so panics anywhere below still
	// produce a response, then request id so the access log can carry it.
	r.Use(recovery(s.logger))
	r.Use(requestID())
	r.Use(accessLog(s.logger))
	r.Use(securityHeaders())

	// Health stays outside auth and rate limiting so orchestration
	// platforms can probe without credentials.
	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	if s.limiter != nil {
		v1.Use(s.limiter.middleware())
	}
	if s.auth != nil {
		v1.Use(s.auth.Middleware())
	}

	v1.POST("/messages/stream", s.streamHandler)

	v1.POST("/sessions", s.createSessionHandler)
	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.DELETE("/sessions/:id", s.deleteSessionHandler)

	v1.GET("/agents", s.listAgentsHandler)
	v1.GET("/agents/:session_id/current", s.currentAgentHandler)
	v1.POST("/agents/:session_id/switch", s.switchAgentHandler)

	v1.GET("/events/metrics", s.metricsHandler)
	v1.GET("/events/metrics/session/:id", s.sessionMetricsHandler)

	return r
}

// Handler exposes the router for httptest-based tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on the configured host and port and serves until
// Shutdown is called. It blocks; run it on its own goroutine.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.StartWithListener(ln)
}

// StartWithListener serves on an existing listener. Tests use this with
// a port-zero listener to avoid collisions.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.http = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("HTTP server listening", "addr", ln.Addr().String())

	if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// up to the context deadline, then stops the rate limiter sweep.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.limiter != nil {
		defer s.limiter.stop()
	}
	if s.http == nil {
		return nil
	}
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
