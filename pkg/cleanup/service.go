// Package cleanup provides the background retention task.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/switchyard-ai/switchyard/pkg/config"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes sessions idle past the configured timeout
//   - Purges soft-deleted sessions past the retention window, releasing
//     their in-memory metrics rollups
//   - Drops approvals that waited too long for a decision
//   - Trims audit rows past the audit retention period
//
// Session locks are not handled here; the lock manager runs its own
// idle sweep. All operations are idempotent and safe to run from
// multiple replicas.
type Service struct {
	cfg            config.RetentionConfig
	sessions       *services.SessionService
	approvals      *services.ApprovalService
	audit          *services.AuditService
	sessionMetrics *events.SessionMetricsCollector
	warnings       *services.SystemWarningsService
	logger         *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the retention task. sessionMetrics and warnings may
// be nil when no per-session rollup is kept or no warning surface exists.
func NewService(
	cfg config.RetentionConfig,
	sessions *services.SessionService,
	approvals *services.ApprovalService,
	audit *services.AuditService,
	sessionMetrics *events.SessionMetricsCollector,
	warnings *services.SystemWarningsService,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:            cfg,
		sessions:       sessions,
		approvals:      approvals,
		audit:          audit,
		sessionMetrics: sessionMetrics,
		warnings:       warnings,
		logger:         logger.With("component", "cleanup"),
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		"interval", s.cfg.CleanupInterval,
		"session_idle_timeout", s.cfg.SessionIdleTimeout,
		"purge_after", s.cfg.PurgeAfter,
		"stale_approval_age", s.cfg.StaleApprovalAge,
		"audit_retention", s.cfg.AuditRetention)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll performs one retention pass. Exported so operators can trigger
// a pass out of band; each task logs and continues on failure so one
// broken query cannot starve the others.
func (s *Service) RunAll(ctx context.Context) {
	s.softDeleteIdleSessions(ctx)
	s.purgeDeletedSessions(ctx)
	s.deleteStaleApprovals(ctx)
	s.trimAuditEntries(ctx)
}

func (s *Service) softDeleteIdleSessions(ctx context.Context) {
	count, err := s.sessions.SoftDeleteInactiveSessions(ctx, s.cfg.SessionIdleTimeout)
	if err != nil {
		s.logger.Error("retention: soft-delete of idle sessions failed", "error", err)
		s.reportTask("idle_sessions", err)
		return
	}
	s.reportTask("idle_sessions", nil)
	if count > 0 {
		s.logger.Info("retention: soft-deleted idle sessions", "count", count)
	}
}

func (s *Service) purgeDeletedSessions(ctx context.Context) {
	ids, err := s.sessions.PurgeDeletedSessions(ctx, s.cfg.PurgeAfter)
	if err != nil {
		s.logger.Error("retention: purge of deleted sessions failed", "error", err)
		s.reportTask("session_purge", err)
		return
	}
	s.reportTask("session_purge", nil)
	if len(ids) == 0 {
		return
	}

	// Purged rows are gone for good; drop their metrics rollups too.
	if s.sessionMetrics != nil {
		for _, id := range ids {
			s.sessionMetrics.RemoveSession(id)
		}
	}
	s.logger.Info("retention: purged deleted sessions", "count", len(ids))
}

func (s *Service) deleteStaleApprovals(ctx context.Context) {
	count, err := s.approvals.DeleteStale(ctx, s.cfg.StaleApprovalAge)
	if err != nil {
		s.logger.Error("retention: stale approval cleanup failed", "error", err)
		s.reportTask("stale_approvals", err)
		return
	}
	s.reportTask("stale_approvals", nil)
	if count > 0 {
		s.logger.Info("retention: dropped stale approvals", "count", count)
	}
}

func (s *Service) trimAuditEntries(ctx context.Context) {
	count, err := s.audit.CleanupOldEntries(ctx, s.cfg.AuditRetention)
	if err != nil {
		s.logger.Error("retention: audit trim failed", "error", err)
		s.reportTask("audit_trim", err)
		return
	}
	s.reportTask("audit_trim", nil)
	if count > 0 {
		s.logger.Info("retention: trimmed audit entries", "count", count)
	}
}

// reportTask keeps the health surface in sync with task outcomes: a
// failure raises a retention warning for the task, a clean pass clears it.
func (s *Service) reportTask(task string, err error) {
	if s.warnings == nil {
		return
	}
	if err != nil {
		s.warnings.AddWarning(services.WarningCategoryRetention,
			"retention task is failing", err.Error(), task)
		return
	}
	s.warnings.ClearBySource(services.WarningCategoryRetention, task)
}
