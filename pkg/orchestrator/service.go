// Package orchestrator runs the agent conversation loop: it serializes
// work per session, drives the LLM streaming protocol, enforces tool
// gating and human approval, and translates everything that happens
// into an ordered stream of client-facing chunks.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/pkg/agent"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/llm"
	"github.com/switchyard-ai/switchyard/pkg/locks"
	"github.com/switchyard-ai/switchyard/pkg/models"
	"github.com/switchyard-ai/switchyard/pkg/services"
)

const (
	defaultHistoryLimit = 100
	defaultMaxTurns     = 10

	// streamBuffer decouples chunk production from slow SSE writers
	// without letting a dead client pin the session lock forever; sends
	// also watch the caller's context.
	streamBuffer = 16
)

// Config tunes orchestration behavior. The zero value is usable.
type Config struct {
	Model       string
	Temperature *float64
	MaxTokens   *int

	// HistoryLimit caps how many stored messages enter the prompt
	// window. Zero means the default of 100.
	HistoryLimit int

	// MaxTurns caps model round-trips per client call, bounding loops
	// where the model keeps emitting rejected calls or routing hops.
	MaxTurns int

	// LockTimeout bounds how long a call waits for the session lock.
	// Zero waits for as long as the caller's context allows.
	LockTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = defaultHistoryLimit
	}
	if c.MaxTurns <= 0 {
		c.MaxTurns = defaultMaxTurns
	}
	return c
}

// Deps collects the collaborators the orchestrator drives. All fields
// except Masker are required.
type Deps struct {
	Logger    *slog.Logger
	Locks     *locks.Manager
	Sessions  *services.SessionService
	Contexts  *services.ContextService
	Approvals *services.ApprovalService
	Registry  *agent.Registry
	LLM       llm.Client
	Bus       *events.Bus

	// Masker, when set, scrubs secrets from error details before they
	// reach the wire.
	Masker events.Masker
}

// Service coordinates agent turns over sessions. It owns no state of
// its own; everything durable lives behind the session services, so a
// restart loses nothing but in-flight streams.
type Service struct {
	cfg       Config
	logger    *slog.Logger
	locks     *locks.Manager
	sessions  *services.SessionService
	contexts  *services.ContextService
	approvals *services.ApprovalService
	registry  *agent.Registry
	llm       llm.Client
	bus       *events.Bus
	masker    events.Masker
}

// New creates the orchestration service.
func New(deps Deps, cfg Config) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:       cfg.withDefaults(),
		logger:    logger.With("component", "orchestrator"),
		locks:     deps.Locks,
		sessions:  deps.Sessions,
		contexts:  deps.Contexts,
		approvals: deps.Approvals,
		registry:  deps.Registry,
		llm:       deps.LLM,
		bus:       deps.Bus,
		masker:    deps.Masker,
	}
}

// WithLockTimeout returns a copy of the service whose calls give up on
// the session lock after d. Admin endpoints use this to fail fast with
// a conflict instead of queueing behind a long-running stream.
func (s *Service) WithLockTimeout(d time.Duration) *Service {
	clone := *s
	clone.cfg.LockTimeout = d
	return &clone
}

// MessageInput is a user message submission. SessionID is always a
// concrete id: placeholder ids are resolved at the API boundary before
// orchestration starts.
type MessageInput struct {
	SessionID string
	UserID    string
	Content   string

	// Agent optionally pins the session to a specific agent before the
	// turn runs.
	Agent string

	Metadata map[string]any
}

// ToolResultInput reports the outcome of a tool call executed on the
// client side.
type ToolResultInput struct {
	SessionID string
	CallID    string
	ToolName  string
	Result    string
}

// HITLDecisionInput carries a human verdict on a pending approval.
type HITLDecisionInput struct {
	SessionID         string
	CallID            string
	Decision          models.Decision
	Feedback          string
	ModifiedArguments map[string]any
}

// SwitchInput is an explicit client-driven agent switch.
type SwitchInput struct {
	SessionID string
	Agent     string
	Reason    string

	// Content, when set, is treated as a user message for the target
	// agent: the switch is followed by a full turn instead of a bare
	// Done.
	Content string
}

// ─────────────────────────────────────────────────────────────────────
// Entry points. Each returns immediately with a chunk stream; all work
// happens behind the session lock in a dedicated goroutine and the
// channel closes when the call is finished or fails.
// ─────────────────────────────────────────────────────────────────────

// ProcessMessage handles a user message: it creates the session on
// first contact, persists the message, and runs the agent turn loop.
func (s *Service) ProcessMessage(ctx context.Context, in MessageInput) <-chan Chunk {
	return s.run(ctx, in.SessionID, func(ctx context.Context, st *stream) error {
		return s.processMessage(ctx, st, in)
	})
}

// ProcessToolResult records a tool execution result and resumes the
// turn once every call of the pending assistant message is answered.
func (s *Service) ProcessToolResult(ctx context.Context, in ToolResultInput) <-chan Chunk {
	return s.run(ctx, in.SessionID, func(ctx context.Context, st *stream) error {
		return s.processToolResult(ctx, st, in)
	})
}

// ProcessHITLDecision applies a human decision to a pending approval:
// approve and edit release the call for execution, reject feeds the
// refusal back to the model.
func (s *Service) ProcessHITLDecision(ctx context.Context, in HITLDecisionInput) <-chan Chunk {
	return s.run(ctx, in.SessionID, func(ctx context.Context, st *stream) error {
		return s.processHITLDecision(ctx, st, in)
	})
}

// ProcessSwitchAgent performs an explicit client-driven agent switch.
func (s *Service) ProcessSwitchAgent(ctx context.Context, in SwitchInput) <-chan Chunk {
	return s.run(ctx, in.SessionID, func(ctx context.Context, st *stream) error {
		return s.processSwitchAgent(ctx, st, in)
	})
}

// run acquires the session lock and executes fn on a fresh goroutine,
// translating its error (if any) into a final error chunk.
func (s *Service) run(ctx context.Context, sessionID string, fn func(context.Context, *stream) error) <-chan Chunk {
	ch := make(chan Chunk, streamBuffer)
	st := &stream{ctx: ctx, ch: ch}

	go func() {
		defer close(ch)

		if sessionID == "" {
			s.fail(st, services.NewValidationError("session_id", "must not be empty"))
			return
		}

		lock, err := s.locks.Acquire(ctx, sessionID, s.cfg.LockTimeout)
		if err != nil {
			s.fail(st, err)
			return
		}
		defer lock.Release()

		if err := fn(ctx, st); err != nil {
			s.fail(st, err)
		}
	}()

	return ch
}

// ─────────────────────────────────────────────────────────────────────
// Call implementations. All of these run under the session lock.
// ─────────────────────────────────────────────────────────────────────

func (s *Service) processMessage(ctx context.Context, st *stream, in MessageInput) error {
	if in.Content == "" {
		return services.NewValidationError("content", "must not be empty")
	}

	// 1. Resolve the session, creating it on first contact. Soft-deleted
	//    sessions surface as ErrSessionDeleted and never restart here.
	sess, err := s.sessions.GetSession(ctx, in.SessionID, false)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrNotFound):
		sess, err = s.sessions.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: in.SessionID,
			UserID:    in.UserID,
			Metadata:  in.Metadata,
		})
		if err != nil {
			return err
		}
		if !st.send(&SessionInfoChunk{SessionID: sess.ID}) {
			return ctx.Err()
		}
	default:
		return err
	}

	// 2. Apply an explicit agent override before anything else runs.
	if in.Agent != "" {
		if err := s.applyAgentOverride(ctx, st, sess.ID, in.Agent); err != nil {
			return err
		}
	}

	// 3. Persist the message and run the turn.
	return s.startTurn(ctx, st, sess.ID, in.Content)
}

// startTurn persists content as a user message and runs the agent turn
// loop. It is shared by processMessage and the switch-with-content path of
// processSwitchAgent.
func (s *Service) startTurn(ctx context.Context, st *stream, sessionID, content string) error {
	// 1. Persist the user message; this also bumps session activity.
	if _, err := s.sessions.AddMessage(ctx, models.AddMessageRequest{
		SessionID: sessionID,
		Role:      message.RoleUser,
		Content:   content,
	}); err != nil {
		return err
	}

	// 2. A turn cannot start while approvals are outstanding: replay
	//    them so a reconnecting client can re-render its prompts, and
	//    let the decision drive the next step.
	pending, err := s.approvals.ListPending(ctx, sessionID)
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		s.logger.Info("replaying pending approvals instead of starting a turn",
			"session_id", sessionID, "pending", len(pending))
		for _, p := range pending {
			if !st.send(&HITLRequestChunk{CallID: p.ID, ToolName: p.ToolName, Arguments: p.Arguments}) {
				return ctx.Err()
			}
		}
		return nil
	}

	// 3. Run the agent turn loop.
	return s.runTurn(ctx, st, sessionID)
}

func (s *Service) processToolResult(ctx context.Context, st *stream, in ToolResultInput) error {
	// 1. The session must exist and be active.
	if _, err := s.sessions.GetSession(ctx, in.SessionID, false); err != nil {
		return err
	}

	// 2. Append the tool result. Pairing against an earlier assistant
	//    tool call is validated at write time, so orphan results are
	//    rejected before they can poison the history.
	if _, err := s.sessions.AddMessage(ctx, models.AddMessageRequest{
		SessionID:  in.SessionID,
		Role:       message.RoleTool,
		Content:    in.Result,
		ToolCallID: in.CallID,
		ToolName:   in.ToolName,
	}); err != nil {
		return err
	}

	s.bus.PublishToolResultReceived(ctx, in.SessionID, events.ToolResultReceivedPayload{
		CallID:       in.CallID,
		ToolName:     in.ToolName,
		ResultLength: len(in.Result),
	})

	// 3. Hold the turn until every call of the pending assistant
	//    message has its result; the client reports them one at a time.
	waiting, err := s.unansweredCalls(ctx, in.SessionID)
	if err != nil {
		return err
	}
	if len(waiting) > 0 {
		s.logger.Debug("holding turn for remaining tool results",
			"session_id", in.SessionID, "waiting", len(waiting))
		st.send(&DoneChunk{})
		return nil
	}

	// 4. Re-enter the turn loop with the new history.
	return s.runTurn(ctx, st, in.SessionID)
}

func (s *Service) processHITLDecision(ctx context.Context, st *stream, in HITLDecisionInput) error {
	// 1. Validate the verdict before touching state.
	if !in.Decision.Valid() {
		return services.NewValidationError("decision", fmt.Sprintf("unknown decision %q", in.Decision))
	}
	if _, err := s.sessions.GetSession(ctx, in.SessionID, false); err != nil {
		return err
	}

	// 2. Resolve the pending approval; the row is deleted in the same
	//    transaction. A second decision for the same call is a no-op.
	resolved, err := s.approvals.Resolve(ctx, models.ResolveApprovalRequest{
		CallID:            in.CallID,
		Decision:          in.Decision,
		Feedback:          in.Feedback,
		ModifiedArguments: in.ModifiedArguments,
	})
	if errors.Is(err, services.ErrAlreadyResolved) {
		st.send(&DoneChunk{})
		return nil
	}
	if err != nil {
		return err
	}
	if resolved.SessionID != in.SessionID {
		return services.NewValidationError("call_id",
			fmt.Sprintf("approval %s belongs to a different session", in.CallID))
	}

	// 3. Reject feeds the refusal back as the tool result and lets the
	//    model react to it.
	if resolved.Decision == models.DecisionReject {
		content := "Tool call rejected by the user."
		if resolved.Feedback != "" {
			content = fmt.Sprintf("Tool call rejected by the user: %s", resolved.Feedback)
		}
		if _, err := s.sessions.AddMessage(ctx, models.AddMessageRequest{
			SessionID:  in.SessionID,
			Role:       message.RoleTool,
			Content:    content,
			ToolCallID: resolved.CallID,
			ToolName:   resolved.ToolName,
		}); err != nil {
			return err
		}

		waiting, err := s.unansweredCalls(ctx, in.SessionID)
		if err != nil {
			return err
		}
		if len(waiting) > 0 {
			st.send(&DoneChunk{})
			return nil
		}
		return s.runTurn(ctx, st, in.SessionID)
	}

	// 4. Approve and edit release the call for client-side execution
	//    with the final arguments. Nothing was written, so bump session
	//    activity explicitly.
	agentName := s.currentAgentName(ctx, in.SessionID)
	s.bus.PublishToolCallEmitted(ctx, in.SessionID, events.ToolCallEmittedPayload{
		CallID:   resolved.CallID,
		ToolName: resolved.ToolName,
		Agent:    agentName,
	})
	st.send(&ToolCallChunk{
		CallID:    resolved.CallID,
		ToolName:  resolved.ToolName,
		Arguments: resolved.Arguments,
	})
	return s.sessions.Touch(ctx, in.SessionID)
}

func (s *Service) processSwitchAgent(ctx context.Context, st *stream, in SwitchInput) error {
	// 1. The session must exist and be active.
	if _, err := s.sessions.GetSession(ctx, in.SessionID, false); err != nil {
		return err
	}

	// 2. Validate the target against the deployment roster.
	target, err := agent.ParseType(in.Agent)
	if err != nil {
		return services.NewValidationError("agent", err.Error())
	}
	if !s.registry.Has(target) {
		return services.NewValidationError("agent",
			fmt.Sprintf("agent %q is not available in %s mode", target, s.registry.Mode()))
	}

	cur, err := s.contexts.CurrentAgent(ctx, in.SessionID)
	if err != nil {
		return err
	}

	// 3. Same-agent switches are a no-op; nothing is recorded, but an
	//    accompanying message still starts a turn.
	if string(cur) == string(target) {
		if in.Content != "" {
			return s.startTurn(ctx, st, in.SessionID, in.Content)
		}
		st.send(&DoneChunk{})
		return nil
	}

	reason := in.Reason
	if reason == "" {
		reason = "requested by client"
	}
	if err := s.switchAgent(ctx, in.SessionID, target, reason); err != nil {
		return err
	}

	if !st.send(&SwitchAgentChunk{FromAgent: string(cur), ToAgent: string(target), Reason: reason}) {
		return ctx.Err()
	}

	// 4. A message handed over with the switch is the new agent's first
	//    turn; without one the switch stands alone.
	if in.Content != "" {
		return s.startTurn(ctx, st, in.SessionID, in.Content)
	}
	st.send(&DoneChunk{})
	return nil
}

// applyAgentOverride pins the session to the requested agent, switching
// and announcing only when it differs from the current one.
func (s *Service) applyAgentOverride(ctx context.Context, st *stream, sessionID, agentName string) error {
	target, err := agent.ParseType(agentName)
	if err != nil {
		return services.NewValidationError("agent", err.Error())
	}
	if !s.registry.Has(target) {
		return services.NewValidationError("agent",
			fmt.Sprintf("agent %q is not available in %s mode", target, s.registry.Mode()))
	}

	cur, err := s.contexts.CurrentAgent(ctx, sessionID)
	if err != nil {
		return err
	}
	if string(cur) == string(target) {
		return nil
	}

	const reason = "requested by client"
	if err := s.switchAgent(ctx, sessionID, target, reason); err != nil {
		return err
	}
	st.send(&SwitchAgentChunk{FromAgent: string(cur), ToAgent: string(target), Reason: reason})
	return nil
}

// currentAgentName resolves the current agent purely for event
// annotation; failures degrade to an empty name rather than aborting.
func (s *Service) currentAgentName(ctx context.Context, sessionID string) string {
	cur, err := s.contexts.CurrentAgent(ctx, sessionID)
	if err != nil {
		return ""
	}
	return string(cur)
}

// ─────────────────────────────────────────────────────────────────────
// Stream plumbing.
// ─────────────────────────────────────────────────────────────────────

// stream delivers chunks to the client while honoring cancellation: a
// disconnected client stops the producing side instead of blocking it.
type stream struct {
	ctx context.Context
	ch  chan Chunk
}

// send delivers one chunk; it reports false when the caller is gone.
func (st *stream) send(c Chunk) bool {
	select {
	case st.ch <- c:
		return true
	case <-st.ctx.Done():
		return false
	}
}

// fail translates an error into a final error chunk. Details pass
// through the masker so provider error bodies cannot leak credentials.
func (s *Service) fail(st *stream, err error) {
	chunk := classifyError(err)
	if s.masker != nil {
		chunk.Detail = s.masker.Mask(chunk.Detail)
	}
	if chunk.Kind == ErrorKindInternal {
		s.logger.Error("orchestration call failed", "error", err)
	} else {
		s.logger.Warn("orchestration call ended with an error", "kind", chunk.Kind, "error", err)
	}
	st.send(chunk)
}
