package events

import (
	"context"
	"sync"
	"time"
)

// SessionMetrics is the per-session rollup maintained by
// SessionMetricsCollector.
type SessionMetrics struct {
	SessionID        string    `json:"session_id"`
	Messages         int64     `json:"messages"`
	AgentSwitches    int64     `json:"agent_switches"`
	ToolCalls        int64     `json:"tool_calls"`
	HITLRequested    int64     `json:"hitl_requested"`
	HITLDecided      int64     `json:"hitl_decided"`
	LLMRequests      int64     `json:"llm_requests"`
	LLMFailures      int64     `json:"llm_failures"`
	PromptTokens     int64     `json:"prompt_tokens"`
	CompletionTokens int64     `json:"completion_tokens"`
	TotalTokens      int64     `json:"total_tokens"`
	LastEventAt      time.Time `json:"last_event_at"`
}

// SessionMetricsCollector keeps one rollup per session, updated from the
// event stream. Entries are removed by the cleanup task when their session
// is purged, which bounds memory.
type SessionMetricsCollector struct {
	mu       sync.RWMutex
	sessions map[string]*SessionMetrics
}

// NewSessionMetricsCollector returns an empty collector.
func NewSessionMetricsCollector() *SessionMetricsCollector {
	return &SessionMetricsCollector{
		sessions: make(map[string]*SessionMetrics),
	}
}

// Name implements Handler.
func (s *SessionMetricsCollector) Name() string { return "session_metrics_collector" }

// HandleEvent implements Handler.
func (s *SessionMetricsCollector) HandleEvent(_ context.Context, evt Event) error {
	if evt.SessionID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sm, ok := s.sessions[evt.SessionID]
	if !ok {
		sm = &SessionMetrics{SessionID: evt.SessionID}
		s.sessions[evt.SessionID] = sm
	}
	sm.LastEventAt = evt.Timestamp

	switch evt.Type {
	case EventMessageAppended:
		sm.Messages++
	case EventAgentSwitched:
		sm.AgentSwitches++
	case EventToolCallEmitted:
		sm.ToolCalls++
	case EventHITLRequested:
		sm.HITLRequested++
	case EventHITLDecided:
		sm.HITLDecided++
	case EventLLMRequestStarted:
		sm.LLMRequests++
	case EventLLMRequestCompleted:
		if p, ok := evt.Payload.(LLMRequestCompletedPayload); ok {
			sm.PromptTokens += int64(p.PromptTokens)
			sm.CompletionTokens += int64(p.CompletionTokens)
			sm.TotalTokens += int64(p.TotalTokens)
		}
	case EventLLMRequestFailed:
		sm.LLMFailures++
	}
	return nil
}

// Snapshot returns a copy of one session's rollup, or false when the
// session has produced no events.
func (s *SessionMetricsCollector) Snapshot(sessionID string) (SessionMetrics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sm, ok := s.sessions[sessionID]
	if !ok {
		return SessionMetrics{}, false
	}
	return *sm, true
}

// RemoveSession drops the rollup for a purged session.
func (s *SessionMetricsCollector) RemoveSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// TrackedSessions returns how many sessions currently have a rollup.
func (s *SessionMetricsCollector) TrackedSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
