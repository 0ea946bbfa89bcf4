package events

import (
	"context"
	"sync"
)

// MetricsCollector aggregates system-wide counters from the event stream.
// It subscribes to every event type and backs the /api/v1/events/metrics
// endpoint. All methods are safe for concurrent use.
type MetricsCollector struct {
	mu sync.RWMutex

	eventsByType map[EventType]int64

	sessionsCreated  int64
	messagesAppended int64
	agentSwitches    int64
	toolCalls        int64
	toolResults      int64
	hitlRequested    int64
	hitlDecided      int64

	llmRequests      int64
	llmCompletions   int64
	llmFailures      int64
	promptTokens     int64
	completionTokens int64
	totalTokens      int64
	llmDurationMS    int64
}

// NewMetricsCollector returns an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		eventsByType: make(map[EventType]int64, len(AllEventTypes)),
	}
}

// Name implements Handler.
func (m *MetricsCollector) Name() string { return "metrics_collector" }

// HandleEvent implements Handler.
func (m *MetricsCollector) HandleEvent(_ context.Context, evt Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.eventsByType[evt.Type]++

	switch evt.Type {
	case EventSessionCreated:
		m.sessionsCreated++
	case EventMessageAppended:
		m.messagesAppended++
	case EventAgentSwitched:
		m.agentSwitches++
	case EventToolCallEmitted:
		m.toolCalls++
	case EventToolResultReceived:
		m.toolResults++
	case EventHITLRequested:
		m.hitlRequested++
	case EventHITLDecided:
		m.hitlDecided++
	case EventLLMRequestStarted:
		m.llmRequests++
	case EventLLMRequestCompleted:
		m.llmCompletions++
		if p, ok := evt.Payload.(LLMRequestCompletedPayload); ok {
			m.promptTokens += int64(p.PromptTokens)
			m.completionTokens += int64(p.CompletionTokens)
			m.totalTokens += int64(p.TotalTokens)
			m.llmDurationMS += p.DurationMS
		}
	case EventLLMRequestFailed:
		m.llmFailures++
	}
	return nil
}

// MetricsSnapshot is the JSON shape served by the metrics endpoint.
type MetricsSnapshot struct {
	EventsByType map[string]int64 `json:"events_by_type"`

	SessionsCreated  int64 `json:"sessions_created"`
	MessagesAppended int64 `json:"messages_appended"`
	AgentSwitches    int64 `json:"agent_switches"`
	ToolCalls        int64 `json:"tool_calls"`
	ToolResults      int64 `json:"tool_results"`
	HITLRequested    int64 `json:"hitl_requested"`
	HITLDecided      int64 `json:"hitl_decided"`

	LLMRequests      int64 `json:"llm_requests"`
	LLMCompletions   int64 `json:"llm_completions"`
	LLMFailures      int64 `json:"llm_failures"`
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
	LLMDurationMS    int64 `json:"llm_duration_ms"`
}

// Snapshot returns a copy of the current counters.
func (m *MetricsCollector) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byType := make(map[string]int64, len(m.eventsByType))
	for et, n := range m.eventsByType {
		byType[string(et)] = n
	}
	return MetricsSnapshot{
		EventsByType:     byType,
		SessionsCreated:  m.sessionsCreated,
		MessagesAppended: m.messagesAppended,
		AgentSwitches:    m.agentSwitches,
		ToolCalls:        m.toolCalls,
		ToolResults:      m.toolResults,
		HITLRequested:    m.hitlRequested,
		HITLDecided:      m.hitlDecided,
		LLMRequests:      m.llmRequests,
		LLMCompletions:   m.llmCompletions,
		LLMFailures:      m.llmFailures,
		PromptTokens:     m.promptTokens,
		CompletionTokens: m.completionTokens,
		TotalTokens:      m.totalTokens,
		LLMDurationMS:    m.llmDurationMS,
	}
}
