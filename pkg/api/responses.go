package api

import (
	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/pkg/database"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/services"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                    `json:"status"`
	Version  string                    `json:"version"`
	Database *database.HealthStatus    `json:"database"`
	EventBus *events.BusStats          `json:"event_bus,omitempty"`
	Warnings []*services.SystemWarning `json:"warnings,omitempty"`
}

// SessionDetailResponse is returned by GET /api/v1/sessions/:id. Messages
// are present only when include_messages=true was requested.
type SessionDetailResponse struct {
	Session          *ent.Session           `json:"session"`
	CurrentAgent     string                 `json:"current_agent"`
	PendingApprovals []*ent.PendingApproval `json:"pending_approvals"`
	Messages         []*ent.Message         `json:"messages,omitempty"`
}

// DeleteSessionResponse is returned by DELETE /api/v1/sessions/:id.
type DeleteSessionResponse struct {
	SessionID string `json:"session_id"`
	Hard      bool   `json:"hard"`
	Message   string `json:"message"`
}

// AgentInfo describes one agent from the deployment roster.
type AgentInfo struct {
	Type         string   `json:"type"`
	DisplayName  string   `json:"display_name"`
	Description  string   `json:"description"`
	AllowedTools []string `json:"allowed_tools"`
}

// AgentListResponse is returned by GET /api/v1/agents.
type AgentListResponse struct {
	Mode   string      `json:"mode"`
	Agents []AgentInfo `json:"agents"`
}

// CurrentAgentResponse is returned by GET /api/v1/agents/:session_id/current.
type CurrentAgentResponse struct {
	SessionID    string `json:"session_id"`
	CurrentAgent string `json:"current_agent"`
}

// SwitchResponse is returned by POST /api/v1/agents/:session_id/switch.
type SwitchResponse struct {
	SessionID string `json:"session_id"`
	FromAgent string `json:"from_agent"`
	ToAgent   string `json:"to_agent"`
	Reason    string `json:"reason"`
}
