package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/switchyard-ai/switchyard/pkg/orchestrator"
)

// SwitchAgentRequest is the HTTP request body for
// POST /api/v1/agents/:session_id/switch.
type SwitchAgentRequest struct {
	AgentType string `json:"agent_type"`
	Reason    string `json:"reason,omitempty"`
}

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *gin.Context) {
	defs := s.registry.List()
	agents := make([]AgentInfo, 0, len(defs))
	for _, d := range defs {
		agents = append(agents, AgentInfo{
			Type:         string(d.Type),
			DisplayName:  d.DisplayName,
			Description:  d.Description,
			AllowedTools: d.AllowedTools,
		})
	}

	c.JSON(http.StatusOK, &AgentListResponse{
		Mode:   string(s.registry.Mode()),
		Agents: agents,
	})
}

// currentAgentHandler handles GET /api/v1/agents/:session_id/current.
func (s *Server) currentAgentHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	if _, ok := s.requireSession(c, sessionID); !ok {
		return
	}

	cur, err := s.contexts.CurrentAgent(c.Request.Context(), sessionID)
	if err != nil {
		status, resp := mapServiceError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, &CurrentAgentResponse{
		SessionID:    sessionID,
		CurrentAgent: string(cur),
	})
}

// switchAgentHandler handles POST /api/v1/agents/:session_id/switch.
// Unlike the streaming variant this is a pure control operation: it uses
// the short admin lock deadline and never starts a turn.
func (s *Server) switchAgentHandler(c *gin.Context) {
	// 1. Validate the target session and body.
	sessionID := c.Param("session_id")
	if _, ok := s.requireSession(c, sessionID); !ok {
		return
	}

	var req SwitchAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("validation", "invalid request body: "+err.Error()))
		return
	}
	if req.AgentType == "" {
		c.JSON(http.StatusBadRequest, newErrorResponse("validation", "agent_type is required"))
		return
	}

	// 2. Run the switch behind the session lock and drain the stream.
	var (
		switched *orchestrator.SwitchAgentChunk
		failed   *orchestrator.ErrorChunk
	)
	for chunk := range s.admin.ProcessSwitchAgent(c.Request.Context(), orchestrator.SwitchInput{
		SessionID: sessionID,
		Agent:     req.AgentType,
		Reason:    req.Reason,
	}) {
		switch v := chunk.(type) {
		case *orchestrator.SwitchAgentChunk:
			switched = v
		case *orchestrator.ErrorChunk:
			failed = v
		}
	}

	// 3. Map the outcome onto plain HTTP.
	if failed != nil {
		status, resp := mapChunkError(failed)
		c.JSON(status, resp)
		return
	}
	if switched == nil {
		// Same-agent no-op: report the unchanged assignment.
		cur, err := s.contexts.CurrentAgent(c.Request.Context(), sessionID)
		if err != nil {
			status, resp := mapServiceError(err)
			c.JSON(status, resp)
			return
		}
		c.JSON(http.StatusOK, &SwitchResponse{
			SessionID: sessionID,
			FromAgent: string(cur),
			ToAgent:   string(cur),
			Reason:    req.Reason,
		})
		return
	}

	c.JSON(http.StatusOK, &SwitchResponse{
		SessionID: sessionID,
		FromAgent: switched.FromAgent,
		ToAgent:   switched.ToAgent,
		Reason:    switched.Reason,
	})
}
