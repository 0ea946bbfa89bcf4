package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAgentsHandler(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/agents", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AgentListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "multi", resp.Mode)
	require.Len(t, resp.Agents, 6)

	// Stable alphabetical order.
	var types []string
	for _, a := range resp.Agents {
		types = append(types, a.Type)
	}
	assert.Equal(t, []string{"architect", "ask", "coder", "debug", "orchestrator", "universal"}, types)

	for _, a := range resp.Agents {
		assert.NotEmpty(t, a.DisplayName, a.Type)
		assert.NotEmpty(t, a.AllowedTools, a.Type)
	}
}

func TestCurrentAgentHandler(t *testing.T) {
	ts := newTestServer(t)
	id := ts.newSession(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/agents/"+id+"/current", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CurrentAgentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.SessionID)
	assert.Equal(t, "orchestrator", resp.CurrentAgent)

	rec = ts.do(t, http.MethodGet, "/api/v1/agents/missing/current", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwitchAgentHandler(t *testing.T) {
	ts := newTestServer(t)
	id := ts.newSession(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/agents/"+id+"/switch", SwitchAgentRequest{
		AgentType: "coder",
		Reason:    "implementation time",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SwitchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "orchestrator", resp.FromAgent)
	assert.Equal(t, "coder", resp.ToAgent)
	assert.Equal(t, "implementation time", resp.Reason)

	// The session now reports the new assignment.
	rec = ts.do(t, http.MethodGet, "/api/v1/agents/"+id+"/current", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cur CurrentAgentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cur))
	assert.Equal(t, "coder", cur.CurrentAgent)
}

func TestSwitchAgentHandler_SameAgentIsIdempotent(t *testing.T) {
	ts := newTestServer(t)
	id := ts.newSession(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/agents/"+id+"/switch", SwitchAgentRequest{
		AgentType: "orchestrator",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SwitchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, resp.FromAgent, resp.ToAgent)
}

func TestSwitchAgentHandler_Validation(t *testing.T) {
	ts := newTestServer(t)
	id := ts.newSession(t)

	tests := []struct {
		name     string
		body     any
		wantCode int
		wantKind string
	}{
		{
			name:     "missing agent_type",
			body:     gin.H{},
			wantCode: http.StatusBadRequest,
			wantKind: "validation",
		},
		{
			name:     "unknown agent",
			body:     SwitchAgentRequest{AgentType: "manager"},
			wantCode: http.StatusBadRequest,
			wantKind: "validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/v1/agents/"+id+"/switch", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantKind, errorKind(t, rec))
		})
	}

	t.Run("missing session", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/v1/agents/no-such/switch", SwitchAgentRequest{
			AgentType: "coder",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
