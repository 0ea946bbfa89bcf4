package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/pkg/agent"
	"github.com/switchyard-ai/switchyard/pkg/config"
	"github.com/switchyard-ai/switchyard/pkg/database"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/llm"
	"github.com/switchyard-ai/switchyard/pkg/locks"
	"github.com/switchyard-ai/switchyard/pkg/orchestrator"
	"github.com/switchyard-ai/switchyard/pkg/services"
	testdb "github.com/switchyard-ai/switchyard/test/database"
)

const testUserID = "dev-user"

var testUsage = &llm.Usage{PromptTokens: 9, CompletionTokens: 4, TotalTokens: 13}

// testServer is the full HTTP stack on a per-test database schema. Auth
// is disabled, so every request runs as testUserID.
type testServer struct {
	db             *database.Client
	llm            *llm.ScriptedClient
	sessions       *services.SessionService
	contexts       *services.ContextService
	approvals      *services.ApprovalService
	metrics        *events.MetricsCollector
	sessionMetrics *events.SessionMetricsCollector
	warnings       *services.SystemWarningsService
	server         *Server
}

func newTestServer(t *testing.T, scripts ...[]llm.Chunk) *testServer {
	t.Helper()

	cfg := config.Default()
	cfg.Auth.DevUserID = testUserID
	cfg.RateLimit.Enabled = false

	db := testdb.NewTestClient(t)

	bus := events.NewBus(nil)
	metrics := events.NewMetricsCollector()
	sessionMetrics := events.NewSessionMetricsCollector()
	require.NoError(t, bus.SubscribeAll(metrics, 10))
	require.NoError(t, bus.SubscribeAll(sessionMetrics, 20))
	bus.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = bus.Stop(ctx)
	})

	registry, err := agent.NewRegistry(agent.ModeMulti)
	require.NoError(t, err)

	manager := locks.NewManager(nil)
	t.Cleanup(manager.Stop)

	ts := &testServer{
		db:             db,
		llm:            llm.NewScriptedClient(scripts...),
		sessions:       services.NewSessionService(db.Client, bus),
		contexts:       services.NewContextService(db.Client, bus),
		approvals:      services.NewApprovalService(db.Client, bus, nil),
		metrics:        metrics,
		sessionMetrics: sessionMetrics,
		warnings:       services.NewSystemWarningsService(),
	}

	orch := orchestrator.New(orchestrator.Deps{
		Locks:     manager,
		Sessions:  ts.sessions,
		Contexts:  ts.contexts,
		Approvals: ts.approvals,
		Registry:  registry,
		LLM:       llm.NewInstrumentedClient(ts.llm, bus),
		Bus:       bus,
	}, orchestrator.Config{Model: "test-model"})

	auth, err := NewAuthenticator(context.Background(), cfg.Auth, nil)
	require.NoError(t, err)

	ts.server = NewServer(Deps{
		DB:             db,
		Sessions:       ts.sessions,
		Contexts:       ts.contexts,
		Approvals:      ts.approvals,
		Registry:       registry,
		Orchestrator:   orch,
		Metrics:        metrics,
		SessionMetrics: sessionMetrics,
		Bus:            bus,
		Warnings:       ts.warnings,
		Auth:           auth,
	}, *cfg)
	return ts
}

// do performs one JSON request against the in-process router.
func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ts.server.Handler().ServeHTTP(rec, req)
	return rec
}

// newSession creates a session through the API and returns its ID.
func (ts *testServer) newSession(t *testing.T) string {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/v1/sessions", CreateSessionRequest{})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var sess struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	require.NotEmpty(t, sess.ID)
	return sess.ID
}

// errorKind extracts the error envelope kind from a failed response.
func errorKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Error.Kind
}

// wireChunk is the superset of all chunk fields as they appear on the
// wire, keyed by the type discriminator.
type wireChunk struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Content   string         `json:"content"`
	IsFinal   bool           `json:"is_final"`
	CallID    string         `json:"call_id"`
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
	FromAgent string         `json:"from_agent"`
	ToAgent   string         `json:"to_agent"`
	Reason    string         `json:"reason"`
	Kind      string         `json:"kind"`
	Detail    string         `json:"detail"`
}

// decodeSSE parses an event-stream body into its chunks.
func decodeSSE(t *testing.T, body string) []wireChunk {
	t.Helper()

	var out []wireChunk
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" {
			continue
		}
		var c wireChunk
		require.NoError(t, json.Unmarshal([]byte(payload), &c), payload)
		out = append(out, c)
	}
	return out
}

// stream posts to the streaming endpoint and returns the decoded chunks.
func (ts *testServer) stream(t *testing.T, sessionID string, message any) (int, []wireChunk) {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/v1/messages/stream", gin.H{
		"session_id": sessionID,
		"message":    message,
	})
	if rec.Code != http.StatusOK {
		return rec.Code, nil
	}
	require.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
	return rec.Code, decodeSSE(t, rec.Body.String())
}

func chunkTypes(chunks []wireChunk) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Type
	}
	return out
}
