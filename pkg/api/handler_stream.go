package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/switchyard-ai/switchyard/pkg/models"
	"github.com/switchyard-ai/switchyard/pkg/orchestrator"
)

// newSessionPrefix marks a client-supplied placeholder ID: the server
// mints a real UUID and announces it in the first session_info chunk.
const newSessionPrefix = "new_"

// streamRequest is the envelope posted to POST /api/v1/messages/stream.
// Message is decoded twice: once for its type, once for the
// type-specific body.
type streamRequest struct {
	SessionID string          `json:"session_id"`
	Message   json.RawMessage `json:"message"`
}

type userMessageBody struct {
	Content   string         `json:"content"`
	AgentType string         `json:"agent_type,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type toolResultBody struct {
	CallID   string          `json:"call_id"`
	ToolName string          `json:"tool_name"`
	Result   json.RawMessage `json:"result"`
}

type hitlDecisionBody struct {
	CallID            string          `json:"call_id"`
	Decision          models.Decision `json:"decision"`
	Feedback          string          `json:"feedback,omitempty"`
	ModifiedArguments map[string]any  `json:"modified_arguments,omitempty"`
}

type switchAgentBody struct {
	AgentType string `json:"agent_type"`
	Content   string `json:"content,omitempty"`
}

// streamHandler handles POST /api/v1/messages/stream. Validation happens
// before the stream opens so malformed requests get a plain JSON 400;
// everything after the first byte is SSE.
func (s *Server) streamHandler(c *gin.Context) {
	// 1. Bind the envelope and pick the message variant.
	var req streamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("validation", "invalid request body: "+err.Error()))
		return
	}
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(req.Message, &envelope); err != nil || envelope.Type == "" {
		c.JSON(http.StatusBadRequest, newErrorResponse("validation", "message.type is required"))
		return
	}

	// 2. Resolve the session ID. Only user_message may mint a new
	//    session; every other variant addresses an existing one.
	sessionID := req.SessionID
	isNew := sessionID == "" || strings.HasPrefix(sessionID, newSessionPrefix)
	if isNew {
		if envelope.Type != "user_message" {
			c.JSON(http.StatusBadRequest, newErrorResponse("validation",
				"session_id must reference an existing session for message type "+envelope.Type))
			return
		}
		sessionID = uuid.NewString()
	}

	// 3. Decode the body and start the orchestration. The request
	//    context cancels the stream when the client goes away.
	ctx := c.Request.Context()
	var chunks <-chan orchestrator.Chunk
	switch envelope.Type {
	case "user_message":
		var body userMessageBody
		if err := json.Unmarshal(req.Message, &body); err != nil {
			c.JSON(http.StatusBadRequest, newErrorResponse("validation", "invalid user_message body: "+err.Error()))
			return
		}
		if body.Content == "" {
			c.JSON(http.StatusBadRequest, newErrorResponse("validation", "content is required"))
			return
		}
		chunks = s.orch.ProcessMessage(ctx, orchestrator.MessageInput{
			SessionID: sessionID,
			UserID:    userID(c),
			Content:   body.Content,
			Agent:     body.AgentType,
			Metadata:  body.Metadata,
		})

	case "tool_result":
		var body toolResultBody
		if err := json.Unmarshal(req.Message, &body); err != nil {
			c.JSON(http.StatusBadRequest, newErrorResponse("validation", "invalid tool_result body: "+err.Error()))
			return
		}
		if body.CallID == "" || body.ToolName == "" {
			c.JSON(http.StatusBadRequest, newErrorResponse("validation", "call_id and tool_name are required"))
			return
		}
		chunks = s.orch.ProcessToolResult(ctx, orchestrator.ToolResultInput{
			SessionID: sessionID,
			CallID:    body.CallID,
			ToolName:  body.ToolName,
			Result:    toolResultString(body.Result),
		})

	case "hitl_decision":
		var body hitlDecisionBody
		if err := json.Unmarshal(req.Message, &body); err != nil {
			c.JSON(http.StatusBadRequest, newErrorResponse("validation", "invalid hitl_decision body: "+err.Error()))
			return
		}
		if body.CallID == "" {
			c.JSON(http.StatusBadRequest, newErrorResponse("validation", "call_id is required"))
			return
		}
		if !body.Decision.Valid() {
			c.JSON(http.StatusBadRequest, newErrorResponse("validation", "decision must be approve, reject, or edit"))
			return
		}
		chunks = s.orch.ProcessHITLDecision(ctx, orchestrator.HITLDecisionInput{
			SessionID:         sessionID,
			CallID:            body.CallID,
			Decision:          body.Decision,
			Feedback:          body.Feedback,
			ModifiedArguments: body.ModifiedArguments,
		})

	case "switch_agent":
		var body switchAgentBody
		if err := json.Unmarshal(req.Message, &body); err != nil {
			c.JSON(http.StatusBadRequest, newErrorResponse("validation", "invalid switch_agent body: "+err.Error()))
			return
		}
		if body.AgentType == "" {
			c.JSON(http.StatusBadRequest, newErrorResponse("validation", "agent_type is required"))
			return
		}
		chunks = s.orch.ProcessSwitchAgent(ctx, orchestrator.SwitchInput{
			SessionID: sessionID,
			Agent:     body.AgentType,
			Content:   body.Content,
		})

	default:
		c.JSON(http.StatusBadRequest, newErrorResponse("validation", "unknown message type "+envelope.Type))
		return
	}

	// 4. Relay chunks as SSE frames, flushing each one so clients see
	//    tokens as they arrive. The channel closes when the turn is
	//    done, failed, or canceled; the lock is released by then.
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	// Returning cancels the request context, which stops the producer,
	// so breaking out early cannot leak the orchestration goroutine.
	for chunk := range chunks {
		if err := sse.Encode(c.Writer, sse.Event{Data: chunk}); err != nil {
			s.logger.Warn("SSE write failed, closing stream",
				"request_id", requestIDFrom(c), "error", err)
			break
		}
		c.Writer.Flush()
	}
}

// toolResultString accepts both wire forms of a tool result: a plain
// string or a JSON object, which is passed through verbatim.
func toolResultString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
