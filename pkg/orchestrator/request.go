package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/pkg/agent"
	"github.com/switchyard-ai/switchyard/pkg/llm"
	"github.com/switchyard-ai/switchyard/pkg/models"
)

// buildRequest assembles the model request for one round-trip: the
// agent's system prompt, the windowed history, and the agent's tools.
func (s *Service) buildRequest(ctx context.Context, sessionID string, def *agent.Definition) (*llm.Request, error) {
	history, err := s.sessions.GetHistory(ctx, sessionID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, err
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: "system", Content: def.SystemPrompt})
	messages = append(messages, renderHistory(history)...)

	return &llm.Request{
		Model:       s.cfg.Model,
		Messages:    messages,
		Tools:       def.ToolDefinitions(),
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
		SessionID:   sessionID,
		Agent:       string(def.Type),
	}, nil
}

// renderHistory converts stored messages into the wire conversation.
// Providers enforce strict call/result pairing, so three repairs are
// applied to whatever the window contains:
//
//   - switch_mode calls become plain assistant text; they are routing
//     metadata and never have results
//   - assistant tool calls with no result anywhere later in the window
//     are folded into text the same way (the call was abandoned or its
//     result fell outside the window)
//   - tool results whose assistant message is not in the window are
//     dropped
func renderHistory(history []*ent.Message) []llm.Message {
	answered := make(map[string]bool)
	for _, m := range history {
		if m.Role == message.RoleTool && m.ToolCallID != nil {
			answered[*m.ToolCallID] = true
		}
	}

	kept := make(map[string]bool)
	out := make([]llm.Message, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case message.RoleAssistant:
			out = append(out, renderAssistant(m, answered, kept))
		case message.RoleTool:
			if m.ToolCallID == nil || !kept[*m.ToolCallID] {
				continue
			}
			lm := llm.Message{Role: "tool", Content: m.Content, ToolCallID: *m.ToolCallID}
			if m.ToolName != nil {
				lm.ToolName = *m.ToolName
			}
			out = append(out, lm)
		default:
			out = append(out, llm.Message{Role: string(m.Role), Content: m.Content})
		}
	}
	return out
}

// renderAssistant maps one stored assistant message to the wire,
// keeping answered tool calls verbatim and folding the rest into text.
// Calls that survive are recorded in kept so their results survive too.
func renderAssistant(m *ent.Message, answered, kept map[string]bool) llm.Message {
	lm := llm.Message{Role: "assistant", Content: m.Content}

	var notes []string
	for _, tc := range models.ToolCallsFromJSON(m.ToolCalls) {
		switch {
		case tc.Name == agent.ToolSwitchMode:
			notes = append(notes, switchNote(tc.Arguments))
		case answered[tc.ID]:
			lm.ToolCalls = append(lm.ToolCalls, llm.ToolCall{ID: tc.ID, Name: tc.Name, Arguments: tc.Arguments})
			kept[tc.ID] = true
		default:
			notes = append(notes, fmt.Sprintf("[requested tool %s; no result was recorded]", tc.Name))
		}
	}

	if len(notes) > 0 {
		joined := strings.Join(notes, "\n")
		if lm.Content == "" {
			lm.Content = joined
		} else {
			lm.Content += "\n" + joined
		}
	}
	return lm
}

// switchNote renders a switch_mode call as assistant text.
func switchNote(arguments string) string {
	var args struct {
		Mode   string `json:"mode"`
		Reason string `json:"reason"`
	}
	if arguments != "" {
		_ = json.Unmarshal([]byte(arguments), &args)
	}
	switch {
	case args.Mode == "":
		return "[requested an agent switch]"
	case args.Reason == "":
		return fmt.Sprintf("[switched to the %s agent]", args.Mode)
	default:
		return fmt.Sprintf("[switched to the %s agent: %s]", args.Mode, args.Reason)
	}
}
