package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/pkg/agent"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/llm"
	"github.com/switchyard-ai/switchyard/pkg/models"
)

// stepOutcome tells the turn loop whether to make another model
// round-trip with the updated history.
type stepOutcome struct {
	reenter bool
}

// runTurn drives model round-trips until the turn reaches a halting
// state: a final text answer, a tool call waiting for its result or
// approval, a specialist agent switch, or an error.
func (s *Service) runTurn(ctx context.Context, st *stream, sessionID string) error {
	for turn := 0; turn < s.cfg.MaxTurns; turn++ {
		// 1. Resolve the agent currently holding the session. A switch
		//    in the previous round-trip changes what runs here.
		cur, err := s.contexts.CurrentAgent(ctx, sessionID)
		if err != nil {
			return err
		}
		agentType := agent.Type(cur)

		// 2. In single-agent deployments the orchestrator never reaches
		//    the model; the session is handed to the universal agent
		//    directly.
		if agentType == agent.TypeOrchestrator && s.registry.Mode() == agent.ModeSingle {
			const reason = "single-agent deployment"
			if err := s.switchAgent(ctx, sessionID, agent.TypeUniversal, reason); err != nil {
				return err
			}
			if !st.send(&SwitchAgentChunk{
				FromAgent: string(agent.TypeOrchestrator),
				ToAgent:   string(agent.TypeUniversal),
				Reason:    reason,
			}) {
				return ctx.Err()
			}
			continue
		}

		def, err := s.registry.Get(agentType)
		if err != nil {
			return err
		}

		// 3. One model round-trip.
		outcome, err := s.step(ctx, st, sessionID, def)
		if err != nil {
			return err
		}
		if !outcome.reenter {
			return nil
		}
	}
	return &maxTurnsError{limit: s.cfg.MaxTurns}
}

// step performs one model round-trip for the given agent: build the
// prompt, stream the response, and act on how the model finished.
func (s *Service) step(ctx context.Context, st *stream, sessionID string, def *agent.Definition) (stepOutcome, error) {
	// 1. Build the request from the stored history window.
	req, err := s.buildRequest(ctx, sessionID, def)
	if err != nil {
		return stepOutcome{}, err
	}

	// 2. Open the model stream. Connection failures (including an open
	//    circuit breaker) surface here before anything was streamed.
	chunks, err := s.llm.Stream(ctx, req)
	if err != nil {
		return stepOutcome{}, err
	}

	// 3. Forward text deltas live while reassembling the response.
	acc := llm.NewAccumulator()
	for chunk := range chunks {
		acc.Add(chunk)
		if text, ok := chunk.(*llm.TextChunk); ok && text.Content != "" {
			if !st.send(&AssistantMessageChunk{Content: text.Content}) {
				return stepOutcome{}, ctx.Err()
			}
		}
	}

	// 4. Act on the finish reason.
	switch acc.Reason() {
	case llm.FinishStop, llm.FinishLength:
		return stepOutcome{}, s.finishText(ctx, st, sessionID, acc)
	case llm.FinishToolCalls:
		return s.finishToolCalls(ctx, st, sessionID, def, acc)
	case llm.FinishError:
		return stepOutcome{}, acc.Err()
	default:
		if ctx.Err() != nil {
			return stepOutcome{}, ctx.Err()
		}
		return stepOutcome{}, fmt.Errorf("model stream ended without a finish reason")
	}
}

// finishText persists the completed assistant answer and closes the
// turn. Length-truncated answers keep what arrived, marked as such.
func (s *Service) finishText(ctx context.Context, st *stream, sessionID string, acc *llm.Accumulator) error {
	req := models.AddMessageRequest{
		SessionID: sessionID,
		Role:      message.RoleAssistant,
		Content:   acc.Text(),
	}
	if usage := acc.Usage(); usage != nil {
		tokens := usage.CompletionTokens
		req.TokenCount = &tokens
	}
	if acc.Reason() == llm.FinishLength {
		req.Metadata = map[string]any{"truncated": true}
	}
	if _, err := s.sessions.AddMessage(ctx, req); err != nil {
		return err
	}

	st.send(&AssistantMessageChunk{IsFinal: true})
	st.send(&DoneChunk{})
	return nil
}

// finishToolCalls persists the assistant message carrying the calls and
// routes each call through the gate, the approval check, and finally to
// the client. switch_mode is routing rather than execution and is
// honored only as the sole call of a response.
func (s *Service) finishToolCalls(ctx context.Context, st *stream, sessionID string, def *agent.Definition, acc *llm.Accumulator) (stepOutcome, error) {
	calls := acc.ToolCalls()
	if len(calls) == 0 {
		return stepOutcome{}, fmt.Errorf("model reported tool calls but none were received")
	}

	if len(calls) == 1 && calls[0].Name == agent.ToolSwitchMode {
		return s.handleSwitchCall(ctx, st, sessionID, def, calls[0], acc)
	}

	// 1. Persist the assistant message carrying every call the model
	//    made, so later turns see exactly what it asked for.
	if err := s.appendAssistantCalls(ctx, sessionID, acc, calls); err != nil {
		return stepOutcome{}, err
	}

	// 2. Gate and dispatch each call. switch_mode mixed into a batch is
	//    rejected outright: routing cannot ride along with execution,
	//    whatever the agent's allow-list says.
	emitted := 0
	for _, call := range calls {
		gateErr := agent.CheckToolCall(def, call.Name, call.Arguments)
		if call.Name == agent.ToolSwitchMode {
			gateErr = &agent.GateError{
				Agent:  def.Type,
				Tool:   call.Name,
				Reason: "switch_mode must be the only call in a response",
			}
		}
		if gateErr != nil {
			if err := s.appendGateError(ctx, sessionID, call, gateErr); err != nil {
				return stepOutcome{}, err
			}
			if !st.send(&ErrorChunk{Kind: ErrorKindToolNotAllowed, Detail: gateErr.Error()}) {
				return stepOutcome{}, ctx.Err()
			}
			continue
		}

		args := parseArguments(call.Arguments)
		if s.approvals.RequiresApproval(call.Name) {
			if _, err := s.approvals.CreatePending(ctx, sessionID, call.ID, call.Name, args); err != nil {
				return stepOutcome{}, err
			}
			if !st.send(&HITLRequestChunk{CallID: call.ID, ToolName: call.Name, Arguments: args}) {
				return stepOutcome{}, ctx.Err()
			}
		} else {
			s.bus.PublishToolCallEmitted(ctx, sessionID, events.ToolCallEmittedPayload{
				CallID:    call.ID,
				ToolName:  call.Name,
				Agent:     string(def.Type),
				Arguments: call.Arguments,
			})
			if !st.send(&ToolCallChunk{CallID: call.ID, ToolName: call.Name, Arguments: args}) {
				return stepOutcome{}, ctx.Err()
			}
		}
		emitted++
	}

	// 3. When every call was rejected at the gate, hand the errors back
	//    to the model instead of stranding the client.
	if emitted == 0 {
		return stepOutcome{reenter: true}, nil
	}
	return stepOutcome{}, nil
}

// handleSwitchCall performs a model-driven agent switch. Failure is
// closed: a malformed or unavailable target, or a switch attempted by
// the universal agent, ends the turn with an invalid_agent error and
// leaves the current agent in place.
func (s *Service) handleSwitchCall(ctx context.Context, st *stream, sessionID string, def *agent.Definition, call llm.ToolCall, acc *llm.Accumulator) (stepOutcome, error) {
	// 1. Persist the assistant message first so the attempt is on the
	//    record either way. switch_mode never receives a tool result.
	if err := s.appendAssistantCalls(ctx, sessionID, acc, []llm.ToolCall{call}); err != nil {
		return stepOutcome{}, err
	}

	// 2. The call bypasses the tool gate: switch_mode is control flow,
	//    so an agent that was never offered the schema can still hand
	//    the session off when the model emits it. The universal agent is
	//    the one exception; its deployments have no peer to receive it.
	if def.Type == agent.TypeUniversal {
		return stepOutcome{}, &invalidAgentError{agent: string(def.Type), detail: "the universal agent cannot hand the session off"}
	}

	// 3. Parse and validate the target.
	var args struct {
		Mode   string `json:"mode"`
		Reason string `json:"reason"`
	}
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return stepOutcome{}, &invalidAgentError{agent: string(def.Type), detail: fmt.Sprintf("malformed switch_mode arguments: %v", err)}
		}
	}
	target, err := agent.ParseType(args.Mode)
	if err != nil {
		return stepOutcome{}, &invalidAgentError{agent: string(def.Type), detail: err.Error()}
	}
	if !s.registry.Has(target) {
		return stepOutcome{}, &invalidAgentError{agent: string(def.Type), detail: fmt.Sprintf("agent %q is not available in %s mode", target, s.registry.Mode())}
	}
	if target == def.Type {
		return stepOutcome{}, &invalidAgentError{agent: string(def.Type), detail: "cannot switch to the current agent"}
	}

	// 4. Record the switch and announce it.
	if err := s.switchAgent(ctx, sessionID, target, args.Reason); err != nil {
		return stepOutcome{}, err
	}
	if !st.send(&SwitchAgentChunk{FromAgent: string(def.Type), ToAgent: string(target), Reason: args.Reason}) {
		return stepOutcome{}, ctx.Err()
	}

	// 5. An orchestrator switch is a routing hop: the chosen agent
	//    answers in the same stream. A specialist handing off ends the
	//    turn; the client decides when to continue.
	if def.Type == agent.TypeOrchestrator {
		return stepOutcome{reenter: true}, nil
	}
	return stepOutcome{}, nil
}

// switchAgent records the agent change; the context service writes the
// switch history row and publishes the event in the same transaction.
func (s *Service) switchAgent(ctx context.Context, sessionID string, target agent.Type, reason string) error {
	_, err := s.contexts.Switch(ctx, sessionID, agentcontext.CurrentAgent(target), reason)
	return err
}

// appendAssistantCalls persists an assistant message carrying tool
// calls, including any text that streamed before them.
func (s *Service) appendAssistantCalls(ctx context.Context, sessionID string, acc *llm.Accumulator, calls []llm.ToolCall) error {
	toolCalls := make([]models.ToolCall, 0, len(calls))
	for _, c := range calls {
		toolCalls = append(toolCalls, models.ToolCall{ID: c.ID, Name: c.Name, Arguments: c.Arguments})
	}

	req := models.AddMessageRequest{
		SessionID: sessionID,
		Role:      message.RoleAssistant,
		Content:   acc.Text(),
		ToolCalls: toolCalls,
	}
	if usage := acc.Usage(); usage != nil {
		tokens := usage.CompletionTokens
		req.TokenCount = &tokens
	}
	_, err := s.sessions.AddMessage(ctx, req)
	return err
}

// appendGateError writes the rejection back as the call's tool result
// so the model can correct itself on the next round-trip.
func (s *Service) appendGateError(ctx context.Context, sessionID string, call llm.ToolCall, gateErr *agent.GateError) error {
	_, err := s.sessions.AddMessage(ctx, models.AddMessageRequest{
		SessionID:  sessionID,
		Role:       message.RoleTool,
		Content:    fmt.Sprintf("Error: %s", gateErr.Error()),
		ToolCallID: call.ID,
		ToolName:   call.Name,
	})
	return err
}

// unansweredCalls returns the call ids of the most recent assistant
// message that still lack a tool result. switch_mode calls never expect
// one and are not counted.
func (s *Service) unansweredCalls(ctx context.Context, sessionID string) ([]string, error) {
	history, err := s.sessions.GetHistory(ctx, sessionID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, err
	}

	// Walk back to the most recent assistant message; anything older
	// belongs to a previous, already-settled turn.
	idx := -1
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == message.RoleAssistant {
			idx = i
			break
		}
	}
	if idx < 0 || len(history[idx].ToolCalls) == 0 {
		return nil, nil
	}

	answered := make(map[string]bool)
	for _, m := range history[idx+1:] {
		if m.Role == message.RoleTool && m.ToolCallID != nil {
			answered[*m.ToolCallID] = true
		}
	}

	var waiting []string
	for _, tc := range models.ToolCallsFromJSON(history[idx].ToolCalls) {
		if tc.Name == agent.ToolSwitchMode || answered[tc.ID] {
			continue
		}
		waiting = append(waiting, tc.ID)
	}
	return waiting, nil
}

// parseArguments decodes a tool call's raw JSON arguments for the wire
// and for approval storage. Arguments that do not parse are passed
// through raw so the human still sees what the model produced.
func parseArguments(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{"_raw": raw}
	}
	return args
}
