package agent

import (
	"encoding/json"
	"fmt"
)

// GateError explains why an emitted tool call was refused. Its message
// is written back into the conversation as a tool-role error so the
// model can recover on the next turn.
type GateError struct {
	Agent  Type
	Tool   string
	Reason string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("tool %q rejected for agent %s: %s", e.Tool, e.Agent, e.Reason)
}

// CheckToolCall enforces the agent's allow-list and file restrictions
// against a single emitted call. arguments is the raw JSON argument
// string as accumulated from the model; it may be empty.
//
// The gate runs before approval gating: a disallowed call never creates
// a pending approval.
func CheckToolCall(def *Definition, tool string, arguments string) *GateError {
	// 1. The tool must exist at all.
	if !KnownTool(tool) {
		return &GateError{Agent: def.Type, Tool: tool, Reason: "unknown tool"}
	}

	// 2. The tool must be on the agent's allow-list.
	if !def.Allows(tool) {
		return &GateError{Agent: def.Type, Tool: tool, Reason: "not permitted for this agent"}
	}

	// 3. Restricted agents may only write files matching their patterns.
	if tool == ToolWriteFile && len(def.FileRestrictions) > 0 {
		path, err := pathArgument(arguments)
		if err != nil {
			return &GateError{Agent: def.Type, Tool: tool, Reason: err.Error()}
		}
		if !def.AllowsPath(path) {
			return &GateError{
				Agent:  def.Type,
				Tool:   tool,
				Reason: fmt.Sprintf("agent may not write to %q (markdown files only)", path),
			}
		}
	}

	return nil
}

// pathArgument extracts the "path" field from a tool call's argument
// JSON. Malformed arguments are a gate failure rather than a crash: the
// model produced them and gets the parse error back as a tool result.
func pathArgument(arguments string) (string, error) {
	if arguments == "" {
		return "", fmt.Errorf("missing required argument %q", "path")
	}
	var args struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("malformed arguments: %v", err)
	}
	if args.Path == "" {
		return "", fmt.Errorf("missing required argument %q", "path")
	}
	return args.Path, nil
}
