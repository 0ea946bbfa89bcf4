// Package agent defines the static catalog of agents that can drive a
// session: their system prompts, the tools each one may call, and the
// per-agent file restrictions enforced by the tool gate. Definitions are
// compiled once at startup into an immutable Registry; nothing mutates
// them afterwards, so they are safe to share across concurrent turns.
package agent

import (
	"fmt"
	"regexp"
)

// Type identifies one of the built-in agents.
type Type string

const (
	TypeOrchestrator Type = "orchestrator"
	TypeCoder        Type = "coder"
	TypeArchitect    Type = "architect"
	TypeDebug        Type = "debug"
	TypeAsk          Type = "ask"
	TypeUniversal    Type = "universal"
)

// ParseType validates a raw agent name from config or the wire.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeOrchestrator, TypeCoder, TypeArchitect, TypeDebug, TypeAsk, TypeUniversal:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown agent type: %q", s)
	}
}

// Mode selects which agents a deployment exposes.
type Mode string

const (
	// ModeMulti exposes the full roster with orchestrator routing.
	ModeMulti Mode = "multi"
	// ModeSingle exposes only the universal agent; the orchestrator
	// forwards to it without an LLM round-trip.
	ModeSingle Mode = "single"
)

// ParseMode validates a raw mode string from config.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMulti, ModeSingle:
		return Mode(s), nil
	case "":
		return ModeMulti, nil
	default:
		return "", fmt.Errorf("unknown agent mode: %q (expected %q or %q)", s, ModeMulti, ModeSingle)
	}
}

// Definition is one agent's immutable configuration.
type Definition struct {
	Type        Type
	DisplayName string
	Description string

	// SystemPrompt is sent as the first message of every LLM request
	// made on this agent's behalf.
	SystemPrompt string

	// AllowedTools is the closed allow-list enforced by CheckToolCall.
	// Tools outside this set are rejected before approval gating runs.
	AllowedTools []string

	// FileRestrictions, when non-empty, limits write_file targets to
	// paths matching at least one pattern. Read access is unaffected.
	FileRestrictions []*regexp.Regexp

	allowed map[string]struct{}
}

// Allows reports whether the agent may call the named tool.
func (d *Definition) Allows(tool string) bool {
	_, ok := d.allowed[tool]
	return ok
}

// AllowsPath reports whether the agent may write to the given path.
// Agents without file restrictions may write anywhere write_file is
// allowed at all.
func (d *Definition) AllowsPath(path string) bool {
	if len(d.FileRestrictions) == 0 {
		return true
	}
	for _, re := range d.FileRestrictions {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// compile finalizes the definition after construction.
func (d *Definition) compile() {
	d.allowed = make(map[string]struct{}, len(d.AllowedTools))
	for _, t := range d.AllowedTools {
		d.allowed[t] = struct{}{}
	}
}
