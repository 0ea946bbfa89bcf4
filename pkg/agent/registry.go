package agent

import (
	"fmt"
	"regexp"
	"sort"
)

// markdownOnly restricts architect writes to markdown documents.
var markdownOnly = regexp.MustCompile(`(?i)\.md$`)

// builtinDefinitions returns fresh copies of the full agent roster.
func builtinDefinitions() []*Definition {
	return []*Definition{
		{
			Type:         TypeOrchestrator,
			DisplayName:  "Orchestrator",
			Description:  "Routes each request to the agent best suited for it",
			SystemPrompt: orchestratorPrompt,
			AllowedTools: []string{
				ToolReadFile, ToolListFiles, ToolSearchInCode, ToolSwitchMode,
			},
		},
		{
			Type:         TypeCoder,
			DisplayName:  "Coder",
			Description:  "Implements features, fixes bugs, and refactors code",
			SystemPrompt: coderPrompt,
			AllowedTools: []string{
				ToolReadFile, ToolListFiles, ToolSearchInCode,
				ToolWriteFile, ToolExecuteCommand, ToolCreateDirectory,
				ToolAttemptCompletion, ToolSwitchMode,
			},
		},
		{
			Type:         TypeArchitect,
			DisplayName:  "Architect",
			Description:  "Plans implementations and writes design documents",
			SystemPrompt: architectPrompt,
			AllowedTools: []string{
				ToolReadFile, ToolListFiles, ToolSearchInCode,
				ToolWriteFile, ToolExecuteCommand, ToolCreateDirectory,
				ToolAttemptCompletion, ToolSwitchMode,
			},
			FileRestrictions: []*regexp.Regexp{markdownOnly},
		},
		{
			Type:         TypeDebug,
			DisplayName:  "Debug",
			Description:  "Diagnoses failures and identifies root causes",
			SystemPrompt: debugPrompt,
			AllowedTools: []string{
				ToolReadFile, ToolListFiles, ToolSearchInCode,
				ToolExecuteCommand, ToolAttemptCompletion, ToolSwitchMode,
			},
		},
		{
			Type:         TypeAsk,
			DisplayName:  "Ask",
			Description:  "Answers questions about the codebase without modifying it",
			SystemPrompt: askPrompt,
			AllowedTools: []string{
				ToolReadFile, ToolListFiles, ToolSearchInCode, ToolAttemptCompletion,
			},
		},
		{
			Type:         TypeUniversal,
			DisplayName:  "Universal",
			Description:  "Handles all task types in single-agent deployments",
			SystemPrompt: universalPrompt,
			AllowedTools: []string{
				ToolReadFile, ToolListFiles, ToolSearchInCode,
				ToolWriteFile, ToolExecuteCommand, ToolCreateDirectory,
				ToolAttemptCompletion,
			},
		},
	}
}

// Registry is the immutable set of agents available to a deployment.
type Registry struct {
	mode Mode
	defs map[Type]*Definition
}

// NewRegistry compiles the agent roster for the given mode. Multi-agent
// deployments expose the full roster; single-agent deployments expose
// only the orchestrator (as the routing entry point) and the universal
// agent it forwards to.
func NewRegistry(mode Mode) (*Registry, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}

	defs := make(map[Type]*Definition)
	for _, d := range builtinDefinitions() {
		if mode == ModeSingle && d.Type != TypeOrchestrator && d.Type != TypeUniversal {
			continue
		}
		for _, tool := range d.AllowedTools {
			if !KnownTool(tool) {
				return nil, fmt.Errorf("agent %s allows unknown tool %q", d.Type, tool)
			}
		}
		d.compile()
		defs[d.Type] = d
	}

	return &Registry{mode: mode, defs: defs}, nil
}

// Mode returns the deployment mode the registry was built for.
func (r *Registry) Mode() Mode {
	return r.mode
}

// Get looks up an agent definition by type.
func (r *Registry) Get(t Type) (*Definition, error) {
	d, ok := r.defs[t]
	if !ok {
		return nil, fmt.Errorf("agent %q is not available in %s mode", t, r.mode)
	}
	return d, nil
}

// Has reports whether the agent is available in this deployment.
func (r *Registry) Has(t Type) bool {
	_, ok := r.defs[t]
	return ok
}

// List returns all available definitions in stable (alphabetical) order.
func (r *Registry) List() []*Definition {
	out := make([]*Definition, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
