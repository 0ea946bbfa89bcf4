package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGet(t *testing.T, typ Type) *Definition {
	t.Helper()
	r, err := NewRegistry(ModeMulti)
	require.NoError(t, err)
	def, err := r.Get(typ)
	require.NoError(t, err)
	return def
}

func TestCheckToolCall(t *testing.T) {
	tests := []struct {
		name      string
		agent     Type
		tool      string
		arguments string
		wantErr   string
	}{
		{
			name:      "coder may write anywhere",
			agent:     TypeCoder,
			tool:      ToolWriteFile,
			arguments: `{"path": "internal/server/main.go", "content": "package server"}`,
		},
		{
			name:      "ask may not write",
			agent:     TypeAsk,
			tool:      ToolWriteFile,
			arguments: `{"path": "notes.md", "content": "x"}`,
			wantErr:   "not permitted",
		},
		{
			name:      "debug may not write",
			agent:     TypeDebug,
			tool:      ToolWriteFile,
			arguments: `{"path": "fix.go", "content": "x"}`,
			wantErr:   "not permitted",
		},
		{
			name:      "debug may execute",
			agent:     TypeDebug,
			tool:      ToolExecuteCommand,
			arguments: `{"command": "go test ./..."}`,
		},
		{
			name:      "architect may write markdown",
			agent:     TypeArchitect,
			tool:      ToolWriteFile,
			arguments: `{"path": "docs/design.md", "content": "# Design"}`,
		},
		{
			name:      "architect markdown check is case-insensitive",
			agent:     TypeArchitect,
			tool:      ToolWriteFile,
			arguments: `{"path": "README.MD", "content": "# Readme"}`,
		},
		{
			name:      "architect may not write source files",
			agent:     TypeArchitect,
			tool:      ToolWriteFile,
			arguments: `{"path": "pkg/server/server.go", "content": "package server"}`,
			wantErr:   "markdown files only",
		},
		{
			name:      "architect write without path is rejected",
			agent:     TypeArchitect,
			tool:      ToolWriteFile,
			arguments: `{"content": "orphan"}`,
			wantErr:   "missing required argument",
		},
		{
			name:      "architect write with malformed arguments is rejected",
			agent:     TypeArchitect,
			tool:      ToolWriteFile,
			arguments: `{"path": `,
			wantErr:   "malformed arguments",
		},
		{
			name:      "unknown tool is rejected before allow-list",
			agent:     TypeCoder,
			tool:      "rm_rf",
			arguments: `{}`,
			wantErr:   "unknown tool",
		},
		{
			name:      "orchestrator may switch",
			agent:     TypeOrchestrator,
			tool:      ToolSwitchMode,
			arguments: `{"mode": "coder", "reason": "implementation task"}`,
		},
		{
			name:      "orchestrator may not execute",
			agent:     TypeOrchestrator,
			tool:      ToolExecuteCommand,
			arguments: `{"command": "ls"}`,
			wantErr:   "not permitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := mustGet(t, tt.agent)
			gateErr := CheckToolCall(def, tt.tool, tt.arguments)
			if tt.wantErr == "" {
				assert.Nil(t, gateErr)
				return
			}
			require.NotNil(t, gateErr)
			assert.Contains(t, gateErr.Error(), tt.wantErr)
			assert.Equal(t, tt.agent, gateErr.Agent)
			assert.Equal(t, tt.tool, gateErr.Tool)
		})
	}
}

func TestCheckToolCall_CoderWriteSkipsPathCheck(t *testing.T) {
	// Agents without file restrictions do not parse the path at gate
	// time; argument validation is the executor's concern.
	def := mustGet(t, TypeCoder)
	assert.Nil(t, CheckToolCall(def, ToolWriteFile, `{"content": "no path yet"}`))
}

func TestAllowsPath(t *testing.T) {
	architect := mustGet(t, TypeArchitect)
	assert.True(t, architect.AllowsPath("docs/adr/001-storage.md"))
	assert.False(t, architect.AllowsPath("cmd/main.go"))

	coder := mustGet(t, TypeCoder)
	assert.True(t, coder.AllowsPath("cmd/main.go"))
}
