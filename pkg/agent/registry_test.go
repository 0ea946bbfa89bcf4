package agent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_MultiMode(t *testing.T) {
	r, err := NewRegistry(ModeMulti)
	require.NoError(t, err)

	assert.Equal(t, ModeMulti, r.Mode())
	assert.Len(t, r.List(), 6)
	for _, typ := range []Type{TypeOrchestrator, TypeCoder, TypeArchitect, TypeDebug, TypeAsk, TypeUniversal} {
		assert.True(t, r.Has(typ), "expected %s to be registered", typ)
	}
}

func TestNewRegistry_SingleMode(t *testing.T) {
	r, err := NewRegistry(ModeSingle)
	require.NoError(t, err)

	assert.Len(t, r.List(), 2)
	assert.True(t, r.Has(TypeOrchestrator))
	assert.True(t, r.Has(TypeUniversal))
	assert.False(t, r.Has(TypeCoder))

	_, err = r.Get(TypeCoder)
	assert.Error(t, err)
}

func TestNewRegistry_InvalidMode(t *testing.T) {
	_, err := NewRegistry(Mode("committee"))
	assert.Error(t, err)
}

func TestRegistry_ListIsSorted(t *testing.T) {
	r, err := NewRegistry(ModeMulti)
	require.NoError(t, err)

	defs := r.List()
	for i := 1; i < len(defs); i++ {
		assert.Less(t, string(defs[i-1].Type), string(defs[i].Type))
	}
}

func TestAgentToolAllowLists(t *testing.T) {
	r, err := NewRegistry(ModeMulti)
	require.NoError(t, err)

	tests := []struct {
		agent   Type
		tool    string
		allowed bool
	}{
		{TypeOrchestrator, ToolReadFile, true},
		{TypeOrchestrator, ToolSwitchMode, true},
		{TypeOrchestrator, ToolWriteFile, false},
		{TypeOrchestrator, ToolExecuteCommand, false},
		{TypeCoder, ToolWriteFile, true},
		{TypeCoder, ToolExecuteCommand, true},
		{TypeCoder, ToolSwitchMode, true},
		{TypeArchitect, ToolWriteFile, true},
		{TypeDebug, ToolExecuteCommand, true},
		{TypeDebug, ToolWriteFile, false},
		{TypeDebug, ToolCreateDirectory, false},
		{TypeAsk, ToolReadFile, true},
		{TypeAsk, ToolAttemptCompletion, true},
		{TypeAsk, ToolWriteFile, false},
		{TypeAsk, ToolExecuteCommand, false},
		{TypeAsk, ToolSwitchMode, false},
		{TypeUniversal, ToolWriteFile, true},
		{TypeUniversal, ToolSwitchMode, false},
	}

	for _, tt := range tests {
		def, err := r.Get(tt.agent)
		require.NoError(t, err)
		assert.Equal(t, tt.allowed, def.Allows(tt.tool), "%s / %s", tt.agent, tt.tool)
	}
}

func TestDefinition_ToolDefinitions(t *testing.T) {
	r, err := NewRegistry(ModeMulti)
	require.NoError(t, err)

	for _, def := range r.List() {
		defs := def.ToolDefinitions()
		require.Len(t, defs, len(def.AllowedTools), "agent %s", def.Type)

		for i, td := range defs {
			assert.Equal(t, def.AllowedTools[i], td.Name)
			assert.NotEmpty(t, td.Description)

			var schema map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(td.ParametersSchema), &schema),
				"schema for %s must be valid JSON", td.Name)
			assert.Equal(t, "object", schema["type"])
		}
	}
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("coder")
	require.NoError(t, err)
	assert.Equal(t, TypeCoder, typ)

	_, err = ParseType("manager")
	assert.Error(t, err)
}
