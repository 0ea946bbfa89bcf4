package agent

import (
	"github.com/switchyard-ai/switchyard/pkg/llm"
)

// Tool names shared by the registry, the gate, and the orchestration
// layer. Execution happens on the client side; the runtime only decides
// whether a call may be emitted.
const (
	ToolReadFile          = "read_file"
	ToolListFiles         = "list_files"
	ToolSearchInCode      = "search_in_code"
	ToolWriteFile         = "write_file"
	ToolExecuteCommand    = "execute_command"
	ToolCreateDirectory   = "create_directory"
	ToolAttemptCompletion = "attempt_completion"
	ToolSwitchMode        = "switch_mode"
)

// DefaultDestructiveTools are gated behind human approval unless config
// overrides the set.
func DefaultDestructiveTools() []string {
	return []string{ToolWriteFile, ToolExecuteCommand, ToolCreateDirectory}
}

// toolCatalog holds the wire schema for every tool the runtime knows
// about. Schemas are JSON Schema fragments in the shape OpenAI-style
// APIs expect under "parameters".
var toolCatalog = map[string]llm.ToolDefinition{
	ToolReadFile: {
		Name:        ToolReadFile,
		Description: "Read the contents of a file in the workspace. Returns the file text with line numbers.",
		ParametersSchema: `{
  "type": "object",
  "properties": {
    "path": {"type": "string", "description": "Workspace-relative path of the file to read"},
    "start_line": {"type": "integer", "description": "Optional 1-based first line to include"},
    "end_line": {"type": "integer", "description": "Optional 1-based last line to include"}
  },
  "required": ["path"]
}`,
	},
	ToolListFiles: {
		Name:        ToolListFiles,
		Description: "List files and directories under a workspace path.",
		ParametersSchema: `{
  "type": "object",
  "properties": {
    "path": {"type": "string", "description": "Workspace-relative directory to list; defaults to the workspace root"},
    "recursive": {"type": "boolean", "description": "Recurse into subdirectories"}
  },
  "required": []
}`,
	},
	ToolSearchInCode: {
		Name:        ToolSearchInCode,
		Description: "Search the workspace for a regular expression and return matching lines with file locations.",
		ParametersSchema: `{
  "type": "object",
  "properties": {
    "pattern": {"type": "string", "description": "Regular expression to search for"},
    "path": {"type": "string", "description": "Optional directory to scope the search"},
    "file_glob": {"type": "string", "description": "Optional glob limiting which files are searched, e.g. *.go"}
  },
  "required": ["pattern"]
}`,
	},
	ToolWriteFile: {
		Name:        ToolWriteFile,
		Description: "Create or overwrite a file in the workspace with the given content.",
		ParametersSchema: `{
  "type": "object",
  "properties": {
    "path": {"type": "string", "description": "Workspace-relative path of the file to write"},
    "content": {"type": "string", "description": "Full content the file should have after the write"}
  },
  "required": ["path", "content"]
}`,
	},
	ToolExecuteCommand: {
		Name:        ToolExecuteCommand,
		Description: "Run a shell command in the workspace and return its output and exit code.",
		ParametersSchema: `{
  "type": "object",
  "properties": {
    "command": {"type": "string", "description": "Command line to execute"},
    "working_dir": {"type": "string", "description": "Optional workspace-relative working directory"}
  },
  "required": ["command"]
}`,
	},
	ToolCreateDirectory: {
		Name:        ToolCreateDirectory,
		Description: "Create a directory (and any missing parents) in the workspace.",
		ParametersSchema: `{
  "type": "object",
  "properties": {
    "path": {"type": "string", "description": "Workspace-relative directory path to create"}
  },
  "required": ["path"]
}`,
	},
	ToolAttemptCompletion: {
		Name:        ToolAttemptCompletion,
		Description: "Present the final result of the task to the user. Call this once the task is complete.",
		ParametersSchema: `{
  "type": "object",
  "properties": {
    "result": {"type": "string", "description": "Final answer or summary of the completed work"}
  },
  "required": ["result"]
}`,
	},
	ToolSwitchMode: {
		Name:        ToolSwitchMode,
		Description: "Hand the session over to a different agent better suited for the current task.",
		ParametersSchema: `{
  "type": "object",
  "properties": {
    "mode": {"type": "string", "description": "Target agent", "enum": ["orchestrator", "coder", "architect", "debug", "ask"]},
    "reason": {"type": "string", "description": "Short explanation of why the switch helps"}
  },
  "required": ["mode"]
}`,
	},
}

// ToolDefinitions resolves the agent's allow-list against the catalog,
// preserving the allow-list order. Unknown names are skipped; the
// registry validates them at construction so this cannot drop tools in
// practice.
func (d *Definition) ToolDefinitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(d.AllowedTools))
	for _, name := range d.AllowedTools {
		if td, ok := toolCatalog[name]; ok {
			defs = append(defs, td)
		}
	}
	return defs
}

// KnownTool reports whether the runtime has a schema for the tool.
func KnownTool(name string) bool {
	_, ok := toolCatalog[name]
	return ok
}
