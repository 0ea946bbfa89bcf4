// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentContextsColumns holds the columns for the "agent_contexts" table.
	AgentContextsColumns = []*schema.Column{
		{Name: "context_id", Type: field.TypeString, Unique: true},
		{Name: "current_agent", Type: field.TypeEnum, Enums: []string{"orchestrator", "coder", "architect", "debug", "ask", "universal"}, Default: "orchestrator"},
		{Name: "switch_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_switch_at", Type: field.TypeTime, Nullable: true},
		{Name: "context_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// AgentContextsTable holds the schema information for the "agent_contexts" table.
	AgentContextsTable = &schema.Table{
		Name:       "agent_contexts",
		Columns:    AgentContextsColumns,
		PrimaryKey: []*schema.Column{AgentContextsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_contexts_sessions_agent_context",
				Columns:    []*schema.Column{AgentContextsColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentcontext_current_agent",
				Unique:  false,
				Columns: []*schema.Column{AgentContextsColumns[1]},
			},
		},
	}
	// AgentSwitchesColumns holds the columns for the "agent_switches" table.
	AgentSwitchesColumns = []*schema.Column{
		{Name: "switch_id", Type: field.TypeString, Unique: true},
		{Name: "from_agent", Type: field.TypeString},
		{Name: "to_agent", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "switched_at", Type: field.TypeTime},
		{Name: "context_id", Type: field.TypeString},
	}
	// AgentSwitchesTable holds the schema information for the "agent_switches" table.
	AgentSwitchesTable = &schema.Table{
		Name:       "agent_switches",
		Columns:    AgentSwitchesColumns,
		PrimaryKey: []*schema.Column{AgentSwitchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_switches_agent_contexts_switches",
				Columns:    []*schema.Column{AgentSwitchesColumns[5]},
				RefColumns: []*schema.Column{AgentContextsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentswitch_context_id_switched_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSwitchesColumns[5], AgentSwitchesColumns[4]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_event_type",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant", "tool"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_call_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "token_count", Type: field.TypeInt, Nullable: true},
		{Name: "message_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[10]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[10], MessagesColumns[1]},
			},
			{
				Name:    "message_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[10], MessagesColumns[9]},
			},
			{
				Name:    "message_tool_call_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[5]},
			},
		},
	}
	// PendingApprovalsColumns holds the columns for the "pending_approvals" table.
	PendingApprovalsColumns = []*schema.Column{
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "edited"}, Default: "pending"},
		{Name: "decision_feedback", Type: field.TypeString, Nullable: true},
		{Name: "modified_arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// PendingApprovalsTable holds the schema information for the "pending_approvals" table.
	PendingApprovalsTable = &schema.Table{
		Name:       "pending_approvals",
		Columns:    PendingApprovalsColumns,
		PrimaryKey: []*schema.Column{PendingApprovalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pending_approvals_sessions_pending_approvals",
				Columns:    []*schema.Column{PendingApprovalsColumns[7]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pendingapproval_session_id",
				Unique:  false,
				Columns: []*schema.Column{PendingApprovalsColumns[7]},
			},
			{
				Name:    "pendingapproval_created_at",
				Unique:  false,
				Columns: []*schema.Column{PendingApprovalsColumns[6]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "session_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_is_active",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
			{
				Name:    "session_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
			{
				Name:    "session_is_active_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2], SessionsColumns[4]},
			},
			{
				Name:    "session_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentContextsTable,
		AgentSwitchesTable,
		AuditLogsTable,
		MessagesTable,
		PendingApprovalsTable,
		SessionsTable,
	}
)

func init() {
	AgentContextsTable.ForeignKeys[0].RefTable = SessionsTable
	AgentSwitchesTable.ForeignKeys[0].RefTable = AgentContextsTable
	MessagesTable.ForeignKeys[0].RefTable = SessionsTable
	PendingApprovalsTable.ForeignKeys[0].RefTable = SessionsTable
}
