// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentContext is the predicate function for agentcontext builders.
type AgentContext func(*sql.Selector)

// AgentSwitch is the predicate function for agentswitch builders.
type AgentSwitch func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// PendingApproval is the predicate function for pendingapproval builders.
type PendingApproval func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
