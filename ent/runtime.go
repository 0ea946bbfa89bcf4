// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/agentswitch"
	"github.com/switchyard-ai/switchyard/ent/auditlog"
	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/ent/pendingapproval"
	"github.com/switchyard-ai/switchyard/ent/schema"
	"github.com/switchyard-ai/switchyard/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentcontextFields := schema.AgentContext{}.Fields()
	_ = agentcontextFields
	// agentcontextDescSwitchCount is the schema descriptor for switch_count field.
	agentcontextDescSwitchCount := agentcontextFields[3].Descriptor()
	// agentcontext.DefaultSwitchCount holds the default value on creation for the switch_count field.
	agentcontext.DefaultSwitchCount = agentcontextDescSwitchCount.Default.(int)
	// agentcontextDescCreatedAt is the schema descriptor for created_at field.
	agentcontextDescCreatedAt := agentcontextFields[4].Descriptor()
	// agentcontext.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentcontext.DefaultCreatedAt = agentcontextDescCreatedAt.Default.(func() time.Time)
	agentswitchFields := schema.AgentSwitch{}.Fields()
	_ = agentswitchFields
	// agentswitchDescReason is the schema descriptor for reason field.
	agentswitchDescReason := agentswitchFields[4].Descriptor()
	// agentswitch.DefaultReason holds the default value on creation for the reason field.
	agentswitch.DefaultReason = agentswitchDescReason.Default.(string)
	// agentswitchDescSwitchedAt is the schema descriptor for switched_at field.
	agentswitchDescSwitchedAt := agentswitchFields[5].Descriptor()
	// agentswitch.DefaultSwitchedAt holds the default value on creation for the switched_at field.
	agentswitch.DefaultSwitchedAt = agentswitchDescSwitchedAt.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescPayload is the schema descriptor for payload field.
	auditlogDescPayload := auditlogFields[4].Descriptor()
	// auditlog.DefaultPayload holds the default value on creation for the payload field.
	auditlog.DefaultPayload = auditlogDescPayload.Default.(string)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[5].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescContent is the schema descriptor for content field.
	messageDescContent := messageFields[4].Descriptor()
	// message.DefaultContent holds the default value on creation for the content field.
	message.DefaultContent = messageDescContent.Default.(string)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[10].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	pendingapprovalFields := schema.PendingApproval{}.Fields()
	_ = pendingapprovalFields
	// pendingapprovalDescCreatedAt is the schema descriptor for created_at field.
	pendingapprovalDescCreatedAt := pendingapprovalFields[7].Descriptor()
	// pendingapproval.DefaultCreatedAt holds the default value on creation for the created_at field.
	pendingapproval.DefaultCreatedAt = pendingapprovalDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescIsActive is the schema descriptor for is_active field.
	sessionDescIsActive := sessionFields[2].Descriptor()
	// session.DefaultIsActive holds the default value on creation for the is_active field.
	session.DefaultIsActive = sessionDescIsActive.Default.(bool)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[3].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescLastActivityAt is the schema descriptor for last_activity_at field.
	sessionDescLastActivityAt := sessionFields[4].Descriptor()
	// session.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	session.DefaultLastActivityAt = sessionDescLastActivityAt.Default.(func() time.Time)
}
