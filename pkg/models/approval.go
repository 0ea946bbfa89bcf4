package models

// Decision is a human verdict on a pending tool approval.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
	DecisionEdit    Decision = "edit"
)

// Valid reports whether d is one of the known decisions.
func (d Decision) Valid() bool {
	switch d {
	case DecisionApprove, DecisionReject, DecisionEdit:
		return true
	}
	return false
}

// ResolveApprovalRequest carries a user's decision on a pending approval.
type ResolveApprovalRequest struct {
	CallID            string         `json:"call_id"`
	Decision          Decision       `json:"decision"`
	Feedback          string         `json:"feedback,omitempty"`
	ModifiedArguments map[string]any `json:"modified_arguments,omitempty"`
}

// ResolvedApproval is the outcome of resolving a pending approval.
// Arguments holds the final arguments the tool should run with: the
// originals for approve, the user's replacements for edit.
type ResolvedApproval struct {
	CallID    string         `json:"call_id"`
	SessionID string         `json:"session_id"`
	ToolName  string         `json:"tool_name"`
	Decision  Decision       `json:"decision"`
	Feedback  string         `json:"feedback,omitempty"`
	Arguments map[string]any `json:"arguments,omitempty"`
}
