package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/switchyard-ai/switchyard/pkg/llm"
	"github.com/switchyard-ai/switchyard/pkg/locks"
	"github.com/switchyard-ai/switchyard/pkg/services"
)

// Error kinds surfaced in error chunks. Clients branch on these; the
// detail text is informational only.
const (
	ErrorKindValidation      = "validation"
	ErrorKindSessionNotFound = "session_not_found"
	ErrorKindSessionDeleted  = "session_deleted"
	ErrorKindToolNotAllowed  = "tool_not_allowed"
	ErrorKindInvalidAgent    = "invalid_agent"
	ErrorKindLockTimeout     = "lock_timeout"
	ErrorKindCircuitOpen     = "circuit_open"
	ErrorKindLLMTransient    = "llm_transient"
	ErrorKindLLMPermanent    = "llm_permanent"
	ErrorKindMaxTurns        = "max_turns"
	ErrorKindCanceled        = "canceled"
	ErrorKindInternal        = "internal"
)

// invalidAgentError is raised when a switch cannot be honored: the model
// named an agent outside the deployment roster, emitted switch_mode from
// an agent that has no routing authority, or produced arguments that do
// not parse.
type invalidAgentError struct {
	agent  string
	detail string
}

func (e *invalidAgentError) Error() string {
	return fmt.Sprintf("agent switch refused (current agent %s): %s", e.agent, e.detail)
}

// maxTurnsError stops runaway loops where the model keeps producing
// rejected tool calls or routing hops without ever concluding.
type maxTurnsError struct {
	limit int
}

func (e *maxTurnsError) Error() string {
	return fmt.Sprintf("turn aborted after %d model round-trips without a conclusion", e.limit)
}

// classifyError maps an orchestration failure onto the wire error
// taxonomy. Unrecognized errors become "internal" with their message as
// detail; the message has already been through masking by the caller.
func classifyError(err error) *ErrorChunk {
	chunk := &ErrorChunk{Kind: ErrorKindInternal, Detail: err.Error(), IsFinal: true}

	var (
		validationErr *services.ValidationError
		breakerErr    *llm.BreakerOpenError
		exhaustedErr  *llm.ExhaustedError
		llmErr        *llm.Error
		agentErr      *invalidAgentError
		turnsErr      *maxTurnsError
	)

	switch {
	case errors.As(err, &validationErr), errors.Is(err, services.ErrInvalidInput):
		chunk.Kind = ErrorKindValidation
	case errors.Is(err, services.ErrSessionDeleted):
		chunk.Kind = ErrorKindSessionDeleted
	case errors.Is(err, services.ErrNotFound):
		chunk.Kind = ErrorKindSessionNotFound
	case errors.Is(err, locks.ErrTimeout):
		chunk.Kind = ErrorKindLockTimeout
	case errors.As(err, &breakerErr):
		chunk.Kind = ErrorKindCircuitOpen
	case errors.As(err, &exhaustedErr):
		chunk.Kind = ErrorKindLLMTransient
	case errors.As(err, &llmErr):
		if llmErr.Kind == llm.ErrKindTransient {
			chunk.Kind = ErrorKindLLMTransient
		} else {
			chunk.Kind = ErrorKindLLMPermanent
		}
	case errors.As(err, &agentErr):
		chunk.Kind = ErrorKindInvalidAgent
	case errors.As(err, &turnsErr):
		chunk.Kind = ErrorKindMaxTurns
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		chunk.Kind = ErrorKindCanceled
	}

	return chunk
}
