package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/switchyard-ai/switchyard/pkg/locks"
	"github.com/switchyard-ai/switchyard/pkg/orchestrator"
	"github.com/switchyard-ai/switchyard/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("content", "cannot be empty"),
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
		},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("failed to add message: %w", services.NewValidationError("role", "unknown role")),
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: page size too large", services.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
		},
		{
			name:       "session deleted",
			err:        services.ErrSessionDeleted,
			wantStatus: http.StatusNotFound,
			wantKind:   "session_deleted",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("failed to get session: %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantKind:   "not_found",
		},
		{
			name:       "approval already resolved",
			err:        services.ErrAlreadyResolved,
			wantStatus: http.StatusConflict,
			wantKind:   "already_resolved",
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantKind:   "already_exists",
		},
		{
			name:       "lock timeout",
			err:        fmt.Errorf("failed to acquire session lock: %w", locks.ErrTimeout),
			wantStatus: http.StatusConflict,
			wantKind:   "lock_timeout",
		},
		{
			name:       "unknown error is opaque",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKind, resp.Error.Kind)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestMapServiceError_UnknownErrorHidesDetail(t *testing.T) {
	_, resp := mapServiceError(errors.New("dial tcp 10.0.0.5:5432: i/o timeout"))
	assert.Equal(t, "internal server error", resp.Error.Message)
	assert.NotContains(t, resp.Error.Message, "10.0.0.5")
}

func TestMapChunkError(t *testing.T) {
	tests := []struct {
		name       string
		chunk      *orchestrator.ErrorChunk
		wantStatus int
		wantKind   string
	}{
		{
			name:       "validation",
			chunk:      &orchestrator.ErrorChunk{Kind: orchestrator.ErrorKindValidation, Detail: "content is required"},
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
		},
		{
			name:       "invalid agent",
			chunk:      &orchestrator.ErrorChunk{Kind: orchestrator.ErrorKindInvalidAgent, Detail: "unknown agent type"},
			wantStatus: http.StatusBadRequest,
			wantKind:   "invalid_agent",
		},
		{
			name:       "session not found",
			chunk:      &orchestrator.ErrorChunk{Kind: orchestrator.ErrorKindSessionNotFound, Detail: "no such session"},
			wantStatus: http.StatusNotFound,
			wantKind:   "session_not_found",
		},
		{
			name:       "session deleted",
			chunk:      &orchestrator.ErrorChunk{Kind: orchestrator.ErrorKindSessionDeleted, Detail: "session deleted"},
			wantStatus: http.StatusNotFound,
			wantKind:   "session_deleted",
		},
		{
			name:       "lock timeout",
			chunk:      &orchestrator.ErrorChunk{Kind: orchestrator.ErrorKindLockTimeout, Detail: "timed out"},
			wantStatus: http.StatusConflict,
			wantKind:   "lock_timeout",
		},
		{
			name:       "anything else is opaque",
			chunk:      &orchestrator.ErrorChunk{Kind: orchestrator.ErrorKindInternal, Detail: "ent: constraint violation"},
			wantStatus: http.StatusInternalServerError,
			wantKind:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := mapChunkError(tt.chunk)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKind, resp.Error.Kind)
		})
	}
}
