package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/switchyard-ai/switchyard/pkg/locks"
	"github.com/switchyard-ai/switchyard/pkg/orchestrator"
	"github.com/switchyard-ai/switchyard/pkg/services"
)

// ErrorResponse is the JSON error envelope for non-streaming endpoints.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable kind and the human-readable
// message of one error.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func newErrorResponse(kind, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Kind: kind, Message: message}}
}

// mapServiceError maps service and lock layer errors to an HTTP status
// and error envelope. Unexpected errors are logged and reported as an
// opaque 500 so internals never leak to clients.
func mapServiceError(err error) (int, ErrorResponse) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		return http.StatusBadRequest, newErrorResponse("validation", validErr.Error())
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, newErrorResponse("validation", err.Error())
	case errors.Is(err, services.ErrSessionDeleted):
		return http.StatusNotFound, newErrorResponse("session_deleted", "session has been deleted")
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, newErrorResponse("not_found", "resource not found")
	case errors.Is(err, services.ErrAlreadyResolved):
		return http.StatusConflict, newErrorResponse("already_resolved", "approval already resolved")
	case errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict, newErrorResponse("already_exists", "resource already exists")
	case errors.Is(err, locks.ErrTimeout):
		return http.StatusConflict, newErrorResponse("lock_timeout", "session is busy, try again")
	}

	slog.Error("unexpected service error", "error", err)
	return http.StatusInternalServerError, newErrorResponse("internal", "internal server error")
}

// mapChunkError maps a stream error chunk onto plain HTTP. Control
// endpoints that drive the orchestrator without an open stream use this
// to report the failure the stream would have carried.
func mapChunkError(chunk *orchestrator.ErrorChunk) (int, ErrorResponse) {
	switch chunk.Kind {
	case orchestrator.ErrorKindValidation, orchestrator.ErrorKindInvalidAgent:
		return http.StatusBadRequest, newErrorResponse(chunk.Kind, chunk.Detail)
	case orchestrator.ErrorKindSessionNotFound, orchestrator.ErrorKindSessionDeleted:
		return http.StatusNotFound, newErrorResponse(chunk.Kind, chunk.Detail)
	case orchestrator.ErrorKindLockTimeout:
		return http.StatusConflict, newErrorResponse(chunk.Kind, "session is busy, try again")
	}

	slog.Error("unexpected stream error chunk", "kind", chunk.Kind, "detail", chunk.Detail)
	return http.StatusInternalServerError, newErrorResponse("internal", "internal server error")
}
