// Package models holds request/response shapes shared by services and the API layer.
package models

import (
	"github.com/switchyard-ai/switchyard/ent"
)

// CreateSessionRequest contains fields for creating a new session
type CreateSessionRequest struct {
	SessionID string         `json:"session_id,omitempty"`
	UserID    string         `json:"user_id"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	UserID         string `json:"user_id,omitempty"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
	Page           int    `json:"page,omitempty"`
	Size           int    `json:"size,omitempty"`
}

// Pagination describes one page of a list response
type Pagination struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// SessionListResponse contains a paginated session list
type SessionListResponse struct {
	Sessions   []*ent.Session `json:"sessions"`
	Pagination Pagination     `json:"pagination"`
}
