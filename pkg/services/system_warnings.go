package services

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Warning category constants for categorizing system warnings.
const (
	WarningCategoryLLMCircuit = "llm_circuit" // provider circuit breaker opened
	WarningCategoryRetention  = "retention"   // a cleanup pass failed
)

// SystemWarning represents a non-fatal system issue.
type SystemWarning struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Source    string    `json:"source,omitempty"` // provider or component the warning refers to
	CreatedAt time.Time `json:"created_at"`
}

// SystemWarningsService manages in-memory system warnings surfaced on the
// health endpoint. Thread-safe. Not persisted — warnings are transient and
// reset on restart.
type SystemWarningsService struct {
	mu       sync.RWMutex
	warnings map[string]*SystemWarning // warningID → warning
}

// NewSystemWarningsService creates a new SystemWarningsService.
func NewSystemWarningsService() *SystemWarningsService {
	return &SystemWarningsService{
		warnings: make(map[string]*SystemWarning),
	}
}

// AddWarning adds a warning and returns its ID.
// If a warning with the same category+source already exists, it is replaced.
func (s *SystemWarningsService) AddWarning(category, message, details, source string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Replace existing warning with same category+source to avoid duplicates
	for id, w := range s.warnings {
		if w.Category == category && w.Source == source {
			delete(s.warnings, id)
			break
		}
	}

	id := uuid.New().String()
	s.warnings[id] = &SystemWarning{
		ID:        id,
		Category:  category,
		Message:   message,
		Details:   details,
		Source:    source,
		CreatedAt: time.Now(),
	}
	return id
}

// GetWarnings returns all active warnings as value copies, oldest first.
// Callers may safely read or compare the returned structs without holding locks.
func (s *SystemWarningsService) GetWarnings() []*SystemWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*SystemWarning, 0, len(s.warnings))
	for _, w := range s.warnings {
		cp := *w
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// ProviderCircuitOpened records that a provider circuit opened. Implements
// the event bus warning sink; one warning per model, refreshed while the
// circuit keeps rejecting.
func (s *SystemWarningsService) ProviderCircuitOpened(model, detail string) {
	s.AddWarning(WarningCategoryLLMCircuit,
		"LLM provider circuit is open; requests are failing fast", detail, model)
}

// ProviderRecovered clears the circuit warning for a model after a request
// succeeds against it.
func (s *SystemWarningsService) ProviderRecovered(model string) {
	s.ClearBySource(WarningCategoryLLMCircuit, model)
}

// ClearBySource removes a warning matching category + source.
// Used when a provider circuit closes or a cleanup pass recovers.
// Returns true if a warning was removed.
func (s *SystemWarningsService) ClearBySource(category, source string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range s.warnings {
		if w.Category == category && w.Source == source {
			delete(s.warnings, id)
			return true
		}
	}
	return false
}
