package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/pkg/events"
)

var _ events.WarningSink = (*SystemWarningsService)(nil)

func TestAddWarning_ReplacesSameCategoryAndSource(t *testing.T) {
	svc := NewSystemWarningsService()

	first := svc.AddWarning(WarningCategoryLLMCircuit, "circuit open", "detail 1", "gpt-4o")
	second := svc.AddWarning(WarningCategoryLLMCircuit, "circuit still open", "detail 2", "gpt-4o")
	assert.NotEqual(t, first, second)

	got := svc.GetWarnings()
	require.Len(t, got, 1)
	assert.Equal(t, second, got[0].ID)
	assert.Equal(t, "circuit still open", got[0].Message)
	assert.Equal(t, "detail 2", got[0].Details)

	// A different source is a distinct warning.
	svc.AddWarning(WarningCategoryLLMCircuit, "circuit open", "", "claude-3")
	assert.Len(t, svc.GetWarnings(), 2)
}

func TestGetWarnings_OldestFirst(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryRetention, "cleanup failing", "", "audit_trim")
	svc.AddWarning(WarningCategoryLLMCircuit, "circuit open", "", "gpt-4o")
	svc.AddWarning(WarningCategoryRetention, "cleanup failing", "", "idle_sessions")

	got := svc.GetWarnings()
	require.Len(t, got, 3)
	assert.Equal(t, "audit_trim", got[0].Source)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.Before(got[i-1].CreatedAt))
	}
}

func TestClearBySource(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryLLMCircuit, "circuit open", "", "gpt-4o")
	svc.AddWarning(WarningCategoryRetention, "cleanup failing", "", "gpt-4o")

	assert.True(t, svc.ClearBySource(WarningCategoryLLMCircuit, "gpt-4o"))
	assert.False(t, svc.ClearBySource(WarningCategoryLLMCircuit, "gpt-4o"), "already cleared")

	got := svc.GetWarnings()
	require.Len(t, got, 1)
	assert.Equal(t, WarningCategoryRetention, got[0].Category)
}

func TestProviderSink_RoundTrip(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.ProviderCircuitOpened("gpt-4o", "5 consecutive failures")
	got := svc.GetWarnings()
	require.Len(t, got, 1)
	assert.Equal(t, WarningCategoryLLMCircuit, got[0].Category)
	assert.Equal(t, "gpt-4o", got[0].Source)
	assert.Equal(t, "5 consecutive failures", got[0].Details)

	// Recovery for a different model leaves the warning in place.
	svc.ProviderRecovered("claude-3")
	assert.Len(t, svc.GetWarnings(), 1)

	svc.ProviderRecovered("gpt-4o")
	assert.Empty(t, svc.GetWarnings())
}
