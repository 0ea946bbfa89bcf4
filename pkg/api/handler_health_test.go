package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/pkg/services"
)

func TestHealthHandler(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Contains(t, resp.Version, "switchyard")
	require.NotNil(t, resp.Database)
	assert.Equal(t, "healthy", resp.Database.Status)
	assert.GreaterOrEqual(t, resp.Database.OpenConnections, 1)
	require.NotNil(t, resp.EventBus)
	assert.Empty(t, resp.Warnings)
}

func TestHealthHandler_DegradedOnWarnings(t *testing.T) {
	ts := newTestServer(t)

	ts.warnings.ProviderCircuitOpened("gpt-4o", "circuit breaker is open")

	rec := ts.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code, "degraded must not trip liveness probes")

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, services.WarningCategoryLLMCircuit, resp.Warnings[0].Category)
	assert.Equal(t, "gpt-4o", resp.Warnings[0].Source)

	// Recovery drops the warning and the status returns to healthy.
	ts.warnings.ProviderRecovered("gpt-4o")
	rec = ts.do(t, http.MethodGet, "/health", nil)
	var after HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.Equal(t, "healthy", after.Status)
	assert.Empty(t, after.Warnings)
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	ts := newTestServer(t)

	// Closing the pool makes the ping fail without tearing down the router.
	require.NoError(t, ts.db.DB().Close())

	rec := ts.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	require.NotNil(t, resp.Database)
	assert.Equal(t, "unhealthy", resp.Database.Status)
}
