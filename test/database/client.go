// Package database provides shared Postgres helpers for tests.
package database

import (
	"testing"

	"github.com/switchyard-ai/switchyard/pkg/database"
	"github.com/switchyard-ai/switchyard/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL service.
// In local dev: spins up a testcontainer with PostgreSQL.
// The schema and connections are cleaned up automatically when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
