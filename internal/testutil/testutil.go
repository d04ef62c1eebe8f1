package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eys-55/infoman-quizzer/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied, using the same open path as production so test schemas never
// drift from the real one.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, database.Close())
	})
	return database
}
