package migrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-backoffice/internal/migrations"
	"clinic-backoffice/pkg/sqlite"
)

func TestUp(t *testing.T) {
	db, err := sqlite.Connect(context.Background(), sqlite.Config{DSN: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, migrations.Up(db.DB))
	// Second run is a no-op.
	require.NoError(t, migrations.Up(db.DB))

	v, dirty, err := migrations.Version(db.DB)
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)
	assert.False(t, dirty)

	for _, table := range []string{"staff", "stock_items", "restock_requests", "treatments", "treatment_medicines"} {
		var n int
		require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table))
		assert.Equal(t, 1, n, table)
	}
}
