package persistence

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNamesOrderedAndComplete(t *testing.T) {
	names, err := MigrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	assert.True(t, sort.StringsAreSorted(names))
	assert.Equal(t, []string{
		"0001_accounts.sql",
		"0002_users.sql",
		"0003_books.sql",
		"0004_cart_items.sql",
		"0005_addresses.sql",
	}, names)
}

func TestMigrationsAreIdempotentStatements(t *testing.T) {
	names, err := MigrationNames()
	require.NoError(t, err)

	for _, name := range names {
		content, err := migrationFiles.ReadFile("migrations/" + name)
		require.NoError(t, err)
		assert.Contains(t, string(content), "IF NOT EXISTS", "migration %s must be re-runnable", name)
		assert.False(t, strings.Contains(string(content), "DROP "), "migration %s must not drop objects", name)
	}
}
