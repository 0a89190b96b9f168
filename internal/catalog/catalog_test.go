package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLite(t *testing.T) *SQLiteCatalog {
	t.Helper()
	c, err := NewSQLiteCatalog(filepath.Join(t.TempDir(), "products.db"))
	require.NoError(t, err)
	require.NoError(t, c.RunMigrations())
	t.Cleanup(func() { c.Close() })
	return c
}

func catalogs(t *testing.T) map[string]Catalog {
	return map[string]Catalog{
		"memory": NewMemoryCatalog(Default()),
		"sqlite": setupSQLite(t),
	}
}

func TestAll_MatchesDefaultList(t *testing.T) {
	for name, c := range catalogs(t) {
		t.Run(name, func(t *testing.T) {
			products, err := c.All(context.Background())
			require.NoError(t, err)
			assert.Equal(t, Default(), products)
		})
	}
}

func TestGet(t *testing.T) {
	for name, c := range catalogs(t) {
		t.Run(name, func(t *testing.T) {
			p, err := c.Get(context.Background(), 5)
			require.NoError(t, err)
			assert.Equal(t, "Wedding Rukhwat", p.Name)
			assert.Len(t, p.Images, 5)

			p, err = c.Get(context.Background(), 8)
			require.NoError(t, err)
			assert.Equal(t, "Price based on customization", p.DisplayPrice())

			_, err = c.Get(context.Background(), 404)
			assert.ErrorIs(t, err, ErrProductNotFound)
		})
	}
}

func TestSearch(t *testing.T) {
	for name, c := range catalogs(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			found, err := c.Search(ctx, "WEDDING")
			require.NoError(t, err)
			require.Len(t, found, 3)
			assert.Equal(t, int64(5), found[0].ID)

			found, err = c.Search(ctx, "   ")
			require.NoError(t, err)
			assert.Len(t, found, 8)

			found, err = c.Search(ctx, "100%")
			require.NoError(t, err)
			assert.Empty(t, found)
		})
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	c := setupSQLite(t)
	require.NoError(t, c.RunMigrations())

	products, err := c.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestMemoryCatalog_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryCatalog(Default()).All(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
