package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resultflow/careflow/pkg/catalog"
	"github.com/resultflow/careflow/pkg/domain"
)

func TestBuiltin(t *testing.T) {
	cat := catalog.Builtin()

	for _, category := range []domain.Category{domain.CategoryHair, domain.CategorySkin} {
		rec, ok := cat.Recommendation(category)
		require.True(t, ok, "category %s", category)
		assert.NotEmpty(t, rec.Title)
		require.Len(t, rec.Products, 4)
		for _, p := range rec.Products {
			assert.NotEmpty(t, p.ID)
			assert.Greater(t, p.Price, 0.0)
		}
	}

	_, ok := cat.Recommendation(domain.CategoryUnset)
	assert.False(t, ok)
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("Valid Document", func(t *testing.T) {
		path := writeCatalog(t, `
hair:
  title: Hair Plan
  description: For hair.
  discount_percent: 15
  savings_amount: 11.78
  products:
    - id: p1
      name: Minoxidil
      price: 15.0
      image: /img/p1.png
skin:
  title: Skin Plan
  products:
    - id: p2
      name: Cleanser
      price: 18.0
`)

		cat, err := catalog.LoadFile(path)
		require.NoError(t, err)

		hair, ok := cat.Recommendation(domain.CategoryHair)
		require.True(t, ok)
		assert.Equal(t, "Hair Plan", hair.Title)
		assert.Equal(t, 15, hair.DiscountPercent)
		require.Len(t, hair.Products, 1)
		assert.Equal(t, "Minoxidil", hair.Products[0].Name)
		assert.InDelta(t, 15.0, hair.Products[0].Price, 0.001)

		skin, ok := cat.Recommendation(domain.CategorySkin)
		require.True(t, ok)
		assert.Equal(t, "Skin Plan", skin.Title)
	})

	t.Run("Unknown Category", func(t *testing.T) {
		path := writeCatalog(t, `
pets:
  title: Pet Plan
`)
		_, err := catalog.LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown catalog category")
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := writeCatalog(t, "hair: [unclosed")
		_, err := catalog.LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
