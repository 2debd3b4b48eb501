package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resultflow/careflow/internal/runtime"
	"github.com/resultflow/careflow/pkg/domain"
)

func products(ids ...string) []domain.Product {
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Product{ID: id, Name: id, Price: 10})
	}
	return out
}

func TestSelection_ToggleParity(t *testing.T) {
	sel := runtime.NewSelection()

	for i := 1; i <= 7; i++ {
		sel.Toggle("p1")
		assert.Equal(t, i%2 == 1, sel.Has("p1"), "after %d toggles", i)
	}
}

func TestSelection_ToggleAll(t *testing.T) {
	batch := products("a", "b", "c")

	t.Run("Selects Everything", func(t *testing.T) {
		sel := runtime.NewSelection()
		sel.ToggleAll(batch)
		assert.Equal(t, 3, sel.Len())
	})

	t.Run("Clears When All Selected", func(t *testing.T) {
		sel := runtime.NewSelection()
		sel.ToggleAll(batch)
		sel.ToggleAll(batch)
		assert.Zero(t, sel.Len())
	})

	t.Run("Replaces Partial Selection", func(t *testing.T) {
		sel := runtime.NewSelection()
		sel.Toggle("a")
		sel.Toggle("zz")
		sel.ToggleAll(batch)

		assert.Equal(t, 3, sel.Len())
		assert.False(t, sel.Has("zz"), "select-all replaces, it does not union")
	})

	t.Run("Empty Batch Clears", func(t *testing.T) {
		sel := runtime.NewSelection()
		sel.Toggle("a")
		sel.ToggleAll(nil)
		assert.Zero(t, sel.Len())
	})
}

func TestSelection_Drain(t *testing.T) {
	sel := runtime.NewSelection()
	sel.Toggle("a")
	sel.Toggle("c")
	sel.Toggle("gone") // not among the candidates

	picked := sel.Drain(products("a", "b", "c"))

	require.Len(t, picked, 2)
	assert.Equal(t, "a", picked[0].ID)
	assert.Equal(t, "c", picked[1].ID)
	assert.Zero(t, sel.Len(), "drain clears unconditionally")
}

func TestSelection_ListSorted(t *testing.T) {
	sel := runtime.NewSelection()
	sel.Toggle("z")
	sel.Toggle("a")
	sel.Toggle("m")

	assert.Equal(t, []string{"a", "m", "z"}, sel.List())
}
