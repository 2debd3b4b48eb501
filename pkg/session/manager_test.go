package session_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resultflow/careflow/pkg/adapters/memory"
	"github.com/resultflow/careflow/pkg/domain"
	"github.com/resultflow/careflow/pkg/session"
)

func TestManager_LoadOrStart(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())
	ctx := context.Background()

	t.Run("Creates And Persists", func(t *testing.T) {
		sess, err := mgr.LoadOrStart(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "s1", sess.ID)
		assert.Equal(t, domain.PhaseCategory, sess.Preferences.Phase)

		// The ID is reserved in the store immediately.
		loaded, err := mgr.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "s1", loaded.ID)
	})

	t.Run("Returns Existing", func(t *testing.T) {
		sess, err := mgr.LoadOrStart(ctx, "s1")
		require.NoError(t, err)
		sess.Preferences.Category = domain.CategorySkin
		require.NoError(t, mgr.Save(ctx, "s1", sess))

		again, err := mgr.LoadOrStart(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, domain.CategorySkin, again.Preferences.Category)
	})
}

func TestManager_Delete(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())
	ctx := context.Background()

	_, err := mgr.LoadOrStart(ctx, "s1")
	require.NoError(t, err)

	require.NoError(t, mgr.Delete(ctx, "s1"))

	_, err = mgr.Load(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_WithLockSerializes(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())
	ctx := context.Background()

	const workers = 16
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = mgr.WithLock(ctx, "shared", func(context.Context) error {
				// Unsynchronized access; the race detector flags any overlap.
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestManager_List(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())
	ctx := context.Background()

	_, err := mgr.LoadOrStart(ctx, "a")
	require.NoError(t, err)
	_, err = mgr.LoadOrStart(ctx, "b")
	require.NoError(t, err)

	ids, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}
