package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resultflow/careflow/pkg/domain"
)

// RunSessionStoreContract verifies that a SessionStore implementation
// adheres to the interface contract. Store adapters run this suite in
// their own tests.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	sessionID := "contract-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		sess := domain.NewSession(sessionID)
		sess.Preferences.Category = domain.CategoryHair
		sess.Preferences.Phase = domain.PhaseConcerns
		sess.Messages = append(sess.Messages, domain.Message{
			ID:   "m1",
			Role: domain.RoleAssistant,
			Text: "hello",
		})
		sess.Cart = append(sess.Cart, domain.CartItem{ProductID: "p1", Name: "Shampoo", Price: 19, Quantity: 2})

		err := store.Save(ctx, sessionID, sess)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, domain.CategoryHair, loaded.Preferences.Category)
		require.Len(t, loaded.Messages, 1)
		assert.Equal(t, "hello", loaded.Messages[0].Text)
		require.Len(t, loaded.Cart, 1)
		assert.Equal(t, 2, loaded.Cart[0].Quantity)
	})

	t.Run("Load Isolation", func(t *testing.T) {
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)

		// Mutating the loaded copy must not leak into the store.
		loaded.Cart[0].Quantity = 99
		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 2, again.Cart[0].Quantity)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewSession(sessionID))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewSession(id1))
		_ = store.Save(ctx, id2, domain.NewSession(id2))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
