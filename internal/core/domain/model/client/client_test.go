package client_test

import (
	"testing"

	"taza/internal/core/domain/model/client"
	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("should create client with zero points", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := client.NewClient(id, "Aigerim")

		require.NoError(t, err)
		assert.Equal(t, id, c.ID())
		assert.Equal(t, "Aigerim", c.Name())
		assert.Zero(t, c.LoyaltyPoints())
		assert.NoError(t, c.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := client.NewClient(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestClient_AwardPoints(t *testing.T) {
	t.Run("should accumulate points", func(t *testing.T) {
		c, err := client.NewClient(kernel.NewUUID(), "Dias")
		require.NoError(t, err)

		require.NoError(t, c.AwardPoints(client.CompletionPoints))
		require.NoError(t, c.AwardPoints(client.CompletionPoints))

		assert.Equal(t, 100, c.LoyaltyPoints())
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		c, err := client.NewClient(kernel.NewUUID(), "Dias")
		require.NoError(t, err)

		require.ErrorIs(t, c.AwardPoints(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, c.AwardPoints(-10), errs.ErrValueIsOutOfRange)
		assert.Zero(t, c.LoyaltyPoints())
	})
}

func TestRestoreClient(t *testing.T) {
	t.Run("should restore balance", func(t *testing.T) {
		c, err := client.RestoreClient(kernel.NewUUID(), "Aruzhan", 150)

		require.NoError(t, err)
		assert.Equal(t, 150, c.LoyaltyPoints())
	})

	t.Run("should reject negative balance", func(t *testing.T) {
		_, err := client.RestoreClient(kernel.NewUUID(), "Aruzhan", -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestClient_Validate(t *testing.T) {
	t.Run("should fail for client created without constructor", func(t *testing.T) {
		var c client.Client

		assert.ErrorIs(t, c.Validate(), client.ErrClientIsNotConstructed)
	})
}
