package kernel_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("mints_32_hex_characters_without_separators", func(t *testing.T) {
		id := kernel.NewOrderID()

		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 32)
		assert.NotContains(t, id.String(), "-")
	})

	t.Run("successive_ids_are_unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			id := kernel.NewOrderID()
			assert.False(t, seen[id.String()], "duplicate id minted: %s", id)
			seen[id.String()] = true
		}
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("accepts_any_non_empty_identifier", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("some-external-id")

		require.NoError(t, err)
		assert.Equal(t, "some-external-id", id.String())
	})

	t.Run("rejects_empty_identifier", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a, err := kernel.OrderIDFromString("abc")
	require.NoError(t, err)
	b, err := kernel.OrderIDFromString("abc")
	require.NoError(t, err)
	c := kernel.NewOrderID()

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, err)
	})

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		require.NoError(t, kernel.NewOrderID().Validate())
	})
}
