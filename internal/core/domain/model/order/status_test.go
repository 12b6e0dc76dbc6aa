package order_test

import (
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("pending_and_registered_are_valid", func(t *testing.T) {
		require.NoError(t, order.Pending.Validate())
		require.NoError(t, order.Registered.Validate())
	})

	t.Run("unknown_is_invalid", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out_of_range_value_is_invalid", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "REGISTERED", order.Registered.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_wire_names", func(t *testing.T) {
		pending, err := order.StatusFromString("PENDING")
		require.NoError(t, err)
		assert.Equal(t, order.Pending, pending)

		registered, err := order.StatusFromString("REGISTERED")
		require.NoError(t, err)
		assert.Equal(t, order.Registered, registered)
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("names_are_case_sensitive", func(t *testing.T) {
		_, err := order.StatusFromString("registered")
		require.Error(t, err)
	})
}

func TestStatus_Register(t *testing.T) {
	t.Run("pending_transitions_to_registered", func(t *testing.T) {
		newStatus, err := order.Pending.Register()

		require.NoError(t, err)
		assert.Equal(t, order.Registered, newStatus)
	})

	t.Run("registered_stays_registered", func(t *testing.T) {
		newStatus, err := order.Registered.Register()

		require.NoError(t, err)
		assert.Equal(t, order.Registered, newStatus)
	})

	t.Run("unknown_cannot_register", func(t *testing.T) {
		_, err := order.Unknown.Register()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
