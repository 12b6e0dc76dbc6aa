package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterOrderCommand_Success(t *testing.T) {
	cmd, err := commands.NewRegisterOrderCommand("cust-1", "742 Evergreen Terrace", testItems())

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "cust-1", cmd.CustomerID())
	assert.Equal(t, "742 Evergreen Terrace", cmd.Address())
	assert.Len(t, cmd.Items(), 1)
}

func TestNewRegisterOrderCommand_EmptyCustomer(t *testing.T) {
	_, err := commands.NewRegisterOrderCommand("", "somewhere", testItems())

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "customerId")
}

func TestNewRegisterOrderCommand_EmptyAddress(t *testing.T) {
	_, err := commands.NewRegisterOrderCommand("cust-1", "", testItems())

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "address")
}

func TestNewRegisterOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewRegisterOrderCommand("cust-1", "somewhere", nil)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "items")
}

func TestNewRegisterOrderCommand_CollectsAllValidationErrors(t *testing.T) {
	_, err := commands.NewRegisterOrderCommand("", "", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "customerId")
	assert.Contains(t, err.Error(), "address")
	assert.Contains(t, err.Error(), "items")
}

func TestNewRegisterOrderCommand_ItemsAreCopied(t *testing.T) {
	items := []order.Item{order.NewItem("prod-1", 2, 9.99)}
	cmd, err := commands.NewRegisterOrderCommand("cust-1", "somewhere", items)
	require.NoError(t, err)

	items[0] = order.NewItem("prod-2", 1, 1.00)

	assert.Equal(t, "prod-1", cmd.Items()[0].ProductID())
}

func TestRegisterOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.RegisterOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterOrderCommandIsNotConstructed)
}
