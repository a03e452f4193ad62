package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		orderID := kernel.NewUUID()
		staff := actor(user.RoleStaff)

		cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Shipped, "JNE 123", staff)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, order.Shipped, cmd.Target())
		assert.Equal(t, "JNE 123", cmd.Note())
		assert.Equal(t, staff, cmd.Actor())
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, order.Unknown, "", user.Actor{Role: ""})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "role is invalid")
	})

	t.Run("zero value", func(t *testing.T) {
		err := commands.UpdateOrderStatusCommand{}.Validate()

		assert.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})
}
