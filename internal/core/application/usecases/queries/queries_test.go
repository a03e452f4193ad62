package queries_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery(t *testing.T) {
	staffID := kernel.NewUUID()
	staff := user.Actor{ID: &staffID, Role: user.RoleStaff}

	t.Run("default limit", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery(queries.OrdersFilter{}, staff)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, queries.DefaultOrdersLimit, query.Filter().Limit)
		assert.Nil(t, query.Filter().UserID)
	})

	t.Run("invalid paging and status", func(t *testing.T) {
		bad := order.Status(42)

		_, err := queries.NewGetOrdersQuery(queries.OrdersFilter{Status: &bad, Limit: queries.MaxOrdersLimit + 1, Skip: -1}, staff)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "limit")
		assert.Contains(t, err.Error(), "skip")
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("buyer is scoped to own orders", func(t *testing.T) {
		buyerID := kernel.NewUUID()

		query, err := queries.NewGetOrdersQuery(queries.OrdersFilter{}, user.Actor{ID: &buyerID, Role: user.RoleBuyer})

		require.NoError(t, err)
		require.NotNil(t, query.Filter().UserID)
		assert.True(t, query.Filter().UserID.IsEqual(buyerID))
	})

	t.Run("buyer cannot list someone else's orders", func(t *testing.T) {
		buyerID, otherID := kernel.NewUUID(), kernel.NewUUID()

		_, err := queries.NewGetOrdersQuery(queries.OrdersFilter{UserID: &otherID}, user.Actor{ID: &buyerID, Role: user.RoleBuyer})

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("anonymous buyer", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(queries.OrdersFilter{}, user.Actor{Role: user.RoleBuyer})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(queries.OrdersFilter{}, user.Actor{Role: "courier"})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value", func(t *testing.T) {
		assert.ErrorIs(t, queries.GetOrdersQuery{}.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderQuery(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, user.Actor{Role: "guest"})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetUsersQuery(t *testing.T) {
	query, err := queries.NewGetUsersQuery(user.Actor{Role: user.RoleSuperAdmin})
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetUsersQuery(user.Actor{})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.ErrorIs(t, queries.GetUsersQuery{}.Validate(), queries.ErrGetUsersQueryIsNotConstructed)
}

func TestNewCountOrdersByStatusQuery(t *testing.T) {
	require.NoError(t, queries.NewCountOrdersByStatusQuery().Validate())
	assert.ErrorIs(t, queries.CountOrdersByStatusQuery{}.Validate(), queries.ErrCountOrdersByStatusQueryIsNotConstructed)
}
