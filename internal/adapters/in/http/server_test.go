package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backoffice/api"
	httpadapter "backoffice/internal/adapters/in/http"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/generated/servers"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type MockGetOrders struct{ mock.Mock }

func (m *MockGetOrders) Handle(ctx context.Context, q queries.GetOrdersQuery) (queries.GetOrdersQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.GetOrdersQueryResponse), args.Error(1)
}

type MockGetOrder struct{ mock.Mock }

func (m *MockGetOrder) Handle(ctx context.Context, q queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUpdateOrderStatus struct{ mock.Mock }

func (m *MockUpdateOrderStatus) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockGetUsers struct{ mock.Mock }

func (m *MockGetUsers) Handle(ctx context.Context, q queries.GetUsersQuery) ([]queries.UserView, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.UserView), args.Error(1)
}

type MockCreateUser struct{ mock.Mock }

func (m *MockCreateUser) Handle(ctx context.Context, cmd commands.CreateUserCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockChangeUserRole struct{ mock.Mock }

func (m *MockChangeUserRole) Handle(ctx context.Context, cmd commands.ChangeUserRoleCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockDeleteUser struct{ mock.Mock }

func (m *MockDeleteUser) Handle(ctx context.Context, cmd commands.DeleteUserCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type fixture struct {
	getOrders    *MockGetOrders
	getOrder     *MockGetOrder
	createOrder  *MockCreateOrder
	updateStatus *MockUpdateOrderStatus
	getUsers     *MockGetUsers
	createUser   *MockCreateUser
	changeRole   *MockChangeUserRole
	deleteUser   *MockDeleteUser
	router       *echo.Echo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		getOrders:    new(MockGetOrders),
		getOrder:     new(MockGetOrder),
		createOrder:  new(MockCreateOrder),
		updateStatus: new(MockUpdateOrderStatus),
		getUsers:     new(MockGetUsers),
		createUser:   new(MockCreateUser),
		changeRole:   new(MockChangeUserRole),
		deleteUser:   new(MockDeleteUser),
	}

	access, err := services.NewRoleAccessPolicy(services.DefaultAccessConfig())
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := httpadapter.NewServer(httpadapter.Handlers{
		GetOrders:         f.getOrders,
		GetOrder:          f.getOrder,
		CreateOrder:       f.createOrder,
		UpdateOrderStatus: f.updateStatus,
		GetUsers:          f.getUsers,
		CreateUser:        f.createUser,
		ChangeUserRole:    f.changeRole,
		DeleteUser:        f.deleteUser,
	}, services.NewOrderStatusPolicy(), access, logger)

	contract, err := api.Load()
	require.NoError(t, err)

	f.router, err = httpadapter.NewRouter(server, httpadapter.RouterConfig{Logger: logger, Contract: contract})
	require.NoError(t, err)

	t.Cleanup(func() {
		mock.AssertExpectationsForObjects(t,
			f.getOrders, f.getOrder, f.createOrder, f.updateStatus,
			f.getUsers, f.createUser, f.changeRole, f.deleteUser,
		)
	})
	return f
}

func (f *fixture) do(method, target, body string, role user.Role, actorID *kernel.UUID) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if role != "" {
		req.Header.Set(httpadapter.HeaderActorRole, role.String())
	}
	if actorID != nil {
		req.Header.Set(httpadapter.HeaderActorID, actorID.String())
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func newPickupOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem("prod-1", "SKU-1", "Rice 5kg", 75000, 2, "sack")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, order.Pickup, nil, placedAt)
	require.NoError(t, err)
	return o
}

func TestRouter_Health(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRouter_MissingActor_Returns401(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		role user.Role
	}{
		{"no role header", ""},
		{"unknown role", "courier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodGet, "/api/v1/orders", "", tt.role, nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decode[servers.ErrorResponse](t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, "Missing or unknown actor role", body.Message)
		})
	}
}

func TestGetOrders(t *testing.T) {
	t.Run("should return a page for staff", func(t *testing.T) {
		f := newFixture(t)
		summary := queries.OrderSummary{
			ID:             kernel.NewUUID(),
			UserID:         kernel.NewUUID(),
			Status:         order.Processing,
			ShippingMethod: order.Shipping,
			TotalAmount:    150000,
			ItemCount:      2,
			CreatedAt:      placedAt,
			UpdatedAt:      placedAt,
		}
		f.getOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrdersQuery) bool {
			filter := q.Filter()
			return filter.Status != nil && *filter.Status == order.Processing && filter.Limit == 5
		})).Return(queries.GetOrdersQueryResponse{
			Orders: []queries.OrderSummary{summary},
			Total:  1,
			Limit:  5,
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders?status=processing&limit=5", "", user.RoleStaff, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode[servers.OrderPageResponse](t, rec)
		assert.True(t, body.Success)
		require.Len(t, body.Data.Orders, 1)
		assert.Equal(t, servers.OrderStatusProcessing, body.Data.Orders[0].Status)
		assert.Equal(t, "Processing", body.Data.Orders[0].StatusLabel)
		assert.Equal(t, int64(150000), body.Data.Orders[0].TotalAmount)
		assert.Equal(t, int64(1), body.Data.Total)
	})

	t.Run("should reject a status outside the contract", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders?status=lost", "", user.RoleStaff, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, decode[servers.ErrorResponse](t, rec).Success)
	})

	t.Run("should reject a limit above the maximum", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders?limit=500", "", user.RoleAdmin, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("buyer without an id is rejected", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders", "", user.RoleBuyer, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("buyer asking for another buyer's orders is forbidden", func(t *testing.T) {
		f := newFixture(t)
		buyerID := kernel.NewUUID()

		rec := f.do(http.MethodGet, "/api/v1/orders?userId="+kernel.NewUUID().String(), "", user.RoleBuyer, &buyerID)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("should return details with transitions", func(t *testing.T) {
		f := newFixture(t)
		orderID := kernel.NewUUID()
		f.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
			return q.OrderID().IsEqual(orderID) && q.Actor().Role == user.RoleKeuangan
		})).Return(queries.GetOrderQueryResponse{
			OrderSummary: queries.OrderSummary{
				ID:             orderID,
				UserID:         kernel.NewUUID(),
				Status:         order.Pending,
				ShippingMethod: order.Pickup,
				CreatedAt:      placedAt,
				UpdatedAt:      placedAt,
			},
			Logs: []queries.OrderLogView{{Status: order.Pending, Timestamp: placedAt}},
			AvailableTransitions: services.NewOrderStatusPolicy().
				NextStatuses(order.Pending, order.Pickup, user.RoleKeuangan),
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), "", user.RoleKeuangan, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode[servers.OrderResponse](t, rec)
		require.Len(t, body.Data.AvailableTransitions, 2)
		assert.Equal(t, servers.OrderStatusProcessing, body.Data.AvailableTransitions[0].Status)
		assert.False(t, body.Data.AvailableTransitions[0].RequiresConfirmation)
		assert.Equal(t, servers.Destructive, body.Data.AvailableTransitions[1].Severity)
		assert.True(t, body.Data.AvailableTransitions[1].RequiresConfirmation)
		assert.Nil(t, body.Data.Address)
	})

	t.Run("should map not found to 404", func(t *testing.T) {
		f := newFixture(t)
		orderID := kernel.NewUUID()
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID)).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), "", user.RoleStaff, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, decode[servers.ErrorResponse](t, rec).Message, "not found")
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		f := newFixture(t)
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetOrderQueryResponse{}, assert.AnError).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), "", user.RoleStaff, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decode[servers.ErrorResponse](t, rec).Message)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("should return the updated order and its next options", func(t *testing.T) {
		f := newFixture(t)
		staffID := kernel.NewUUID()
		stored := newPickupOrder(t)
		require.NoError(t, stored.ChangeStatus(order.Processing, services.ManualTransferNote, &staffID, placedAt.Add(time.Hour)))

		f.updateStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
			return cmd.OrderID().IsEqual(stored.ID()) && cmd.Target() == order.Processing && cmd.Actor().Role == user.RoleStaff
		})).Return(stored, nil).Once()

		rec := f.do(http.MethodPatch, "/api/v1/orders/"+stored.ID().String()+"/status",
			`{"status":"processing"}`, user.RoleStaff, &staffID)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode[servers.OrderResponse](t, rec)
		require.NotNil(t, body.Message)
		assert.Equal(t, "Order status updated to Processing", *body.Message)
		assert.Equal(t, servers.OrderStatusProcessing, body.Data.Status)
		require.Len(t, body.Data.Logs, 2)
		assert.Equal(t, services.ManualTransferNote, body.Data.Logs[1].Note)
		require.Len(t, body.Data.AvailableTransitions, 2)
		assert.Equal(t, servers.OrderStatusReadyForPickup, body.Data.AvailableTransitions[0].Status)
		assert.Equal(t, servers.OrderStatusCancelled, body.Data.AvailableTransitions[1].Status)
	})

	t.Run("should map a refused transition to 409", func(t *testing.T) {
		f := newFixture(t)
		f.updateStatus.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewTransitionIsNotAllowedError("processing", "cancelled", "buyer")).Once()
		buyerID := kernel.NewUUID()

		rec := f.do(http.MethodPatch, "/api/v1/orders/"+kernel.NewUUID().String()+"/status",
			`{"status":"cancelled"}`, user.RoleBuyer, &buyerID)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should hide another buyer's order", func(t *testing.T) {
		tests := []struct {
			name    string
			actorID *kernel.UUID
		}{
			{"foreign buyer", func() *kernel.UUID { id := kernel.NewUUID(); return &id }()},
			{"buyer without id", nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				orderID := kernel.NewUUID()
				f.updateStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
					if cmd.Actor().Role != user.RoleBuyer {
						return false
					}
					if tt.actorID == nil {
						return cmd.Actor().ID == nil
					}
					return cmd.Actor().ID != nil && cmd.Actor().ID.IsEqual(*tt.actorID)
				})).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()

				rec := f.do(http.MethodPatch, "/api/v1/orders/"+orderID.String()+"/status",
					`{"status":"cancelled"}`, user.RoleBuyer, tt.actorID)

				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.False(t, decode[servers.ErrorResponse](t, rec).Success)
			})
		}
	})

	t.Run("should reject an unknown target status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPatch, "/api/v1/orders/"+kernel.NewUUID().String()+"/status",
			`{"status":"teleported"}`, user.RoleStaff, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a malformed body", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPatch, "/api/v1/orders/"+kernel.NewUUID().String()+"/status",
			`{"status":`, user.RoleStaff, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateOrder(t *testing.T) {
	t.Run("should register a pickup order", func(t *testing.T) {
		f := newFixture(t)
		created := newPickupOrder(t)
		f.createOrder.On("Handle", mock.Anything, mock.Anything).Return(created, nil).Once()

		body := `{"userId":"` + created.UserID().String() + `","shippingMethod":"pickup",` +
			`"items":[{"productId":"prod-1","name":"Rice 5kg","price":75000,"quantity":2}]}`
		rec := f.do(http.MethodPost, "/api/v1/orders", body, user.RoleAdmin, nil)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		resp := decode[servers.OrderResponse](t, rec)
		assert.Equal(t, servers.OrderStatusPending, resp.Data.Status)
		assert.Equal(t, int64(150000), resp.Data.TotalAmount)
	})

	t.Run("should require an address for shipping", func(t *testing.T) {
		f := newFixture(t)

		body := `{"userId":"` + kernel.NewUUID().String() + `","shippingMethod":"shipping",` +
			`"items":[{"productId":"prod-1","name":"Rice 5kg","price":75000,"quantity":2}]}`
		rec := f.do(http.MethodPost, "/api/v1/orders", body, user.RoleAdmin, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetUsers(t *testing.T) {
	t.Run("should render affordances", func(t *testing.T) {
		f := newFixture(t)
		f.getUsers.On("Handle", mock.Anything, mock.Anything).Return([]queries.UserView{{
			ID:              kernel.NewUUID(),
			Username:        "sari",
			Role:            user.RoleStaff,
			CreatedAt:       placedAt,
			UpdatedAt:       placedAt,
			CanEdit:         true,
			CanDelete:       true,
			SelectableRoles: []user.Role{user.RoleStaff},
		}}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/users", "", user.RoleSuperAdmin, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode[servers.UserListResponse](t, rec)
		require.Len(t, body.Data, 1)
		assert.True(t, body.Data[0].CanEdit)
		assert.Equal(t, []servers.UserRole{servers.UserRoleStaff}, body.Data[0].SelectableRoles)
	})

	t.Run("should map access denied to 403", func(t *testing.T) {
		f := newFixture(t)
		f.getUsers.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewAccessDeniedError("staff", "view role management")).Once()

		rec := f.do(http.MethodGet, "/api/v1/users", "", user.RoleStaff, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("should create a staff account", func(t *testing.T) {
		f := newFixture(t)
		created, err := user.NewUser(kernel.NewUUID(), "sari", user.RoleStaff, "Sari", "sari@example.com", placedAt)
		require.NoError(t, err)
		f.createUser.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateUserCommand) bool {
			return cmd.Username() == "sari" && cmd.Role() == user.RoleStaff
		})).Return(created, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/users",
			`{"username":"sari","role":"staff","name":"Sari","email":"sari@example.com"}`, user.RoleSuperAdmin, nil)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decode[servers.UserResponse](t, rec)
		assert.Equal(t, "sari", body.Data.Username)
		assert.True(t, body.Data.CanEdit)
		assert.True(t, body.Data.CanDelete)
	})

	t.Run("should reject a bad email", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/users",
			`{"username":"sari","role":"staff","email":"not-an-email"}`, user.RoleSuperAdmin, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChangeUserRole(t *testing.T) {
	f := newFixture(t)
	target := kernel.NewUUID()
	f.changeRole.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewAccessDeniedError("admin", "manage role admin")).Once()

	rec := f.do(http.MethodPatch, "/api/v1/users/"+target.String()+"/role", `{"role":"staff"}`, user.RoleAdmin, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	target := kernel.NewUUID()
	f.deleteUser.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteUserCommand) bool {
		return cmd.UserID().IsEqual(target)
	})).Return(nil).Once()

	rec := f.do(http.MethodDelete, "/api/v1/users/"+target.String(), "", user.RoleSuperAdmin, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[servers.MessageResponse](t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "User deleted", body.Message)
}
