package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/generated/servers"
	"backoffice/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type ordersLister interface {
	Handle(ctx context.Context, query queries.GetOrdersQuery) (queries.GetOrdersQueryResponse, error)
}

type orderGetter interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

type orderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type orderStatusUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
}

type usersLister interface {
	Handle(ctx context.Context, query queries.GetUsersQuery) ([]queries.UserView, error)
}

type userCreator interface {
	Handle(ctx context.Context, cmd commands.CreateUserCommand) (*user.User, error)
}

type userRoleChanger interface {
	Handle(ctx context.Context, cmd commands.ChangeUserRoleCommand) (*user.User, error)
}

type userDeleter interface {
	Handle(ctx context.Context, cmd commands.DeleteUserCommand) error
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	GetOrders         ordersLister
	GetOrder          orderGetter
	CreateOrder       orderCreator
	UpdateOrderStatus orderStatusUpdater
	GetUsers          usersLister
	CreateUser        userCreator
	ChangeUserRole    userRoleChanger
	DeleteUser        userDeleter
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	policy   services.OrderStatusPolicy
	access   services.RoleAccessPolicy
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(
	handlers Handlers,
	policy services.OrderStatusPolicy,
	access services.RoleAccessPolicy,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers: handlers,
		policy:   policy,
		access:   access,
		logger:   logger.With("component", "http_server"),
	}
}

// GetOrders godoc
//
//	@Summary	List orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Param		status	query		string	false	"Order status"
//	@Param		userId	query		string	false	"Buyer ID"
//	@Param		limit	query		int		false	"Page size"	default(20)
//	@Param		skip	query		int		false	"Offset"
//	@Success	200		{object}	servers.OrderPageResponse
//	@Failure	400		{object}	servers.ErrorResponse
//	@Failure	401		{object}	servers.ErrorResponse
//	@Router		/orders [get]
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	filter := queries.OrdersFilter{}
	if params.Status != nil {
		status, parseErr := order.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return s.respondError(ctx, parseErr)
		}
		filter.Status = &status
	}
	if params.UserId != nil {
		userID, idErr := kernel.UUIDFromBytes(params.UserId[:])
		if idErr != nil {
			return s.respondError(ctx, idErr)
		}
		filter.UserID = &userID
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}
	if params.Skip != nil {
		filter.Skip = *params.Skip
	}

	query, err := queries.NewGetOrdersQuery(filter, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	page, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderPageResponse{
		Success: true,
		Data:    toOrderPage(page),
	})
}

// CreateOrder godoc
//
//	@Summary	Register an order placed outside the back office
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		servers.NewOrder	true	"Order"
//	@Success	201		{object}	servers.OrderResponse
//	@Failure	400		{object}	servers.ErrorResponse
//	@Failure	403		{object}	servers.ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateOrderJSONRequestBody
	if err = s.bindAndValidate(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := newCreateOrderCommand(body, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderResponse{
		Success: true,
		Data:    toOrderDetails(created, s.policy.NextStatuses(created.Status(), created.ShippingMethod(), actor.Role)),
	})
}

// GetOrder godoc
//
//	@Summary	Get an order with its history and the status changes available to the caller
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"Order ID"
//	@Success	200		{object}	servers.OrderResponse
//	@Failure	404		{object}	servers.ErrorResponse
//	@Router		/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	details, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Success: true,
		Data:    viewToOrderDetails(details),
	})
}

// UpdateOrderStatus godoc
//
//	@Summary	Change the status of an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string						true	"Order ID"
//	@Param		body	body		servers.UpdateOrderStatus	true	"Target status"
//	@Success	200		{object}	servers.OrderResponse
//	@Failure	404		{object}	servers.ErrorResponse
//	@Failure	409		{object}	servers.ErrorResponse
//	@Router		/orders/{orderId}/status [patch]
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.UpdateOrderStatusJSONRequestBody
	if err = s.bindAndValidate(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.respondError(ctx, err)
	}
	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var note string
	if body.Note != nil {
		note = *body.Note
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, target, note, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if logs := updated.Logs(); len(logs) >= 2 {
		metrics.OrderStatusTransitionsTotal.WithLabelValues(logs[len(logs)-2].Status().String(), target.String()).Inc()
	}

	message := fmt.Sprintf("Order status updated to %s", target.Label())
	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Success: true,
		Message: &message,
		Data:    toOrderDetails(updated, s.policy.NextStatuses(updated.Status(), updated.ShippingMethod(), actor.Role)),
	})
}

// GetUsers godoc
//
//	@Summary	List dashboard users with the actions available to the caller
//	@Tags		users
//	@Produce	json
//	@Success	200	{object}	servers.UserListResponse
//	@Failure	403	{object}	servers.ErrorResponse
//	@Router		/users [get]
func (s *Server) GetUsers(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUsersQuery(actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	views, err := s.handlers.GetUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	data := make([]servers.User, 0, len(views))
	for _, v := range views {
		data = append(data, viewToUser(v))
	}

	return ctx.JSON(http.StatusOK, servers.UserListResponse{Success: true, Data: data})
}

// CreateUser godoc
//
//	@Summary	Create a dashboard user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		servers.NewUser	true	"User"
//	@Success	201		{object}	servers.UserResponse
//	@Failure	400		{object}	servers.ErrorResponse
//	@Failure	403		{object}	servers.ErrorResponse
//	@Router		/users [post]
func (s *Server) CreateUser(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateUserJSONRequestBody
	if err = s.bindAndValidate(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := newCreateUserCommand(body, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	message := fmt.Sprintf("User %s created", created.Username())
	return ctx.JSON(http.StatusCreated, servers.UserResponse{
		Success: true,
		Message: &message,
		Data:    s.toUser(created, actor.Role),
	})
}

// ChangeUserRole godoc
//
//	@Summary	Change the role of a dashboard user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		userId	path		string					true	"User ID"
//	@Param		body	body		servers.ChangeUserRole	true	"New role"
//	@Success	200		{object}	servers.UserResponse
//	@Failure	403		{object}	servers.ErrorResponse
//	@Failure	404		{object}	servers.ErrorResponse
//	@Router		/users/{userId}/role [patch]
func (s *Server) ChangeUserRole(ctx echo.Context, userID servers.UserId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.ChangeUserRoleJSONRequestBody
	if err = s.bindAndValidate(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeUserRoleCommand(id, user.Role(body.Role), actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.handlers.ChangeUserRole.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	message := fmt.Sprintf("Role of %s changed to %s", updated.Username(), updated.Role())
	return ctx.JSON(http.StatusOK, servers.UserResponse{
		Success: true,
		Message: &message,
		Data:    s.toUser(updated, actor.Role),
	})
}

// DeleteUser godoc
//
//	@Summary	Delete a dashboard user
//	@Tags		users
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{object}	servers.MessageResponse
//	@Failure	403		{object}	servers.ErrorResponse
//	@Failure	404		{object}	servers.ErrorResponse
//	@Router		/users/{userId} [delete]
func (s *Server) DeleteUser(ctx echo.Context, userID servers.UserId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteUserCommand(id, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.MessageResponse{Success: true, Message: "User deleted"})
}

func (s *Server) bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return invalidBody(err)
	}
	return ctx.Validate(body)
}

func (s *Server) toUser(u *user.User, actorRole user.Role) servers.User {
	return viewToUser(queries.UserView{
		ID:              u.ID(),
		Username:        u.Username(),
		Role:            u.Role(),
		Name:            u.Name(),
		Email:           u.Email(),
		CreatedAt:       u.CreatedAt(),
		UpdatedAt:       u.UpdatedAt(),
		CanEdit:         s.access.CanManageTargetRole(actorRole, u.Role()),
		CanDelete:       s.access.CanDeleteUser(actorRole),
		SelectableRoles: s.access.SelectableRoles(actorRole, u.Role()),
	})
}
