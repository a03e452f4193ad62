package commands

import (
	"context"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"
)

// CreateUserCommandHandler creates dashboard accounts.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	access     services.RoleAccessPolicy
	clock      kernel.Clock
}

func NewCreateUserCommandHandler(
	uowFactory UserUoWFactory,
	access services.RoleAccessPolicy,
	clock kernel.Clock,
) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		access:     access,
		clock:      clock,
	}
}

// Handle requires the users:create permission and an initial role the actor
// is allowed to assign.
func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !h.access.CanCreateUsers(actor.Role) {
		return nil, errs.NewAccessDeniedError(actor.Role.String(), "create users")
	}

	if !h.access.CanManageTargetRole(actor.Role, cmd.Role()) {
		return nil, errs.NewAccessDeniedError(actor.Role.String(), fmt.Sprintf("assign role %s", cmd.Role()))
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Username(), cmd.Role(), cmd.Name(), cmd.Email(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
