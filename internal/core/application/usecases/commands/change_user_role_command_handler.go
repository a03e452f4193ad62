package commands

import (
	"context"
	"fmt"
	"slices"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"
)

// ChangeUserRoleCommandHandler reassigns roles under the role-management rules.
type ChangeUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
	access     services.RoleAccessPolicy
	clock      kernel.Clock
}

func NewChangeUserRoleCommandHandler(
	uowFactory UserUoWFactory,
	access services.RoleAccessPolicy,
	clock kernel.Clock,
) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{
		uowFactory: uowFactory,
		access:     access,
		clock:      clock,
	}
}

// Handle requires that the actor can manage the user's current role and that
// the new role is among the roles the actor may assign.
func (h ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !h.access.CanManageTargetRole(actor.Role, u.Role()) {
		return nil, errs.NewAccessDeniedError(actor.Role.String(), fmt.Sprintf("manage users with role %s", u.Role()))
	}

	if !slices.Contains(h.access.ManageableRoles(actor.Role), cmd.NewRole()) {
		return nil, errs.NewAccessDeniedError(actor.Role.String(), fmt.Sprintf("assign role %s", cmd.NewRole()))
	}

	if err = u.ChangeRole(cmd.NewRole(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
