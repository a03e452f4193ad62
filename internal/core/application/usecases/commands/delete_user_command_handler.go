package commands

import (
	"context"

	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"
)

// DeleteUserCommandHandler removes dashboard accounts. Only the manager role may delete.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	access     services.RoleAccessPolicy
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory, access services.RoleAccessPolicy) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
		access:     access,
	}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if role := cmd.Actor().Role; !h.access.CanDeleteUser(role) {
		return errs.NewAccessDeniedError(role.String(), "delete users")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
