package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

// ChangeUserRoleCommand reassigns the role of a dashboard account.
type ChangeUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	newRole user.Role
	actor   user.Actor

	guard guard.ConstructorGuard
}

func NewChangeUserRoleCommand(userID kernel.UUID, newRole user.Role, actor user.Actor) (ChangeUserRoleCommand, error) {
	cmd := ChangeUserRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setNewRole(newRole),
		cmd.setActor(actor),
	); err != nil {
		return ChangeUserRoleCommand{}, err
	}

	return cmd, nil
}

func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

func (c ChangeUserRoleCommand) UserID() kernel.UUID { return c.userID }
func (c ChangeUserRoleCommand) NewRole() user.Role  { return c.newRole }
func (c ChangeUserRoleCommand) Actor() user.Actor   { return c.actor }

func (c *ChangeUserRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *ChangeUserRoleCommand) setNewRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.newRole = role
	return nil
}

func (c *ChangeUserRoleCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
