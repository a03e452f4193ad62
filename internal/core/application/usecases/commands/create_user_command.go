package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand creates a dashboard account with an initial role.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	role     user.Role
	name     string
	email    string
	actor    user.Actor

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(
	userID kernel.UUID,
	username string,
	role user.Role,
	name string,
	email string,
	actor user.Actor,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setRole(role),
		cmd.setActor(actor),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) UserID() kernel.UUID { return c.userID }
func (c CreateUserCommand) Username() string    { return c.username }
func (c CreateUserCommand) Role() user.Role     { return c.role }
func (c CreateUserCommand) Name() string        { return c.name }
func (c CreateUserCommand) Email() string       { return c.email }
func (c CreateUserCommand) Actor() user.Actor   { return c.actor }

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *CreateUserCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
