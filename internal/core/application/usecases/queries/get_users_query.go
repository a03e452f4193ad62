package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery lists dashboard accounts for the role-management page.
type GetUsersQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewGetUsersQuery(actor user.Actor) (GetUsersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetUsersQuery{}, err
	}
	return GetUsersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

func (q GetUsersQuery) Actor() user.Actor {
	return q.actor
}

// UserView is one account plus what the viewing actor may do with it.
// SelectableRoles always contains Role.
type UserView struct {
	ID              kernel.UUID
	Username        string
	Role            user.Role
	Name            string
	Email           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CanEdit         bool
	CanDelete       bool
	SelectableRoles []user.Role
}
