package user

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User was not created through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is a dashboard account.
//
// User follows these invariants:
//   - Must have a valid identifier and a non-empty username
//   - Role is always a dashboard role (never buyer)
//   - Email, when present, is a valid address
type User struct {
	id        kernel.UUID
	username  string
	role      Role
	name      string
	email     string
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a dashboard account.
func NewUser(id kernel.UUID, username string, role Role, name, email string, createdAt time.Time) (*User, error) {
	return RestoreUser(id, username, role, name, email, createdAt, createdAt)
}

// RestoreUser rebuilds a User from persistence, re-checking every invariant.
func RestoreUser(
	id kernel.UUID,
	username string,
	role Role,
	name string,
	email string,
	createdAt time.Time,
	updatedAt time.Time,
) (*User, error) {
	u := &User{
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setRole(role),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was constructed through NewUser or RestoreUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Role() Role           { return u.role }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// ChangeRole assigns a new dashboard role. Whether the acting user may do so
// is decided by the access policy before this method is called.
func (u *User) ChangeRole(role Role, at time.Time) error {
	if err := u.setRole(role); err != nil {
		return err
	}
	u.updatedAt = at
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setRole(role Role) error {
	if !role.IsDashboardRole() {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a dashboard role", string(role)))
	}
	u.role = role
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		u.email = ""
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}
