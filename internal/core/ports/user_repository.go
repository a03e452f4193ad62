package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
)

// UserRepository stores dashboard accounts.
type UserRepository interface {
	// Add persists a new account. Usernames are unique.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists the mutable fields of an existing account.
	Update(ctx context.Context, aggregate *user.User) error

	// Get returns ObjectNotFoundError when no account has the given id.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// Delete removes an account. Returns ObjectNotFoundError when it does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
