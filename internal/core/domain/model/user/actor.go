package user

import (
	"backoffice/internal/core/domain/model/kernel"
)

// Actor is whoever performs an operation: a dashboard user or a buyer.
// ID is nil when the caller did not identify itself.
type Actor struct {
	ID   *kernel.UUID
	Role Role
}

// NewActor accepts any known role, buyer included.
func NewActor(id *kernel.UUID, role Role) (Actor, error) {
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if id != nil {
		if err := id.Validate(); err != nil {
			return Actor{}, err
		}
	}
	return Actor{ID: id, Role: role}, nil
}

// Validate rejects actors with a role outside the closed role set.
func (a Actor) Validate() error {
	return a.Role.Validate()
}
