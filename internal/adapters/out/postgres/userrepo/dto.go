// Package userrepo maps dashboard accounts to the users table.
package userrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the row of the users table.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Role      string    `gorm:"type:varchar(32);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null;default:''"`
	Email     string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:        aggregate.ID().Bytes(),
		Username:  aggregate.Username(),
		Role:      aggregate.Role().String(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, user.Role(dto.Role), dto.Name, dto.Email, dto.CreatedAt, dto.UpdatedAt)
}
