package user

import (
	"fmt"
	"slices"

	"backoffice/internal/pkg/errs"
)

// Permission is a namespace:action capability string.
type Permission string

const (
	PermissionRoleManagementView Permission = "role_management:view"
	PermissionUsersCreate        Permission = "users:create"
	PermissionUsersUpdate        Permission = "users:update"
	PermissionUsersDelete        Permission = "users:delete"
)

// Permissions lists every known permission.
func Permissions() []Permission {
	return []Permission{
		PermissionRoleManagementView,
		PermissionUsersCreate,
		PermissionUsersUpdate,
		PermissionUsersDelete,
	}
}

func (p Permission) Validate() error {
	if !slices.Contains(Permissions(), p) {
		return errs.NewValueIsInvalidErrorWithCause("permission is invalid", fmt.Errorf("%q is not a known permission", string(p)))
	}
	return nil
}

func (p Permission) String() string {
	return string(p)
}
