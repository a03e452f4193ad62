package services

import (
	"errors"
	"fmt"
	"slices"

	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/errs"
)

// AccessConfig is the static access configuration loaded once at start-up.
type AccessConfig struct {
	// RolePermissions maps a role to the permissions it holds.
	// Roles without an entry hold nothing.
	RolePermissions map[user.Role][]user.Permission

	// ManagerRole is the top-level administrative role. It is the only role
	// that can reassign roles or delete users.
	ManagerRole user.Role

	// ManageableTargets are the roles ManagerRole may assign to, or remove from, other users.
	ManageableTargets []user.Role
}

// DefaultAccessConfig returns the production tables: super-admin holds every
// permission and manages staff accounts only.
func DefaultAccessConfig() AccessConfig {
	return AccessConfig{
		RolePermissions: map[user.Role][]user.Permission{
			user.RoleSuperAdmin: {
				user.PermissionRoleManagementView,
				user.PermissionUsersCreate,
				user.PermissionUsersUpdate,
				user.PermissionUsersDelete,
			},
			user.RoleStaff: {},
		},
		ManagerRole:       user.RoleSuperAdmin,
		ManageableTargets: []user.Role{user.RoleStaff},
	}
}

// RoleAccessPolicy answers permission and role-management questions.
//
// Role management is deliberately narrower than the permission table: holding
// users:update is not enough to reassign a role, only ManagerRole can, and only
// towards ManageableTargets.
type RoleAccessPolicy struct {
	permissions map[user.Role]map[user.Permission]struct{}
	manager     user.Role
	manageable  []user.Role
}

// NewRoleAccessPolicy validates cfg and copies it, so later changes to cfg
// cannot leak into the policy.
func NewRoleAccessPolicy(cfg AccessConfig) (RoleAccessPolicy, error) {
	var errList []error

	permissions := make(map[user.Role]map[user.Permission]struct{}, len(cfg.RolePermissions))
	for role, perms := range cfg.RolePermissions {
		if !role.IsDashboardRole() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"access config", fmt.Errorf("%q is not a dashboard role", role)))
			continue
		}
		set := make(map[user.Permission]struct{}, len(perms))
		for _, perm := range perms {
			if err := perm.Validate(); err != nil {
				errList = append(errList, err)
				continue
			}
			set[perm] = struct{}{}
		}
		permissions[role] = set
	}

	if !cfg.ManagerRole.IsDashboardRole() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"access config", fmt.Errorf("manager role %q is not a dashboard role", cfg.ManagerRole)))
	}

	manageable := make([]user.Role, 0, len(cfg.ManageableTargets))
	for _, target := range cfg.ManageableTargets {
		if !target.IsDashboardRole() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"access config", fmt.Errorf("manageable target %q is not a dashboard role", target)))
			continue
		}
		if !slices.Contains(manageable, target) {
			manageable = append(manageable, target)
		}
	}

	if err := errors.Join(errList...); err != nil {
		return RoleAccessPolicy{}, err
	}

	return RoleAccessPolicy{
		permissions: permissions,
		manager:     cfg.ManagerRole,
		manageable:  manageable,
	}, nil
}

// HasPermission looks the permission up in the role table. Unknown roles hold nothing.
func (p RoleAccessPolicy) HasPermission(role user.Role, perm user.Permission) bool {
	_, ok := p.permissions[role][perm]
	return ok
}

// CanViewRoleManagement reports whether role may open the role-management section.
func (p RoleAccessPolicy) CanViewRoleManagement(role user.Role) bool {
	return p.HasPermission(role, user.PermissionRoleManagementView)
}

// CanCreateUsers reports whether role may create dashboard accounts.
func (p RoleAccessPolicy) CanCreateUsers(role user.Role) bool {
	return p.HasPermission(role, user.PermissionUsersCreate)
}

// CanManageTargetRole is true only when actor is the manager role and target is
// one of its manageable targets.
func (p RoleAccessPolicy) CanManageTargetRole(actor, target user.Role) bool {
	return actor == p.manager && slices.Contains(p.manageable, target)
}

// CanDeleteUser reports whether actor may delete dashboard accounts.
func (p RoleAccessPolicy) CanDeleteUser(actor user.Role) bool {
	return actor == p.manager && p.HasPermission(actor, user.PermissionUsersDelete)
}

// ManageableRoles returns a fresh copy of the roles actor may assign,
// empty for every role except the manager role.
func (p RoleAccessPolicy) ManageableRoles(actor user.Role) []user.Role {
	if actor != p.manager {
		return []user.Role{}
	}
	return slices.Clone(p.manageable)
}

// SelectableRoles is the list offered in a role picker for a user currently
// holding current: the current role first when actor cannot assign it, followed
// by ManageableRoles, without duplicates. The current value is never hidden.
func (p RoleAccessPolicy) SelectableRoles(actor, current user.Role) []user.Role {
	manageable := p.ManageableRoles(actor)
	if slices.Contains(manageable, current) {
		return manageable
	}
	return append([]user.Role{current}, manageable...)
}
