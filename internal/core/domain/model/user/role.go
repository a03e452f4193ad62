package user

import (
	"fmt"
	"slices"

	"backoffice/internal/pkg/errs"
)

// Role is the permission class of an actor.
type Role string

const (
	RoleSuperAdmin Role = "super-admin"
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
	RoleKeuangan   Role = "keuangan"

	// RoleBuyer is the storefront customer. It never owns a dashboard account.
	RoleBuyer Role = "buyer"
)

// DashboardRoles lists the roles a dashboard User can hold.
func DashboardRoles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleStaff, RoleKeuangan}
}

// Roles lists every known actor role.
func Roles() []Role {
	return append(DashboardRoles(), RoleBuyer)
}

// ParseRole accepts any known actor role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate rejects strings outside the closed role set.
func (r Role) Validate() error {
	if !slices.Contains(Roles(), r) {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", string(r)))
	}
	return nil
}

// IsDashboardRole reports whether the role can be assigned to a dashboard User.
func (r Role) IsDashboardRole() bool {
	return slices.Contains(DashboardRoles(), r)
}

// IsBuyerClass reports whether the role follows the buyer transition rules.
func (r Role) IsBuyerClass() bool {
	return r == RoleBuyer
}

// IsStaffClass reports whether the role follows the staff/admin transition rules.
// Unknown strings are neither buyer-class nor staff-class.
func (r Role) IsStaffClass() bool {
	return r.IsDashboardRole()
}

func (r Role) String() string {
	return string(r)
}
