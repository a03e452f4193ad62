package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetUsersQueryHandler struct {
	db     *gorm.DB
	access services.RoleAccessPolicy
}

func NewGetUsersQueryHandler(db *gorm.DB, access services.RoleAccessPolicy) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db, access: access}
}

// Handle is only available to roles that can see the role-management page.
// Users are sorted by username.
func (h GetUsersQueryHandler) Handle(ctx context.Context, query GetUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !h.access.CanViewRoleManagement(actor.Role) {
		return nil, errs.NewAccessDeniedError(actor.Role.String(), "view role management")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			role,
			name,
			email,
			created_at,
			updated_at
		FROM users
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	canDelete := h.access.CanDeleteUser(actor.Role)
	users := make([]UserView, 0)
	for rows.Next() {
		var (
			view UserView
			id   uuid.UUID
			role string
		)

		err = rows.Scan(&id, &view.Username, &role, &view.Name, &view.Email, &view.CreatedAt, &view.UpdatedAt)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.Role, err = user.ParseRole(role); err != nil {
			return nil, err
		}

		view.CanEdit = h.access.CanManageTargetRole(actor.Role, view.Role)
		view.CanDelete = canDelete
		view.SelectableRoles = h.access.SelectableRoles(actor.Role, view.Role)
		users = append(users, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
