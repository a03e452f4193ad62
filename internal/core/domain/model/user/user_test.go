package user_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func TestRole(t *testing.T) {
	t.Run("should parse every known role", func(t *testing.T) {
		for _, r := range user.Roles() {
			parsed, err := user.ParseRole(r.String())

			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("should reject unknown and misspelled roles", func(t *testing.T) {
		for _, input := range []string{"", "Staff", "superadmin", "root"} {
			_, err := user.ParseRole(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})

	t.Run("should classify roles", func(t *testing.T) {
		assert.True(t, user.RoleBuyer.IsBuyerClass())
		assert.False(t, user.RoleBuyer.IsStaffClass())
		assert.False(t, user.RoleBuyer.IsDashboardRole())

		for _, r := range user.DashboardRoles() {
			assert.True(t, r.IsStaffClass(), r.String())
			assert.False(t, r.IsBuyerClass(), r.String())
		}

		unknown := user.Role("courier")
		assert.False(t, unknown.IsBuyerClass())
		assert.False(t, unknown.IsStaffClass())
	})
}

func TestPermission_Validate(t *testing.T) {
	for _, p := range user.Permissions() {
		require.NoError(t, p.Validate(), p.String())
	}
	require.ErrorIs(t, user.Permission("orders:delete").Validate(), errs.ErrValueIsInvalid)
}

func TestNewUser(t *testing.T) {
	t.Run("should create a dashboard user", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "sari", user.RoleStaff, "Sari", "sari@example.com", createdAt)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "sari", u.Username())
		assert.Equal(t, user.RoleStaff, u.Role())
		assert.Equal(t, "Sari", u.Name())
		assert.Equal(t, "sari@example.com", u.Email())
		assert.Equal(t, createdAt, u.CreatedAt())
		assert.Equal(t, createdAt, u.UpdatedAt())
	})

	t.Run("should reject buyer accounts", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "budi", user.RoleBuyer, "", "", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "not a dashboard role")
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		_, err := user.NewUser(kernel.UUID{}, "", "", "", "not-an-email", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "username")
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("zero value user is not constructed", func(t *testing.T) {
		var nilUser *user.User

		assert.Equal(t, user.ErrUserIsNotConstructed, nilUser.Validate())
		assert.Equal(t, user.ErrUserIsNotConstructed, (&user.User{}).Validate())
	})
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "sari", user.RoleStaff, "", "", createdAt)
	require.NoError(t, err)
	later := createdAt.Add(time.Hour)

	t.Run("should assign a dashboard role", func(t *testing.T) {
		require.NoError(t, u.ChangeRole(user.RoleKeuangan, later))

		assert.Equal(t, user.RoleKeuangan, u.Role())
		assert.Equal(t, later, u.UpdatedAt())
	})

	t.Run("should keep the previous role on invalid input", func(t *testing.T) {
		err := u.ChangeRole(user.RoleBuyer, later.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, user.RoleKeuangan, u.Role())
		assert.Equal(t, later, u.UpdatedAt())
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should accept a buyer without identifier", func(t *testing.T) {
		actor, err := user.NewActor(nil, user.RoleBuyer)

		require.NoError(t, err)
		assert.Nil(t, actor.ID)
		assert.Equal(t, user.RoleBuyer, actor.Role)
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := user.NewActor(&id, "courier")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, user.Actor{Role: "courier"}.Validate(), errs.ErrValueIsInvalid)
	})
}
