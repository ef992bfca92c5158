package services

import (
	"context"
	"testing"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/adapters/persistence/repositories"
	"nitp-innovhub/internal/core/domain"
	"nitp-innovhub/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(repositories.NewUserRepository(db)), db
}

func TestUserAdminUpdate(t *testing.T) {
	svc, db := newUserService(t)
	ctx := context.Background()

	admin := createUser(t, db, "admin", "admin@nitp.ac.in", models.RoleAdmin)
	student := createUser(t, db, "riya.ug23", "riya.ug23@nitp.ac.in", models.RoleStudent)

	t.Run("promote a student", func(t *testing.T) {
		role := models.RoleMentor
		updated, err := svc.UpdateUserByAdmin(ctx, student.ID, admin.ID, &UpdateUserByAdminInput{Role: &role})
		require.NoError(t, err)
		assert.Equal(t, models.RoleMentor, updated.Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		role := "SUPERUSER"
		_, err := svc.UpdateUserByAdmin(ctx, student.ID, admin.ID, &UpdateUserByAdminInput{Role: &role})
		assert.Error(t, err)
	})

	t.Run("admin cannot change own role", func(t *testing.T) {
		role := models.RoleStudent
		_, err := svc.UpdateUserByAdmin(ctx, admin.ID, admin.ID, &UpdateUserByAdminInput{Role: &role})
		assert.ErrorIs(t, err, ErrCannotChangeOwnRole)
	})

	t.Run("admin cannot delete self", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteUser(ctx, admin.ID, admin.ID), ErrCannotDeleteSelf)
	})

	t.Run("delete another user", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(ctx, student.ID, admin.ID))
		_, err := svc.GetUserByID(ctx, student.ID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.GetUserByID(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.ErrorIs(t, svc.DeleteUser(ctx, 9999, admin.ID), domain.ErrUserNotFound)
	})
}

func TestUserChangePassword(t *testing.T) {
	svc, db := newUserService(t)
	ctx := context.Background()

	user := createUser(t, db, "riya.ug23", "riya.ug23@nitp.ac.in", models.RoleStudent)

	t.Run("wrong old password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, &ChangePasswordInput{OldPassword: "nope", NewPassword: "newsecret1"})
		assert.ErrorIs(t, err, ErrOldPasswordWrong)
	})

	t.Run("too short new password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, &ChangePasswordInput{OldPassword: "secret123", NewPassword: "short"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("successful change", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, &ChangePasswordInput{OldPassword: "secret123", NewPassword: "newsecret1"})
		require.NoError(t, err)

		var fresh models.User
		require.NoError(t, db.First(&fresh, user.ID).Error)
		assert.True(t, password.Verify("newsecret1", fresh.Password))
		assert.False(t, password.Verify("secret123", fresh.Password))
	})
}

func TestUserListPagination(t *testing.T) {
	svc, db := newUserService(t)
	ctx := context.Background()

	for _, name := range []string{"u1", "u2", "u3"} {
		createUser(t, db, name, name+"@nitp.ac.in", models.RoleStudent)
	}

	out, err := svc.ListUsers(ctx, &ListUsersInput{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Users, 2)
	assert.EqualValues(t, 3, out.Total)
	assert.Equal(t, 2, out.TotalPages)

	out, err = svc.ListUsers(ctx, &ListUsersInput{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Users, 1)
}
