package services

import (
	"context"
	"testing"
	"time"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/adapters/persistence/repositories"
	"nitp-innovhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
		newTestConfig(),
	)
	return svc, db
}

func registerInput() *RegisterInput {
	return &RegisterInput{
		Username: "riya.ug23",
		FullName: "Riya Kumari",
		Email:    "riya.ug23@nitp.ac.in",
		Password: "longenough1",
	}
}

func TestAuthRegister(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	t.Run("rejects outside email", func(t *testing.T) {
		input := registerInput()
		input.Email = "riya@gmail.com"
		_, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, domain.ErrNonInstituteEmail)
	})

	t.Run("creates a student account with a session", func(t *testing.T) {
		resp, err := svc.Register(ctx, registerInput())
		require.NoError(t, err)
		assert.Equal(t, models.RoleStudent, resp.User.Role)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)

		claims, err := svc.ValidateAccessToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, claims.UserID)
		assert.Equal(t, models.RoleStudent, claims.Role)

		var tokens int64
		require.NoError(t, db.Model(&models.RefreshToken{}).Count(&tokens).Error)
		assert.EqualValues(t, 1, tokens)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		input := registerInput()
		input.Email = "riya.two@nitp.ac.in"
		_, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		input := registerInput()
		input.Username = "riya2"
		_, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestAuthLogin(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, &LoginInput{Email: "riya.ug23@nitp.ac.in", Password: "longenough1"})
		require.NoError(t, err)
		assert.Equal(t, "riya.ug23", resp.User.Username)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginInput{Email: "riya.ug23@nitp.ac.in", Password: "nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email reads the same as a wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginInput{Email: "ghost@nitp.ac.in", Password: "longenough1"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("directory-provisioned account has no usable credential", func(t *testing.T) {
		mentor := &models.User{
			Username: "aman.ug22",
			Email:    "aman.ug22@nitp.ac.in",
			Role:     models.RoleMentor,
			IsActive: true,
		}
		require.NoError(t, db.Create(mentor).Error)

		_, err := svc.Login(ctx, &LoginInput{Email: mentor.Email, Password: ""})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		require.NoError(t, db.Model(&models.User{}).
			Where("email = ?", "riya.ug23@nitp.ac.in").
			Update("is_active", false).Error)

		_, err := svc.Login(ctx, &LoginInput{Email: "riya.ug23@nitp.ac.in", Password: "longenough1"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestAuthRefreshRotation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	// Rotation hands out a new pair
	refreshed, err := svc.RefreshToken(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The spent token is revoked, replaying it fails
	_, err = svc.RefreshToken(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	// The fresh token still works
	_, err = svc.RefreshToken(ctx, refreshed.RefreshToken)
	assert.NoError(t, err)

	_, err = svc.RefreshToken(ctx, "not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestAuthLogout(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, registered.RefreshToken))
	_, err = svc.RefreshToken(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	// LogoutAll revokes every open session
	login1, err := svc.Login(ctx, &LoginInput{Email: "riya.ug23@nitp.ac.in", Password: "longenough1"})
	require.NoError(t, err)
	login2, err := svc.Login(ctx, &LoginInput{Email: "riya.ug23@nitp.ac.in", Password: "longenough1"})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(ctx, login1.User.ID))

	_, err = svc.RefreshToken(ctx, login1.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	_, err = svc.RefreshToken(ctx, login2.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	var revoked int64
	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("revoked_at IS NOT NULL").Count(&revoked).Error)
	assert.EqualValues(t, 3, revoked)
}

func TestAuthExpiredStoredToken(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	// Age the stored row past its expiry; the JWT itself is still valid
	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("user_id = ?", registered.User.ID).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	_, err = svc.RefreshToken(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
