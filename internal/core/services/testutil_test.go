package services

import (
	"testing"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/config"
	"nitp-innovhub/internal/pkg/password"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
// MaxOpenConns is pinned to 1 so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), config.GormConfig(logger.Default.LogMode(logger.Silent)))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		Institute: config.InstituteConfig{
			EmailDomain: "nitp.ac.in",
		},
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

// createUser inserts an active account with a usable password ("secret123").
func createUser(t *testing.T, db *gorm.DB, username, email, role string) *models.User {
	t.Helper()

	hashed, err := password.Hash("secret123")
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    email,
		FullName: username,
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
