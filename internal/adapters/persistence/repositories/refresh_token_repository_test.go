package repositories

import (
	"context"
	"testing"
	"time"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Same options as the production connection so error translation
	// behaves identically under test.
	db, err := gorm.Open(sqlite.Open(":memory:"), config.GormConfig(logger.Default.LogMode(logger.Silent)))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Username: "riya.ug23",
		Email:    "riya.ug23@nitp.ac.in",
		Role:     models.RoleStudent,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestRefreshTokenDeleteStale(t *testing.T) {
	db := openTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()
	user := seedTestUser(t, db)

	now := time.Now()
	recentRevoke := now.Add(-24 * time.Hour)
	ancientRevoke := now.Add(-60 * 24 * time.Hour)

	tokens := []*models.RefreshToken{
		// Live session: kept
		{UserID: user.ID, TokenHash: "live", ExpiresAt: now.Add(24 * time.Hour)},
		// Expired but never revoked: purged
		{UserID: user.ID, TokenHash: "expired", ExpiresAt: now.Add(-time.Hour)},
		// Revoked yesterday, inside the retention window: kept
		{UserID: user.ID, TokenHash: "fresh-revoke", ExpiresAt: now.Add(24 * time.Hour), RevokedAt: &recentRevoke},
		// Revoked two months ago: purged
		{UserID: user.ID, TokenHash: "old-revoke", ExpiresAt: now.Add(24 * time.Hour), RevokedAt: &ancientRevoke},
	}
	for _, tok := range tokens {
		require.NoError(t, repo.Create(ctx, tok))
	}

	cutoff := now.Add(-30 * 24 * time.Hour)
	purged, err := repo.DeleteStale(ctx, cutoff)
	require.NoError(t, err)
	assert.EqualValues(t, 2, purged)

	var remaining []models.RefreshToken
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 2)
	hashes := []string{remaining[0].TokenHash, remaining[1].TokenHash}
	assert.ElementsMatch(t, []string{"live", "fresh-revoke"}, hashes)
}

func TestRefreshTokenRevocation(t *testing.T) {
	db := openTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()
	user := seedTestUser(t, db)

	expires := time.Now().Add(24 * time.Hour)
	a := &models.RefreshToken{UserID: user.ID, TokenHash: "hash-a", ExpiresAt: expires}
	b := &models.RefreshToken{UserID: user.ID, TokenHash: "hash-b", ExpiresAt: expires}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	count, err := repo.CountActiveByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, repo.RevokeByTokenHash(ctx, "hash-a"))
	count, err = repo.CountActiveByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repo.RevokeAllByUserID(ctx, user.ID))
	count, err = repo.CountActiveByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Revoked hashes are invisible to lookups
	_, err = repo.GetByTokenHash(ctx, "hash-a")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInquiryResolveOlderThan(t *testing.T) {
	db := openTestDB(t)
	repo := NewInquiryRepository(db)
	ctx := context.Background()

	fresh := &models.Inquiry{StudentName: "A", Email: "a@nitp.ac.in", Subject: "s", Message: "m", StudentWhatsapp: "+91980"}
	stale := &models.Inquiry{StudentName: "B", Email: "b@nitp.ac.in", Subject: "s", Message: "m", StudentWhatsapp: "+91981"}
	require.NoError(t, repo.Create(ctx, fresh))
	require.NoError(t, repo.Create(ctx, stale))

	// Age the second inquiry past the cutoff
	old := time.Now().Add(-100 * 24 * time.Hour)
	require.NoError(t, db.Model(&models.Inquiry{}).
		Where("id = ?", stale.ID).
		Update("created_at", old).Error)

	resolved, err := repo.ResolveOlderThan(ctx, time.Now().Add(-90*24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, resolved)

	got, err := repo.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.True(t, got.IsResolved)

	got, err = repo.GetByID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.False(t, got.IsResolved)
}
