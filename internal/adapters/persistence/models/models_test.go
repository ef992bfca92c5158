package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestSiteConfigurationSingleton(t *testing.T) {
	db := openTestDB(t)

	first := &SiteConfiguration{SiteName: "Innovation Hub"}
	require.NoError(t, db.Create(first).Error)
	assert.EqualValues(t, 1, first.ID, "hook pins the row to pk 1")

	second := &SiteConfiguration{SiteName: "Shadow Config"}
	err := db.Create(second).Error
	assert.ErrorIs(t, err, ErrSiteConfigSingleton)

	err = db.Delete(first).Error
	assert.ErrorIs(t, err, ErrSiteConfigSingleton)

	// Updating in place is fine
	first.FooterText = "Made by students"
	assert.NoError(t, db.Save(first).Error)
}

func TestMentorApplicationBio(t *testing.T) {
	app := &MentorApplication{Expertise: "Systems", WhyMentor: "Giving back"}
	assert.Equal(t, "Systems", app.Bio())

	app.Expertise = ""
	assert.Equal(t, "Giving back", app.Bio())
}

func TestUserHasUsableCredential(t *testing.T) {
	assert.False(t, (&User{}).HasUsableCredential())
	assert.True(t, (&User{Password: "$2a$10$hash"}).HasUsableCredential())
}

func TestValidBranch(t *testing.T) {
	assert.True(t, ValidBranch(BranchCSE))
	assert.True(t, ValidBranch(BranchOther))
	assert.False(t, ValidBranch("AERO"))
	assert.False(t, ValidBranch(""))
}
