package services

import (
	"context"
	"testing"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/adapters/persistence/repositories"
	"nitp-innovhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApplicationService(t *testing.T) (*ApplicationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewApplicationService(
		repositories.NewApplicationRepository(db),
		NewDirectoryService(),
		newTestConfig(),
	)
	return svc, db
}

func validApplication() *SubmitApplicationInput {
	return &SubmitApplicationInput{
		FullName:       "Aman Raj",
		Email:          "aman.ug22@nitp.ac.in",
		Branch:         models.BranchCSE,
		Year:           3,
		Expertise:      "Competitive programming, system design",
		WhyMentor:      "Juniors kept asking, formalizing it",
		MentorWhatsapp: "+919800000001",
	}
}

func TestApplicationSubmit(t *testing.T) {
	svc, db := newApplicationService(t)
	ctx := context.Background()

	t.Run("rejects outside email", func(t *testing.T) {
		input := validApplication()
		input.Email = "aman@gmail.com"
		_, err := svc.Submit(ctx, input)
		assert.ErrorIs(t, err, domain.ErrNonInstituteEmail)
	})

	t.Run("rejects unknown branch", func(t *testing.T) {
		input := validApplication()
		input.Branch = "AERO"
		_, err := svc.Submit(ctx, input)
		assert.ErrorIs(t, err, ErrInvalidBranch)
	})

	t.Run("rejects out of range year", func(t *testing.T) {
		input := validApplication()
		input.Year = 6
		_, err := svc.Submit(ctx, input)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})

	t.Run("persists an unreviewed application", func(t *testing.T) {
		app, err := svc.Submit(ctx, validApplication())
		require.NoError(t, err)
		assert.NotZero(t, app.ID)
		assert.False(t, app.IsApproved)
		assert.Nil(t, app.ReviewedAt)

		var count int64
		require.NoError(t, db.Model(&models.MentorApplication{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("allows resubmission with the same email", func(t *testing.T) {
		_, err := svc.Submit(ctx, validApplication())
		assert.NoError(t, err)
	})
}

func TestApplicationApprovalProvisionsMentor(t *testing.T) {
	svc, db := newApplicationService(t)
	ctx := context.Background()

	app, err := svc.Submit(ctx, validApplication())
	require.NoError(t, err)

	reviewed, err := svc.SetApproval(ctx, app.ID, true)
	require.NoError(t, err)
	assert.True(t, reviewed.IsApproved)
	require.NotNil(t, reviewed.ReviewedAt)

	// Directory sync created a passwordless mentor account
	var user models.User
	require.NoError(t, db.Where("email = ?", app.Email).First(&user).Error)
	assert.Equal(t, models.RoleMentor, user.Role)
	assert.Equal(t, "aman.ug22", user.Username)
	assert.False(t, user.HasUsableCredential())

	// And an approved profile carrying the application details
	var profile models.MentorProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.True(t, profile.IsApproved)
	assert.Equal(t, app.Branch, profile.Branch)
	assert.Equal(t, app.Year, profile.Year)
	assert.Equal(t, app.Expertise, profile.Bio)
}

func TestApplicationApprovalIsIdempotentPerAccount(t *testing.T) {
	svc, db := newApplicationService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validApplication())
	require.NoError(t, err)

	second := validApplication()
	second.Expertise = "Now also mentoring on embedded systems"
	secondApp, err := svc.Submit(ctx, second)
	require.NoError(t, err)

	_, err = svc.SetApproval(ctx, first.ID, true)
	require.NoError(t, err)
	_, err = svc.SetApproval(ctx, secondApp.ID, true)
	require.NoError(t, err)

	var users, profiles int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.MentorProfile{}).Count(&profiles).Error)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 1, profiles)

	// The second approval refreshed the profile in place
	var profile models.MentorProfile
	require.NoError(t, db.First(&profile).Error)
	assert.Equal(t, second.Expertise, profile.Bio)
}

func TestApplicationApprovalPromotesExistingStudent(t *testing.T) {
	svc, db := newApplicationService(t)
	ctx := context.Background()

	student := createUser(t, db, "aman.ug22", "aman.ug22@nitp.ac.in", models.RoleStudent)

	app, err := svc.Submit(ctx, validApplication())
	require.NoError(t, err)
	_, err = svc.SetApproval(ctx, app.ID, true)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, student.ID).Error)
	assert.Equal(t, models.RoleMentor, user.Role)
	assert.True(t, user.HasUsableCredential(), "promotion must keep the password")

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, users)
}

func TestApplicationApprovalUsernameCollision(t *testing.T) {
	svc, db := newApplicationService(t)
	ctx := context.Background()

	// Another account already holds the local-part handle
	createUser(t, db, "aman.ug22", "other.person@nitp.ac.in", models.RoleStudent)

	app, err := svc.Submit(ctx, validApplication())
	require.NoError(t, err)
	_, err = svc.SetApproval(ctx, app.ID, true)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", app.Email).First(&user).Error)
	assert.Equal(t, app.Email, user.Username, "falls back to the full address as handle")
}

func TestApplicationRejection(t *testing.T) {
	svc, db := newApplicationService(t)
	ctx := context.Background()

	app, err := svc.Submit(ctx, validApplication())
	require.NoError(t, err)

	reviewed, err := svc.SetApproval(ctx, app.ID, false)
	require.NoError(t, err)
	assert.False(t, reviewed.IsApproved)
	require.NotNil(t, reviewed.ReviewedAt)

	// Rejection never touches the directory
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)

	_, err = svc.SetApproval(ctx, 9999, false)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestApplicationBulkReview(t *testing.T) {
	svc, _ := newApplicationService(t)
	ctx := context.Background()

	var ids []uint
	for _, email := range []string{"a.ug22@nitp.ac.in", "b.ug22@nitp.ac.in", "c.ug22@nitp.ac.in"} {
		input := validApplication()
		input.Email = email
		app, err := svc.Submit(ctx, input)
		require.NoError(t, err)
		ids = append(ids, app.ID)
	}

	// Unknown IDs are skipped, not counted
	count, err := svc.SetApprovalBulk(ctx, append(ids, 9999), true)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	approved := true
	apps, total, err := svc.List(ctx, &ListApplicationsInput{Approved: &approved})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, apps, 3)
}
