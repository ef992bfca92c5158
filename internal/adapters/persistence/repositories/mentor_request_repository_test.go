package repositories

import (
	"context"
	"testing"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// A racing duplicate submission bypasses the service pre-check; the
// composite unique index rejects the loser and the error must surface
// as gorm.ErrDuplicatedKey for the service to map it.
func TestMentorRequestDuplicateKeyTranslated(t *testing.T) {
	db := openTestDB(t)
	repo := NewMentorRequestRepository(db)
	ctx := context.Background()

	student := seedTestUser(t, db)
	mentorUser := &models.User{
		Username: "aman.ug22",
		Email:    "aman.ug22@nitp.ac.in",
		Role:     models.RoleMentor,
		IsActive: true,
	}
	require.NoError(t, db.Create(mentorUser).Error)
	profile := &models.MentorProfile{
		UserID:     mentorUser.ID,
		Branch:     "CSE",
		Year:       3,
		IsApproved: true,
	}
	require.NoError(t, db.Create(profile).Error)

	winner := &models.MentorRequest{
		StudentID: student.ID,
		MentorID:  profile.ID,
		Message:   "Looking for placement guidance",
		Status:    domain.RequestPending,
	}
	require.NoError(t, repo.Create(ctx, winner))

	loser := &models.MentorRequest{
		StudentID: student.ID,
		MentorID:  profile.ID,
		Message:   "Looking for placement guidance",
		Status:    domain.RequestPending,
	}
	err := repo.Create(ctx, loser)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
