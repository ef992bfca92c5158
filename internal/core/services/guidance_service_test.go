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

type guidanceFixture struct {
	svc     *GuidanceService
	db      *gorm.DB
	student *models.User
	mentor  *models.User
	profile *models.MentorProfile
}

func newGuidanceFixture(t *testing.T) *guidanceFixture {
	t.Helper()
	db := newTestDB(t)

	svc := NewGuidanceService(
		repositories.NewMentorProfileRepository(db),
		repositories.NewMentorRequestRepository(db),
		repositories.NewChatMessageRepository(db),
		repositories.NewUserRepository(db),
		newTestConfig(),
	)

	student := createUser(t, db, "riya.ug23", "riya.ug23@nitp.ac.in", models.RoleStudent)
	mentor := createUser(t, db, "aman.ug22", "aman.ug22@nitp.ac.in", models.RoleMentor)

	profile := &models.MentorProfile{
		UserID:     mentor.ID,
		Branch:     models.BranchCSE,
		Year:       4,
		Bio:        "DSA and internships",
		IsApproved: true,
	}
	require.NoError(t, db.Create(profile).Error)

	return &guidanceFixture{svc: svc, db: db, student: student, mentor: mentor, profile: profile}
}

func requestInput() *CreateRequestInput {
	return &CreateRequestInput{
		Message:         "Could you review my placement prep plan?",
		StudentWhatsapp: "+919800000002",
	}
}

func TestGuidanceRequestLifecycle(t *testing.T) {
	f := newGuidanceFixture(t)
	ctx := context.Background()

	// Student files a request
	result, err := f.svc.CreateRequest(ctx, f.student.ID, f.profile.ID, requestInput())
	require.NoError(t, err)
	assert.False(t, result.Existing)
	assert.Equal(t, domain.RequestPending, result.Request.Status)

	// A second submission is a no-op pointing at the existing row
	dup, err := f.svc.CreateRequest(ctx, f.student.ID, f.profile.ID, requestInput())
	require.NoError(t, err)
	assert.True(t, dup.Existing)
	assert.Equal(t, result.Request.ID, dup.Request.ID)

	// Mentor sees it pending
	dashboard, err := f.svc.ListRequests(ctx, f.mentor.ID)
	require.NoError(t, err)
	require.Len(t, dashboard.Pending, 1)
	assert.Empty(t, dashboard.Approved)
	assert.Equal(t, "riya.ug23", dashboard.Pending[0].StudentName)

	// Mentor approves
	approved, err := f.svc.ApproveRequest(ctx, f.mentor.ID, result.Request.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	dashboard, err = f.svc.ListRequests(ctx, f.mentor.ID)
	require.NoError(t, err)
	assert.Empty(t, dashboard.Pending)
	assert.Len(t, dashboard.Approved, 1)

	// A second approval is an illegal transition
	_, err = f.svc.ApproveRequest(ctx, f.mentor.ID, result.Request.ID)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	// The directory now links the student straight to the chat
	mentors, err := f.svc.ListMentors(ctx, f.student.ID)
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	require.NotNil(t, mentors[0].ApprovedRequestID)
	assert.Equal(t, result.Request.ID, *mentors[0].ApprovedRequestID)

	// Anonymous visitors never see request links
	mentors, err = f.svc.ListMentors(ctx, 0)
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Nil(t, mentors[0].ApprovedRequestID)
}

func TestGuidanceCreateRequestGuards(t *testing.T) {
	f := newGuidanceFixture(t)
	ctx := context.Background()

	t.Run("unknown mentor", func(t *testing.T) {
		_, err := f.svc.CreateRequest(ctx, f.student.ID, 9999, requestInput())
		assert.ErrorIs(t, err, domain.ErrMentorNotFound)
	})

	t.Run("unapproved profile is invisible", func(t *testing.T) {
		hidden := createUser(t, f.db, "hidden.ug21", "hidden.ug21@nitp.ac.in", models.RoleMentor)
		profile := &models.MentorProfile{UserID: hidden.ID, Branch: models.BranchECE, Year: 4}
		require.NoError(t, f.db.Create(profile).Error)

		_, err := f.svc.CreateRequest(ctx, f.student.ID, profile.ID, requestInput())
		assert.ErrorIs(t, err, domain.ErrMentorNotFound)

		mentors, err := f.svc.ListMentors(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, mentors, 1, "directory lists approved profiles only")
	})

	t.Run("mentor cannot request themselves", func(t *testing.T) {
		_, err := f.svc.CreateRequest(ctx, f.mentor.ID, f.profile.ID, requestInput())
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("outside student email", func(t *testing.T) {
		outsider := createUser(t, f.db, "visitor", "visitor@gmail.com", models.RoleStudent)
		_, err := f.svc.CreateRequest(ctx, outsider.ID, f.profile.ID, requestInput())
		assert.ErrorIs(t, err, domain.ErrNonInstituteEmail)
	})

	t.Run("blank message", func(t *testing.T) {
		input := requestInput()
		input.Message = "   "
		_, err := f.svc.CreateRequest(ctx, f.student.ID, f.profile.ID, input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGuidanceApprovalOwnership(t *testing.T) {
	f := newGuidanceFixture(t)
	ctx := context.Background()

	result, err := f.svc.CreateRequest(ctx, f.student.ID, f.profile.ID, requestInput())
	require.NoError(t, err)

	t.Run("non-mentor caller", func(t *testing.T) {
		_, err := f.svc.ApproveRequest(ctx, f.student.ID, result.Request.ID)
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})

	t.Run("another mentor's request reads as not found", func(t *testing.T) {
		other := createUser(t, f.db, "neha.ug21", "neha.ug21@nitp.ac.in", models.RoleMentor)
		otherProfile := &models.MentorProfile{UserID: other.ID, Branch: models.BranchEE, Year: 4, IsApproved: true}
		require.NoError(t, f.db.Create(otherProfile).Error)

		_, err := f.svc.ApproveRequest(ctx, other.ID, result.Request.ID)
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})

	t.Run("unknown request id", func(t *testing.T) {
		_, err := f.svc.ApproveRequest(ctx, f.mentor.ID, 9999)
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})
}

func TestGuidanceChat(t *testing.T) {
	f := newGuidanceFixture(t)
	ctx := context.Background()

	result, err := f.svc.CreateRequest(ctx, f.student.ID, f.profile.ID, requestInput())
	require.NoError(t, err)
	requestID := result.Request.ID

	// Chat is sealed until the mentor approves
	_, err = f.svc.GetChat(ctx, f.student.ID, requestID)
	assert.ErrorIs(t, err, domain.ErrChatUnavailable)
	_, err = f.svc.PostMessage(ctx, f.student.ID, requestID, "hello?")
	assert.ErrorIs(t, err, domain.ErrChatUnavailable)

	_, err = f.svc.ApproveRequest(ctx, f.mentor.ID, requestID)
	require.NoError(t, err)

	// Both participants can write, nobody else can read
	_, err = f.svc.PostMessage(ctx, f.student.ID, requestID, "Thanks for approving!")
	require.NoError(t, err)
	_, err = f.svc.PostMessage(ctx, f.mentor.ID, requestID, "Happy to help. Share your plan.")
	require.NoError(t, err)
	_, err = f.svc.PostMessage(ctx, f.student.ID, requestID, "Sent it over.")
	require.NoError(t, err)

	outsider := createUser(t, f.db, "lurker.ug24", "lurker.ug24@nitp.ac.in", models.RoleStudent)
	_, err = f.svc.GetChat(ctx, outsider.ID, requestID)
	assert.ErrorIs(t, err, domain.ErrNotParticipant)
	_, err = f.svc.PostMessage(ctx, outsider.ID, requestID, "me too")
	assert.ErrorIs(t, err, domain.ErrNotParticipant)

	// Blank messages are rejected
	_, err = f.svc.PostMessage(ctx, f.mentor.ID, requestID, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// The channel reads oldest first with sender names resolved
	view, err := f.svc.GetChat(ctx, f.mentor.ID, requestID)
	require.NoError(t, err)
	require.Len(t, view.Messages, 3)
	assert.Equal(t, "Thanks for approving!", view.Messages[0].Body)
	assert.Equal(t, "Happy to help. Share your plan.", view.Messages[1].Body)
	assert.Equal(t, "Sent it over.", view.Messages[2].Body)
	assert.Equal(t, f.student.ID, view.Messages[0].SenderID)
	assert.Equal(t, f.mentor.ID, view.Messages[1].SenderID)
}
