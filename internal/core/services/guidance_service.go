package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/adapters/persistence/repositories"
	"nitp-innovhub/internal/config"
	"nitp-innovhub/internal/core/domain"
	"nitp-innovhub/internal/pkg/eligibility"

	"gorm.io/gorm"
)

// GuidanceService handles the mentor directory, request workflow and the
// per-request chat channel
type GuidanceService struct {
	profileRepo *repositories.MentorProfileRepository
	requestRepo *repositories.MentorRequestRepository
	messageRepo *repositories.ChatMessageRepository
	userRepo    repositories.UserRepository
	cfg         *config.Config
}

// NewGuidanceService creates a new guidance service
func NewGuidanceService(
	profileRepo *repositories.MentorProfileRepository,
	requestRepo *repositories.MentorRequestRepository,
	messageRepo *repositories.ChatMessageRepository,
	userRepo repositories.UserRepository,
	cfg *config.Config,
) *GuidanceService {
	return &GuidanceService{
		profileRepo: profileRepo,
		requestRepo: requestRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		cfg:         cfg,
	}
}

// CreateRequestInput represents a student's guidance request
type CreateRequestInput struct {
	Message         string `json:"message" validate:"required"`
	StudentWhatsapp string `json:"student_whatsapp" validate:"required"`
}

// CreateRequestResult carries the outcome of a request submission.
// Existing covers the duplicate cases: an approved pair points the caller
// at the chat, a pending pair is a no-op.
type CreateRequestResult struct {
	Request  *models.MentorRequest
	Existing bool
}

// RequestDashboard is a mentor's requests partitioned by status
type RequestDashboard struct {
	Pending  []*models.MentorRequestResponse `json:"pending"`
	Approved []*models.MentorRequestResponse `json:"approved"`
}

// ChatView is one request's channel with both participant names resolved
type ChatView struct {
	Request  *models.MentorRequestResponse `json:"request"`
	Messages []*models.ChatMessageResponse `json:"messages"`
}

// ListMentors lists approved mentor profiles. For an authenticated viewer
// each mentor carries the viewer's approved request id, so the client can
// link straight to the chat instead of offering a second request.
func (s *GuidanceService) ListMentors(ctx context.Context, viewerID uint) ([]*models.MentorProfileResponse, error) {
	profiles, err := s.profileRepo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.MentorProfileResponse, len(profiles))
	mentorIDs := make([]uint, len(profiles))
	for i, p := range profiles {
		responses[i] = p.ToResponse()
		mentorIDs[i] = p.ID
	}

	if viewerID != 0 {
		approved, err := s.requestRepo.ApprovedRequestIDs(ctx, viewerID, mentorIDs)
		if err != nil {
			return nil, err
		}
		for i, p := range profiles {
			if reqID, ok := approved[p.ID]; ok {
				id := reqID
				responses[i].ApprovedRequestID = &id
			}
		}
	}

	return responses, nil
}

// CreateRequest submits a guidance request from a student to a mentor
func (s *GuidanceService) CreateRequest(ctx context.Context, studentID, mentorProfileID uint, input *CreateRequestInput) (*CreateRequestResult, error) {
	// 1. Mentor must be an existing approved profile
	profile, err := s.profileRepo.GetByID(ctx, mentorProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMentorNotFound
		}
		return nil, err
	}
	if !profile.IsApproved {
		return nil, domain.ErrMentorNotFound
	}

	// 2. A mentor cannot request guidance from themselves
	if profile.UserID == studentID {
		return nil, domain.ErrInvalidInput
	}

	// 3. Student must hold an institute address
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	if err := eligibility.Validate(student.Email, s.cfg.Institute.EmailDomain); err != nil {
		return nil, domain.ErrNonInstituteEmail
	}

	if strings.TrimSpace(input.Message) == "" {
		return nil, domain.ErrInvalidInput
	}

	// 4. One request per (student, mentor) pair
	existing, err := s.requestRepo.GetByPair(ctx, studentID, profile.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return &CreateRequestResult{Request: existing, Existing: true}, nil
	}

	request := &models.MentorRequest{
		StudentID:       studentID,
		MentorID:        profile.ID,
		Message:         input.Message,
		StudentWhatsapp: input.StudentWhatsapp,
		Status:          domain.RequestPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		// The unique index catches the loser of a racing duplicate
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrRequestAlreadyExists
		}
		return nil, err
	}

	log.Printf("✅ Guidance request created: student %d -> mentor profile %d", studentID, profile.ID)
	return &CreateRequestResult{Request: request}, nil
}

// ApproveRequest approves a pending request addressed to the caller's
// mentor profile. Requests outside the caller's profile are reported as
// not found rather than forbidden.
func (s *GuidanceService) ApproveRequest(ctx context.Context, mentorUserID, requestID uint) (*models.MentorRequest, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, mentorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	if !profile.IsApproved {
		return nil, domain.ErrRequestNotFound
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	if request.MentorID != profile.ID {
		return nil, domain.ErrRequestNotFound
	}

	next, err := request.Status.Transition(domain.RequestApproved)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = next
	request.ApprovedAt = &now
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	log.Printf("✅ Guidance request %d approved by mentor %d", request.ID, mentorUserID)
	return request, nil
}

// ListRequests returns the caller's mentor dashboard, requests partitioned
// into pending and approved
func (s *GuidanceService) ListRequests(ctx context.Context, mentorUserID uint) (*RequestDashboard, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, mentorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMentorNotFound
		}
		return nil, err
	}

	requests, err := s.requestRepo.ListByMentor(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	dashboard := &RequestDashboard{
		Pending:  []*models.MentorRequestResponse{},
		Approved: []*models.MentorRequestResponse{},
	}
	for _, req := range requests {
		switch req.Status {
		case domain.RequestApproved:
			dashboard.Approved = append(dashboard.Approved, req.ToResponse())
		default:
			dashboard.Pending = append(dashboard.Pending, req.ToResponse())
		}
	}
	return dashboard, nil
}

// PostMessage appends a message to an approved request's chat channel
func (s *GuidanceService) PostMessage(ctx context.Context, actorID, requestID uint, body string) (*models.ChatMessage, error) {
	request, err := s.authorizeChat(ctx, actorID, requestID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(body) == "" {
		return nil, domain.ErrInvalidInput
	}

	message := &models.ChatMessage{
		RequestID: request.ID,
		SenderID:  actorID,
		Body:      body,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetChat returns the channel for an approved request, oldest message first
func (s *GuidanceService) GetChat(ctx context.Context, actorID, requestID uint) (*ChatView, error) {
	request, err := s.authorizeChat(ctx, actorID, requestID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListByRequest(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	view := &ChatView{
		Request:  request.ToResponse(),
		Messages: make([]*models.ChatMessageResponse, len(messages)),
	}
	for i, m := range messages {
		view.Messages[i] = m.ToResponse()
	}
	return view, nil
}

// authorizeChat gates every chat access: the request must be approved and
// the actor must be its student or the mentor profile's linked user.
func (s *GuidanceService) authorizeChat(ctx context.Context, actorID, requestID uint) (*models.MentorRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	if request.Status != domain.RequestApproved {
		return nil, domain.ErrChatUnavailable
	}

	if actorID != request.StudentID && (request.Mentor == nil || request.Mentor.UserID != actorID) {
		return nil, domain.ErrNotParticipant
	}

	return request, nil
}
