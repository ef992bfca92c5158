package repositories

import (
	"context"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/core/domain"

	"gorm.io/gorm"
)

// ==========================================
// MENTOR PROFILE REPOSITORY
// ==========================================

// MentorProfileRepository handles mentor profile data access
type MentorProfileRepository struct {
	db *gorm.DB
}

// NewMentorProfileRepository creates a new mentor profile repository
func NewMentorProfileRepository(db *gorm.DB) *MentorProfileRepository {
	return &MentorProfileRepository{db: db}
}

// Create creates a new mentor profile
func (r *MentorProfileRepository) Create(ctx context.Context, profile *models.MentorProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByID gets a mentor profile by ID with its user loaded
func (r *MentorProfileRepository) GetByID(ctx context.Context, id uint) (*models.MentorProfile, error) {
	var profile models.MentorProfile
	err := r.db.WithContext(ctx).Preload("User").First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUserID gets a mentor profile by owning user ID
func (r *MentorProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.MentorProfile, error) {
	var profile models.MentorProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListApproved lists approved mentor profiles with their users, newest first
func (r *MentorProfileRepository) ListApproved(ctx context.Context) ([]*models.MentorProfile, error) {
	var profiles []*models.MentorProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

// Update updates a mentor profile
func (r *MentorProfileRepository) Update(ctx context.Context, profile *models.MentorProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *MentorProfileRepository) WithTx(tx *gorm.DB) *MentorProfileRepository {
	return &MentorProfileRepository{db: tx}
}

// ==========================================
// MENTOR REQUEST REPOSITORY
// ==========================================

// MentorRequestRepository handles mentor request data access
type MentorRequestRepository struct {
	db *gorm.DB
}

// NewMentorRequestRepository creates a new mentor request repository
func NewMentorRequestRepository(db *gorm.DB) *MentorRequestRepository {
	return &MentorRequestRepository{db: db}
}

// Create creates a new mentor request
func (r *MentorRequestRepository) Create(ctx context.Context, request *models.MentorRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a mentor request by ID with both participants loaded
func (r *MentorRequestRepository) GetByID(ctx context.Context, id uint) (*models.MentorRequest, error) {
	var request models.MentorRequest
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Mentor").
		Preload("Mentor.User").
		First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByPair gets the request between a student and a mentor, if any
func (r *MentorRequestRepository) GetByPair(ctx context.Context, studentID, mentorID uint) (*models.MentorRequest, error) {
	var request models.MentorRequest
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND mentor_id = ?", studentID, mentorID).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListByMentor lists all requests addressed to a mentor, newest first
func (r *MentorRequestRepository) ListByMentor(ctx context.Context, mentorID uint) ([]*models.MentorRequest, error) {
	var requests []*models.MentorRequest
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("mentor_id = ?", mentorID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// ListByStudent lists all requests a student has sent, newest first
func (r *MentorRequestRepository) ListByStudent(ctx context.Context, studentID uint) ([]*models.MentorRequest, error) {
	var requests []*models.MentorRequest
	err := r.db.WithContext(ctx).
		Preload("Mentor").
		Preload("Mentor.User").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// ApprovedRequestIDs returns a map from mentor profile ID to the ID of the
// student's approved request with that mentor, for the given mentor set
func (r *MentorRequestRepository) ApprovedRequestIDs(ctx context.Context, studentID uint, mentorIDs []uint) (map[uint]uint, error) {
	if len(mentorIDs) == 0 {
		return map[uint]uint{}, nil
	}

	var requests []*models.MentorRequest
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND mentor_id IN ? AND status = ?", studentID, mentorIDs, domain.RequestApproved).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uint]uint, len(requests))
	for _, req := range requests {
		result[req.MentorID] = req.ID
	}
	return result, nil
}

// Update updates a mentor request
func (r *MentorRequestRepository) Update(ctx context.Context, request *models.MentorRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// ==========================================
// CHAT MESSAGE REPOSITORY
// ==========================================

// ChatMessageRepository handles chat message data access
type ChatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

// Create creates a new chat message
func (r *ChatMessageRepository) Create(ctx context.Context, message *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListByRequest lists all messages on a request channel, oldest first
func (r *ChatMessageRepository) ListByRequest(ctx context.Context, requestID uint) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("request_id = ?", requestID).
		Order("sent_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}
