package models

import (
	"time"

	"nitp-innovhub/internal/core/domain"
)

// ============================================================
// Guidance: Mentor Directory, Requests & Chat
// ============================================================

// MentorProfile represents the directory entry of an approved mentor.
// Exactly one profile per account (user_id unique); the application
// approval sync upserts it by account, never by application id.
type MentorProfile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Branch         string    `gorm:"size:10;not null" json:"branch"`
	Year           int       `gorm:"not null" json:"year"`
	Bio            string    `gorm:"type:text" json:"bio"`
	MentorWhatsapp string    `gorm:"size:20" json:"-"`
	IsApproved     bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (MentorProfile) TableName() string {
	return "mentor_profiles"
}

// MentorProfileResponse DTO for the public mentor listing
type MentorProfileResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Branch string `json:"branch"`
	Year   int    `json:"year"`
	Bio    string `json:"bio"`
	// ApprovedRequestID is set for an authenticated viewer who already has
	// an approved request with this mentor.
	ApprovedRequestID *uint `json:"approved_request_id,omitempty"`
}

func (p *MentorProfile) ToResponse() *MentorProfileResponse {
	resp := &MentorProfileResponse{
		ID:     p.ID,
		Branch: p.Branch,
		Year:   p.Year,
		Bio:    p.Bio,
	}
	if p.User != nil {
		resp.Name = p.User.FullName
		if resp.Name == "" {
			resp.Name = p.User.Username
		}
	}
	return resp
}

// MentorRequest represents a student's request for guidance from a mentor.
// At most one row per (student, mentor) pair; the composite unique index
// rejects the loser of a racing duplicate submission.
type MentorRequest struct {
	ID              uint                 `gorm:"primaryKey" json:"id"`
	StudentID       uint                 `gorm:"not null;uniqueIndex:idx_student_mentor" json:"student_id"`
	MentorID        uint                 `gorm:"not null;uniqueIndex:idx_student_mentor" json:"mentor_id"`
	Message         string               `gorm:"type:text;not null" json:"message"`
	StudentWhatsapp string               `gorm:"size:20;not null" json:"-"`
	Status          domain.RequestStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CreatedAt       time.Time            `gorm:"autoCreateTime" json:"created_at"`
	ApprovedAt      *time.Time           `json:"approved_at"`

	Student *User          `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Mentor  *MentorProfile `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
}

func (MentorRequest) TableName() string {
	return "mentor_requests"
}

// MentorRequestResponse DTO for the mentor dashboard
type MentorRequestResponse struct {
	ID              uint                 `json:"id"`
	StudentName     string               `json:"student_name"`
	StudentEmail    string               `json:"student_email"`
	Message         string               `json:"message"`
	StudentWhatsapp string               `json:"student_whatsapp"`
	Status          domain.RequestStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	ApprovedAt      *time.Time           `json:"approved_at"`
}

func (r *MentorRequest) ToResponse() *MentorRequestResponse {
	resp := &MentorRequestResponse{
		ID:              r.ID,
		Message:         r.Message,
		StudentWhatsapp: r.StudentWhatsapp,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		ApprovedAt:      r.ApprovedAt,
	}
	if r.Student != nil {
		resp.StudentName = r.Student.FullName
		if resp.StudentName == "" {
			resp.StudentName = r.Student.Username
		}
		resp.StudentEmail = r.Student.Email
	}
	return resp
}

// ChatMessage represents one message in an approved request's chat.
// Rows are immutable; the channel is always read in ascending send order.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RequestID uint      `gorm:"not null;index" json:"request_id"`
	SenderID  uint      `gorm:"not null" json:"sender_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	SentAt    time.Time `gorm:"autoCreateTime;index" json:"sent_at"`

	Request *MentorRequest `gorm:"foreignKey:RequestID" json:"-"`
	Sender  *User          `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ChatMessageResponse DTO
type ChatMessageResponse struct {
	ID         uint      `json:"id"`
	SenderID   uint      `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sent_at"`
}

func (m *ChatMessage) ToResponse() *ChatMessageResponse {
	resp := &ChatMessageResponse{
		ID:       m.ID,
		SenderID: m.SenderID,
		Body:     m.Body,
		SentAt:   m.SentAt,
	}
	if m.Sender != nil {
		resp.SenderName = m.Sender.FullName
		if resp.SenderName == "" {
			resp.SenderName = m.Sender.Username
		}
	}
	return resp
}
