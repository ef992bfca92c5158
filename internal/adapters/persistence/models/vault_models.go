package models

import (
	"time"
)

// ============================================================
// Vault: Study Resource Catalog
// ============================================================

// Branch represents an engineering branch/specialization
type Branch struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Code        string `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Subjects []Subject `gorm:"foreignKey:BranchID" json:"subjects,omitempty"`
}

func (Branch) TableName() string {
	return "branches"
}

// Subject represents a subject offered in a branch during a semester
type Subject struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Code     string `gorm:"size:20;uniqueIndex:idx_branch_code_sem" json:"code"`
	BranchID uint   `gorm:"not null;uniqueIndex:idx_branch_code_sem" json:"branch_id"`
	Semester int    `gorm:"not null;uniqueIndex:idx_branch_code_sem" json:"semester"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Branch    *Branch    `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	Resources []Resource `gorm:"foreignKey:SubjectID" json:"resources,omitempty"`
}

func (Subject) TableName() string {
	return "subjects"
}

// MinSemester and MaxSemester bound the vault semester facet.
const (
	MinSemester = 1
	MaxSemester = 8
)

// Resource types
const (
	ResourceTypePYQ   = "PYQ"
	ResourceTypeNotes = "NOTES"
	ResourceTypeBook  = "BOOK"
)

// Exam types
const (
	ExamTypeMid  = "MID"
	ExamTypeEnd  = "END"
	ExamTypeQuiz = "QUIZ"
	ExamTypeNA   = "NA"
)

// ValidResourceType reports whether t is a known resource type.
func ValidResourceType(t string) bool {
	switch t {
	case ResourceTypePYQ, ResourceTypeNotes, ResourceTypeBook:
		return true
	}
	return false
}

// Resource represents a study resource (PYQ, notes, book) for a subject
type Resource struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubjectID    uint      `gorm:"not null;index:idx_subject_type" json:"subject_id"`
	Title        string    `gorm:"size:300;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ResourceType string    `gorm:"size:10;not null;index:idx_subject_type" json:"resource_type"`
	ExamType     string    `gorm:"size:10;default:'NA'" json:"exam_type"`
	FileURL      string    `gorm:"size:300;not null" json:"file_url"`
	UploadedBy   string    `gorm:"size:100" json:"uploaded_by"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	IsVerified   bool      `gorm:"default:false;index:idx_active_verified" json:"is_verified"`
	IsActive     bool      `gorm:"default:true;index:idx_active_verified" json:"is_active"`

	Subject *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
}

func (Resource) TableName() string {
	return "resources"
}
