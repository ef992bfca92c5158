package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Accounts & Sessions
// ============================================================

// User roles
const (
	RoleStudent = "STUDENT"
	RoleMentor  = "MENTOR"
	RoleAdmin   = "ADMIN"
)

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	FullName  string         `gorm:"size:100" json:"full_name"`
	Password  string         `gorm:"size:255" json:"-"`
	Role      string         `gorm:"size:20;default:'STUDENT'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// HasUsableCredential reports whether the account can log in.
// Accounts provisioned by the mentor directory sync have no password
// until one is set through a separate admin action.
func (u *User) HasUsableCredential() bool {
	return u.Password != ""
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Site Content
// ============================================================

// ErrSiteConfigSingleton is returned by the SiteConfiguration GORM hooks
// when a write would violate the single-row constraint.
var ErrSiteConfigSingleton = errors.New("site configuration is a singleton")

// SiteConfiguration is the single site-wide settings row.
// Exactly one row (pk=1) may exist; seeding or the first admin update creates it.
type SiteConfiguration struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	SiteName         string    `gorm:"size:100;default:'Innovation Hub'" json:"site_name"`
	GuidanceVideoURL string    `gorm:"size:300" json:"guidance_video_url"`
	VisionStatement  string    `gorm:"type:text" json:"vision_statement"`
	FooterText       string    `gorm:"size:200" json:"footer_text"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SiteConfiguration) TableName() string {
	return "site_configuration"
}

// BeforeCreate rejects a second configuration row.
func (sc *SiteConfiguration) BeforeCreate(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&SiteConfiguration{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSiteConfigSingleton
	}
	sc.ID = 1
	return nil
}

// BeforeDelete rejects deleting the only configuration row.
func (sc *SiteConfiguration) BeforeDelete(tx *gorm.DB) error {
	return ErrSiteConfigSingleton
}

// NavbarLink represents header/footer navigation links
type NavbarLink struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Label     string `gorm:"size:50;not null" json:"label"`
	URL       string `gorm:"size:200;not null" json:"url"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
}

func (NavbarLink) TableName() string {
	return "navbar_links"
}

// BentoCard represents a card on the bento grid homepage
type BentoCard struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	IconName    string `gorm:"size:50" json:"icon_name"`
	LinkURL     string `gorm:"size:200" json:"link_url"`
	ButtonText  string `gorm:"size:50;default:'Learn More'" json:"button_text"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
	GridCols    int    `gorm:"default:1" json:"grid_cols"`
	GridRows    int    `gorm:"default:1" json:"grid_rows"`
	BgColor     string `gorm:"size:50;default:'bg-zinc-900/20'" json:"bg_color"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

func (BentoCard) TableName() string {
	return "bento_cards"
}

// GuidanceRoadmap represents a learning roadmap/guide entry
type GuidanceRoadmap struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Category    string    `gorm:"size:20;not null;index" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	ContentLink string    `gorm:"size:300;not null" json:"content_link"`
	CreatedBy   string    `gorm:"size:100" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}

func (GuidanceRoadmap) TableName() string {
	return "guidance_roadmaps"
}

// Roadmap categories
const (
	RoadmapCategoryECE      = "ECE"
	RoadmapCategoryCSE      = "CSE"
	RoadmapCategorySoftware = "SOFTWARE"
	RoadmapCategoryHardware = "HARDWARE"
	RoadmapCategoryStartup  = "STARTUP"
	RoadmapCategoryResearch = "RESEARCH"
	RoadmapCategoryOther    = "OTHER"
)

// ============================================================
// Mentor Applications & Inquiries
// ============================================================

// MentorApplication represents an application from a senior to become a mentor
type MentorApplication struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	FullName        string     `gorm:"size:100;not null" json:"full_name"`
	Email           string     `gorm:"size:100;not null;index" json:"email"`
	Branch          string     `gorm:"size:10;not null" json:"branch"`
	Year            int        `gorm:"not null" json:"year"`
	Expertise       string     `gorm:"type:text" json:"expertise"`
	LinkedinProfile string     `gorm:"size:200" json:"linkedin_profile"`
	GithubProfile   string     `gorm:"size:200" json:"github_profile"`
	WhyMentor       string     `gorm:"type:text" json:"why_mentor"`
	MentorWhatsapp  string     `gorm:"size:20;not null" json:"-"`
	IsApproved      bool       `gorm:"default:false" json:"is_approved"`
	AppliedAt       time.Time  `gorm:"autoCreateTime" json:"applied_at"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
}

func (MentorApplication) TableName() string {
	return "mentor_applications"
}

// Bio returns the text synced into the directory profile:
// expertise, falling back to the motivation statement.
func (a *MentorApplication) Bio() string {
	if a.Expertise != "" {
		return a.Expertise
	}
	return a.WhyMentor
}

// Inquiry represents a contact inquiry from a student
type Inquiry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	StudentName     string    `gorm:"size:100;not null" json:"student_name"`
	Email           string    `gorm:"size:100;not null" json:"email"`
	Subject         string    `gorm:"size:200;not null" json:"subject"`
	Message         string    `gorm:"type:text;not null" json:"message"`
	StudentWhatsapp string    `gorm:"size:20;not null" json:"student_whatsapp"`
	IsResolved      bool      `gorm:"default:false" json:"is_resolved"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

// Branch codes shared by applications, profiles and roadmaps
const (
	BranchCSE   = "CSE"
	BranchECE   = "ECE"
	BranchEE    = "EE"
	BranchME    = "ME"
	BranchCE    = "CE"
	BranchARCH  = "ARCH"
	BranchOther = "OTHER"
)

// ValidBranch reports whether code is a known branch code.
func ValidBranch(code string) bool {
	switch code {
	case BranchCSE, BranchECE, BranchEE, BranchME, BranchCE, BranchARCH, BranchOther:
		return true
	}
	return false
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Accounts & sessions
		&User{},
		&RefreshToken{},
		// Site content
		&SiteConfiguration{},
		&NavbarLink{},
		&BentoCard{},
		&GuidanceRoadmap{},
		// Applications & inquiries
		&MentorApplication{},
		&Inquiry{},
		// Guidance
		&MentorProfile{},
		&MentorRequest{},
		&ChatMessage{},
		// Vault
		&Branch{},
		&Subject{},
		&Resource{},
	)
}
