package services

import (
	"context"
	"errors"
	"log"
	"time"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/adapters/persistence/repositories"
	"nitp-innovhub/internal/config"
	"nitp-innovhub/internal/core/domain"
	"nitp-innovhub/internal/pkg/eligibility"

	"gorm.io/gorm"
)

// Application service errors
var (
	ErrApplicationNotFound = errors.New("mentor application not found")
	ErrInvalidBranch       = errors.New("invalid branch")
	ErrInvalidYear         = errors.New("invalid year of study")
)

// ApplicationService handles the mentor application workflow
type ApplicationService struct {
	appRepo *repositories.ApplicationRepository
	syncer  DirectorySyncer
	cfg     *config.Config
}

// NewApplicationService creates a new application service. The syncer may
// be nil; approvals then persist without touching the mentor directory.
func NewApplicationService(
	appRepo *repositories.ApplicationRepository,
	syncer DirectorySyncer,
	cfg *config.Config,
) *ApplicationService {
	return &ApplicationService{
		appRepo: appRepo,
		syncer:  syncer,
		cfg:     cfg,
	}
}

// SubmitApplicationInput represents a mentor application submission
type SubmitApplicationInput struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Branch          string `json:"branch" validate:"required"`
	Year            int    `json:"year" validate:"required"`
	Expertise       string `json:"expertise"`
	LinkedinProfile string `json:"linkedin_profile"`
	GithubProfile   string `json:"github_profile"`
	WhyMentor       string `json:"why_mentor"`
	MentorWhatsapp  string `json:"mentor_whatsapp" validate:"required"`
}

// ListApplicationsInput represents admin list filters
type ListApplicationsInput struct {
	Approved *bool
	Page     int
	Limit    int
}

// Submit persists a new unapproved application
func (s *ApplicationService) Submit(ctx context.Context, input *SubmitApplicationInput) (*models.MentorApplication, error) {
	if err := eligibility.Validate(input.Email, s.cfg.Institute.EmailDomain); err != nil {
		return nil, domain.ErrNonInstituteEmail
	}
	if !models.ValidBranch(input.Branch) {
		return nil, ErrInvalidBranch
	}
	if input.Year < 1 || input.Year > 5 {
		return nil, ErrInvalidYear
	}

	app := &models.MentorApplication{
		FullName:        input.FullName,
		Email:           input.Email,
		Branch:          input.Branch,
		Year:            input.Year,
		Expertise:       input.Expertise,
		LinkedinProfile: input.LinkedinProfile,
		GithubProfile:   input.GithubProfile,
		WhyMentor:       input.WhyMentor,
		MentorWhatsapp:  input.MentorWhatsapp,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	log.Printf("✅ Mentor application submitted: %s (%s)", app.FullName, app.Email)
	return app, nil
}

// GetByID gets an application by ID
func (s *ApplicationService) GetByID(ctx context.Context, id uint) (*models.MentorApplication, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

// List lists applications for the admin review screen
func (s *ApplicationService) List(ctx context.Context, input *ListApplicationsInput) ([]*models.MentorApplication, int64, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	offset := (input.Page - 1) * input.Limit
	return s.appRepo.List(ctx, input.Approved, offset, input.Limit)
}

// SetApproval stamps the review decision. Approving an application also
// syncs the mentor directory; both writes share one transaction when a
// directory syncer is configured.
func (s *ApplicationService) SetApproval(ctx context.Context, id uint, approved bool) (*models.MentorApplication, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	now := time.Now()
	app.IsApproved = approved
	app.ReviewedAt = &now

	if approved && s.syncer != nil {
		err = s.appRepo.DB().Transaction(func(tx *gorm.DB) error {
			if err := s.appRepo.WithTx(tx).Update(ctx, app); err != nil {
				return err
			}
			_, err := s.syncer.Sync(ctx, tx, app)
			return err
		})
	} else {
		err = s.appRepo.Update(ctx, app)
	}
	if err != nil {
		return nil, err
	}

	if approved {
		log.Printf("✅ Mentor application approved: %s", app.Email)
	} else {
		log.Printf("⚠️ Mentor application rejected: %s", app.Email)
	}
	return app, nil
}

// SetApprovalBulk applies one review decision to a set of applications and
// returns how many were actually updated. Unknown IDs are skipped.
func (s *ApplicationService) SetApprovalBulk(ctx context.Context, ids []uint, approved bool) (int, error) {
	apps, err := s.appRepo.GetByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, app := range apps {
		if _, err := s.SetApproval(ctx, app.ID, approved); err != nil {
			return count, err
		}
		count++
	}

	log.Printf("✅ Bulk review applied to %d applications (approved=%t)", count, approved)
	return count, nil
}
