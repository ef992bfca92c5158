package services

import (
	"context"
	"errors"
	"log"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/adapters/persistence/repositories"
	"nitp-innovhub/internal/config"
	"nitp-innovhub/internal/core/domain"
	"nitp-innovhub/internal/pkg/eligibility"

	"gorm.io/gorm"
)

// Site service errors
var (
	ErrInquiryNotFound = errors.New("inquiry not found")
)

// SiteService handles site content: configuration, navbar, bento cards,
// roadmaps and contact inquiries
type SiteService struct {
	siteRepo    *repositories.SiteRepository
	inquiryRepo *repositories.InquiryRepository
	cfg         *config.Config
}

// NewSiteService creates a new site service
func NewSiteService(
	siteRepo *repositories.SiteRepository,
	inquiryRepo *repositories.InquiryRepository,
	cfg *config.Config,
) *SiteService {
	return &SiteService{
		siteRepo:    siteRepo,
		inquiryRepo: inquiryRepo,
		cfg:         cfg,
	}
}

// UpdateConfigurationInput for admin configuration updates
type UpdateConfigurationInput struct {
	SiteName         *string `json:"site_name"`
	GuidanceVideoURL *string `json:"guidance_video_url"`
	VisionStatement  *string `json:"vision_statement"`
	FooterText       *string `json:"footer_text"`
}

// UpdateNavbarLinkInput for admin navbar link updates
type UpdateNavbarLinkInput struct {
	Label     *string `json:"label"`
	URL       *string `json:"url"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateRoadmapInput for admin roadmap updates
type UpdateRoadmapInput struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	ContentLink *string `json:"content_link"`
	IsActive    *bool   `json:"is_active"`
}

// SubmitInquiryInput represents a public contact inquiry
type SubmitInquiryInput struct {
	StudentName     string `json:"student_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Subject         string `json:"subject" validate:"required"`
	Message         string `json:"message" validate:"required"`
	StudentWhatsapp string `json:"student_whatsapp" validate:"required"`
}

// ListInquiriesInput represents admin inquiry list filters
type ListInquiriesInput struct {
	Resolved *bool
	Page     int
	Limit    int
}

// GetConfiguration returns the site configuration singleton
func (s *SiteService) GetConfiguration(ctx context.Context) (*models.SiteConfiguration, error) {
	cfg, err := s.siteRepo.GetConfiguration(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cfg, nil
}

// UpdateConfiguration updates the singleton (admin). A missing row is
// created on first update; the model hooks keep it single.
func (s *SiteService) UpdateConfiguration(ctx context.Context, input *UpdateConfigurationInput) (*models.SiteConfiguration, error) {
	cfg, err := s.siteRepo.GetConfiguration(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cfg = &models.SiteConfiguration{}
	}

	if input.SiteName != nil {
		cfg.SiteName = *input.SiteName
	}
	if input.GuidanceVideoURL != nil {
		cfg.GuidanceVideoURL = *input.GuidanceVideoURL
	}
	if input.VisionStatement != nil {
		cfg.VisionStatement = *input.VisionStatement
	}
	if input.FooterText != nil {
		cfg.FooterText = *input.FooterText
	}

	if err := s.siteRepo.SaveConfiguration(ctx, cfg); err != nil {
		return nil, err
	}

	log.Printf("✅ Site configuration updated")
	return cfg, nil
}

// GetNavbarLinks lists active navbar links in sort order
func (s *SiteService) GetNavbarLinks(ctx context.Context) ([]*models.NavbarLink, error) {
	return s.siteRepo.ListNavbarLinks(ctx)
}

// CreateNavbarLink creates a navbar link (admin)
func (s *SiteService) CreateNavbarLink(ctx context.Context, link *models.NavbarLink) (*models.NavbarLink, error) {
	if link.Label == "" || link.URL == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.siteRepo.CreateNavbarLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// UpdateNavbarLink patches a navbar link (admin). Absent fields keep
// their stored values.
func (s *SiteService) UpdateNavbarLink(ctx context.Context, id uint, input *UpdateNavbarLinkInput) (*models.NavbarLink, error) {
	link, err := s.siteRepo.GetNavbarLink(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if input.Label != nil {
		link.Label = *input.Label
	}
	if input.URL != nil {
		link.URL = *input.URL
	}
	if input.SortOrder != nil {
		link.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}
	if link.Label == "" || link.URL == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.siteRepo.UpdateNavbarLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// DeleteNavbarLink deletes a navbar link (admin)
func (s *SiteService) DeleteNavbarLink(ctx context.Context, id uint) error {
	if _, err := s.siteRepo.GetNavbarLink(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.siteRepo.DeleteNavbarLink(ctx, id)
}

// GetBentoCards lists active homepage cards in sort order
func (s *SiteService) GetBentoCards(ctx context.Context) ([]*models.BentoCard, error) {
	return s.siteRepo.ListBentoCards(ctx)
}

// CreateBentoCard creates a homepage card (admin)
func (s *SiteService) CreateBentoCard(ctx context.Context, card *models.BentoCard) (*models.BentoCard, error) {
	if card.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.siteRepo.CreateBentoCard(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// UpdateBentoCard updates a homepage card (admin)
func (s *SiteService) UpdateBentoCard(ctx context.Context, id uint, patch *models.BentoCard) (*models.BentoCard, error) {
	card, err := s.siteRepo.GetBentoCard(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if patch.Title != "" {
		card.Title = patch.Title
	}
	if patch.Description != "" {
		card.Description = patch.Description
	}
	if patch.IconName != "" {
		card.IconName = patch.IconName
	}
	if patch.LinkURL != "" {
		card.LinkURL = patch.LinkURL
	}
	if patch.ButtonText != "" {
		card.ButtonText = patch.ButtonText
	}
	if patch.SortOrder != 0 {
		card.SortOrder = patch.SortOrder
	}
	if patch.GridCols != 0 {
		card.GridCols = patch.GridCols
	}
	if patch.GridRows != 0 {
		card.GridRows = patch.GridRows
	}
	if patch.BgColor != "" {
		card.BgColor = patch.BgColor
	}

	if err := s.siteRepo.UpdateBentoCard(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// DeleteBentoCard deletes a homepage card (admin)
func (s *SiteService) DeleteBentoCard(ctx context.Context, id uint) error {
	if _, err := s.siteRepo.GetBentoCard(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.siteRepo.DeleteBentoCard(ctx, id)
}

// GetRoadmaps lists active roadmaps, optionally filtered by category
func (s *SiteService) GetRoadmaps(ctx context.Context, category string) ([]*models.GuidanceRoadmap, error) {
	return s.siteRepo.ListRoadmaps(ctx, category)
}

// CreateRoadmap creates a roadmap (admin)
func (s *SiteService) CreateRoadmap(ctx context.Context, roadmap *models.GuidanceRoadmap) (*models.GuidanceRoadmap, error) {
	if roadmap.Title == "" || roadmap.ContentLink == "" || roadmap.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.siteRepo.CreateRoadmap(ctx, roadmap); err != nil {
		return nil, err
	}
	return roadmap, nil
}

// UpdateRoadmap patches a roadmap (admin). Absent fields keep their
// stored values.
func (s *SiteService) UpdateRoadmap(ctx context.Context, id uint, input *UpdateRoadmapInput) (*models.GuidanceRoadmap, error) {
	roadmap, err := s.siteRepo.GetRoadmap(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if input.Title != nil {
		roadmap.Title = *input.Title
	}
	if input.Category != nil {
		roadmap.Category = *input.Category
	}
	if input.Description != nil {
		roadmap.Description = *input.Description
	}
	if input.ContentLink != nil {
		roadmap.ContentLink = *input.ContentLink
	}
	if input.IsActive != nil {
		roadmap.IsActive = *input.IsActive
	}
	if roadmap.Title == "" || roadmap.ContentLink == "" || roadmap.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.siteRepo.UpdateRoadmap(ctx, roadmap); err != nil {
		return nil, err
	}
	return roadmap, nil
}

// DeleteRoadmap deletes a roadmap (admin)
func (s *SiteService) DeleteRoadmap(ctx context.Context, id uint) error {
	if _, err := s.siteRepo.GetRoadmap(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.siteRepo.DeleteRoadmap(ctx, id)
}

// SubmitInquiry records a public contact inquiry
func (s *SiteService) SubmitInquiry(ctx context.Context, input *SubmitInquiryInput) (*models.Inquiry, error) {
	if err := eligibility.Validate(input.Email, s.cfg.Institute.EmailDomain); err != nil {
		return nil, domain.ErrNonInstituteEmail
	}

	inquiry := &models.Inquiry{
		StudentName:     input.StudentName,
		Email:           input.Email,
		Subject:         input.Subject,
		Message:         input.Message,
		StudentWhatsapp: input.StudentWhatsapp,
	}
	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	log.Printf("✅ Inquiry submitted by %s", inquiry.Email)
	return inquiry, nil
}

// ListInquiries lists inquiries for the admin screen
func (s *SiteService) ListInquiries(ctx context.Context, input *ListInquiriesInput) ([]*models.Inquiry, int64, error) {
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
	return s.inquiryRepo.List(ctx, input.Resolved, offset, input.Limit)
}

// ResolveInquiry marks an inquiry as resolved (admin)
func (s *SiteService) ResolveInquiry(ctx context.Context, id uint) (*models.Inquiry, error) {
	inquiry, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	inquiry.IsResolved = true
	if err := s.inquiryRepo.Update(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}
