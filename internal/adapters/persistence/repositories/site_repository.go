package repositories

import (
	"context"

	"nitp-innovhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SiteRepository handles site content data access: the configuration
// singleton, navbar links, bento cards and guidance roadmaps
type SiteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// GetConfiguration returns the single site configuration row
func (r *SiteRepository) GetConfiguration(ctx context.Context) (*models.SiteConfiguration, error) {
	var cfg models.SiteConfiguration
	err := r.db.WithContext(ctx).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfiguration updates the existing singleton or creates it when
// no row exists yet
func (r *SiteRepository) SaveConfiguration(ctx context.Context, cfg *models.SiteConfiguration) error {
	if cfg.ID == 0 {
		return r.db.WithContext(ctx).Create(cfg).Error
	}
	return r.db.WithContext(ctx).Save(cfg).Error
}

// ListNavbarLinks lists active navbar links in sort order
func (r *SiteRepository) ListNavbarLinks(ctx context.Context) ([]*models.NavbarLink, error) {
	var links []*models.NavbarLink
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&links).Error
	return links, err
}

// CreateNavbarLink creates a navbar link
func (r *SiteRepository) CreateNavbarLink(ctx context.Context, link *models.NavbarLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// GetNavbarLink gets a navbar link by ID
func (r *SiteRepository) GetNavbarLink(ctx context.Context, id uint) (*models.NavbarLink, error) {
	var link models.NavbarLink
	err := r.db.WithContext(ctx).First(&link, id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// UpdateNavbarLink updates a navbar link
func (r *SiteRepository) UpdateNavbarLink(ctx context.Context, link *models.NavbarLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

// DeleteNavbarLink deletes a navbar link
func (r *SiteRepository) DeleteNavbarLink(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.NavbarLink{}, id).Error
}

// ListBentoCards lists active bento cards in sort order
func (r *SiteRepository) ListBentoCards(ctx context.Context) ([]*models.BentoCard, error) {
	var cards []*models.BentoCard
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&cards).Error
	return cards, err
}

// CreateBentoCard creates a bento card
func (r *SiteRepository) CreateBentoCard(ctx context.Context, card *models.BentoCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// GetBentoCard gets a bento card by ID
func (r *SiteRepository) GetBentoCard(ctx context.Context, id uint) (*models.BentoCard, error) {
	var card models.BentoCard
	err := r.db.WithContext(ctx).First(&card, id).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateBentoCard updates a bento card
func (r *SiteRepository) UpdateBentoCard(ctx context.Context, card *models.BentoCard) error {
	return r.db.WithContext(ctx).Save(card).Error
}

// DeleteBentoCard deletes a bento card
func (r *SiteRepository) DeleteBentoCard(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.BentoCard{}, id).Error
}

// ListRoadmaps lists guidance roadmaps, optionally restricted to a category
func (r *SiteRepository) ListRoadmaps(ctx context.Context, category string) ([]*models.GuidanceRoadmap, error) {
	var roadmaps []*models.GuidanceRoadmap
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("created_at DESC").Find(&roadmaps).Error
	return roadmaps, err
}

// CreateRoadmap creates a guidance roadmap
func (r *SiteRepository) CreateRoadmap(ctx context.Context, roadmap *models.GuidanceRoadmap) error {
	return r.db.WithContext(ctx).Create(roadmap).Error
}

// GetRoadmap gets a guidance roadmap by ID
func (r *SiteRepository) GetRoadmap(ctx context.Context, id uint) (*models.GuidanceRoadmap, error) {
	var roadmap models.GuidanceRoadmap
	err := r.db.WithContext(ctx).First(&roadmap, id).Error
	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// UpdateRoadmap updates a guidance roadmap
func (r *SiteRepository) UpdateRoadmap(ctx context.Context, roadmap *models.GuidanceRoadmap) error {
	return r.db.WithContext(ctx).Save(roadmap).Error
}

// DeleteRoadmap deletes a guidance roadmap
func (r *SiteRepository) DeleteRoadmap(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.GuidanceRoadmap{}, id).Error
}
