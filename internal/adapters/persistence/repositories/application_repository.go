package repositories

import (
	"context"
	"time"

	"nitp-innovhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ApplicationRepository handles mentor application data access
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new mentor application
func (r *ApplicationRepository) Create(ctx context.Context, app *models.MentorApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// GetByID gets an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id uint) (*models.MentorApplication, error) {
	var app models.MentorApplication
	err := r.db.WithContext(ctx).First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByIDs gets a set of applications by ID
func (r *ApplicationRepository) GetByIDs(ctx context.Context, ids []uint) ([]*models.MentorApplication, error) {
	var apps []*models.MentorApplication
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&apps).Error
	return apps, err
}

// List lists applications, optionally filtered by approval state,
// newest first with pagination
func (r *ApplicationRepository) List(ctx context.Context, approved *bool, offset, limit int) ([]*models.MentorApplication, int64, error) {
	var apps []*models.MentorApplication
	var total int64

	query := r.db.WithContext(ctx).Model(&models.MentorApplication{})
	if approved != nil {
		query = query.Where("is_approved = ?", *approved)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("applied_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&apps).Error

	return apps, total, err
}

// Update updates an application
func (r *ApplicationRepository) Update(ctx context.Context, app *models.MentorApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}

// WithTx returns a copy of the repository bound to tx, so the approval
// write and the directory sync can share one transaction.
func (r *ApplicationRepository) WithTx(tx *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: tx}
}

// DB exposes the underlying handle for transaction scoping.
func (r *ApplicationRepository) DB() *gorm.DB {
	return r.db
}

// InquiryRepository handles contact inquiry data access
type InquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create creates a new inquiry
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

// GetByID gets an inquiry by ID
func (r *InquiryRepository) GetByID(ctx context.Context, id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.WithContext(ctx).First(&inquiry, id).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// List lists inquiries, optionally filtered by resolution state,
// newest first with pagination
func (r *InquiryRepository) List(ctx context.Context, resolved *bool, offset, limit int) ([]*models.Inquiry, int64, error) {
	var inquiries []*models.Inquiry
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Inquiry{})
	if resolved != nil {
		query = query.Where("is_resolved = ?", *resolved)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&inquiries).Error

	return inquiries, total, err
}

// Update updates an inquiry
func (r *InquiryRepository) Update(ctx context.Context, inquiry *models.Inquiry) error {
	return r.db.WithContext(ctx).Save(inquiry).Error
}

// ResolveOlderThan marks unresolved inquiries created before the cutoff
// as resolved and reports the affected count (maintenance job).
func (r *InquiryRepository) ResolveOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("is_resolved = ?", false).
		Where("created_at < ?", cutoff).
		Update("is_resolved", true)
	return result.RowsAffected, result.Error
}
