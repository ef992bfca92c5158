package repositories

import (
	"context"

	"nitp-innovhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ==========================================
// BRANCH REPOSITORY
// ==========================================

// BranchRepository handles branch data access
type BranchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

// Create creates a new branch
func (r *BranchRepository) Create(ctx context.Context, branch *models.Branch) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

// GetByID gets a branch by ID
func (r *BranchRepository) GetByID(ctx context.Context, id uint) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.WithContext(ctx).First(&branch, id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// GetByCode gets a branch by its short code
func (r *BranchRepository) GetByCode(ctx context.Context, code string) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&branch).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// ListActive lists active branches ordered by code
func (r *BranchRepository) ListActive(ctx context.Context) ([]*models.Branch, error) {
	var branches []*models.Branch
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("code ASC").
		Find(&branches).Error
	return branches, err
}

// Update updates a branch
func (r *BranchRepository) Update(ctx context.Context, branch *models.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}

// ==========================================
// SUBJECT REPOSITORY
// ==========================================

// SubjectRepository handles subject data access
type SubjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// Create creates a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

// GetByID gets a subject by ID with its branch loaded
func (r *SubjectRepository) GetByID(ctx context.Context, id uint) (*models.Subject, error) {
	var subject models.Subject
	err := r.db.WithContext(ctx).Preload("Branch").First(&subject, id).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// List lists active subjects, optionally restricted to a branch and semester
func (r *SubjectRepository) List(ctx context.Context, branchID *uint, semester *int) ([]*models.Subject, error) {
	var subjects []*models.Subject
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	if semester != nil {
		query = query.Where("semester = ?", *semester)
	}
	err := query.Order("semester ASC, code ASC").Find(&subjects).Error
	return subjects, err
}

// Update updates a subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

// ==========================================
// RESOURCE REPOSITORY
// ==========================================

// ResourceFilter narrows the vault listing. All set fields apply together.
type ResourceFilter struct {
	BranchCode   string
	Semester     *int
	SubjectID    *uint
	ResourceType string
	ExamType     string
	Search       string
	VerifiedOnly bool
}

// ResourceRepository handles resource data access
type ResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create creates a new resource
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

// GetByID gets a resource by ID with subject and branch loaded
func (r *ResourceRepository) GetByID(ctx context.Context, id uint) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Subject.Branch").
		First(&resource, id).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// List lists active resources matching the filter, newest upload first
func (r *ResourceRepository) List(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error) {
	var resources []*models.Resource

	query := r.db.WithContext(ctx).
		Model(&models.Resource{}).
		Joins("JOIN subjects ON subjects.id = resources.subject_id").
		Where("resources.is_active = ?", true).
		Where("subjects.is_active = ?", true)

	if filter.BranchCode != "" {
		query = query.
			Joins("JOIN branches ON branches.id = subjects.branch_id").
			Where("branches.code = ?", filter.BranchCode)
	}
	if filter.Semester != nil {
		query = query.Where("subjects.semester = ?", *filter.Semester)
	}
	if filter.SubjectID != nil {
		query = query.Where("resources.subject_id = ?", *filter.SubjectID)
	}
	if filter.ResourceType != "" {
		query = query.Where("resources.resource_type = ?", filter.ResourceType)
	}
	if filter.ExamType != "" {
		query = query.Where("resources.exam_type = ?", filter.ExamType)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("resources.title LIKE ? OR subjects.name LIKE ? OR subjects.code LIKE ?",
			pattern, pattern, pattern)
	}
	if filter.VerifiedOnly {
		query = query.Where("resources.is_verified = ?", true)
	}

	err := query.
		Preload("Subject").
		Preload("Subject.Branch").
		Order("resources.uploaded_at DESC").
		Find(&resources).Error
	return resources, err
}

// Update updates a resource
func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Save(resource).Error
}

// Delete soft-disables a resource
func (r *ResourceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Resource{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
