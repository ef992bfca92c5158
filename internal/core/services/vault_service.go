package services

import (
	"context"
	"errors"
	"log"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/adapters/persistence/repositories"
	"nitp-innovhub/internal/core/domain"

	"gorm.io/gorm"
)

// Vault service errors
var (
	ErrBranchNotFound      = errors.New("branch not found")
	ErrSubjectNotFound     = errors.New("subject not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrInvalidResourceType = errors.New("invalid resource type")
	ErrInvalidSemester     = errors.New("invalid semester")
)

// VaultService handles the study resource catalog
type VaultService struct {
	branchRepo   *repositories.BranchRepository
	subjectRepo  *repositories.SubjectRepository
	resourceRepo *repositories.ResourceRepository
}

// NewVaultService creates a new vault service
func NewVaultService(
	branchRepo *repositories.BranchRepository,
	subjectRepo *repositories.SubjectRepository,
	resourceRepo *repositories.ResourceRepository,
) *VaultService {
	return &VaultService{
		branchRepo:   branchRepo,
		subjectRepo:  subjectRepo,
		resourceRepo: resourceRepo,
	}
}

// ListResourcesInput represents the vault listing filters. All set
// filters apply together; values outside their domain are ignored.
type ListResourcesInput struct {
	BranchCode   string
	Semester     *int
	ResourceType string
	ExamType     string
	Search       string
}

// SubjectGroup is one subject with its matching resources
type SubjectGroup struct {
	Subject   *models.Subject    `json:"subject"`
	Resources []*models.Resource `json:"resources"`
}

// VaultListing is the full vault page payload: grouped results plus the
// facets the filter sidebar renders from
type VaultListing struct {
	Groups        []*SubjectGroup  `json:"groups"`
	Branches      []*models.Branch `json:"branches"`
	Semesters     []int            `json:"semesters"`
	ResourceTypes []string         `json:"resource_types"`
	Total         int              `json:"total"`
}

// CreateSubjectInput for admin subject creation
type CreateSubjectInput struct {
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code" validate:"required"`
	BranchID uint   `json:"branch_id" validate:"required"`
	Semester int    `json:"semester" validate:"required"`
}

// CreateResourceInput for admin resource creation
type CreateResourceInput struct {
	SubjectID    uint   `json:"subject_id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	ResourceType string `json:"resource_type" validate:"required"`
	ExamType     string `json:"exam_type"`
	FileURL      string `json:"file_url" validate:"required"`
	UploadedBy   string `json:"uploaded_by"`
	IsVerified   bool   `json:"is_verified"`
}

// UpdateResourceInput for admin resource updates
type UpdateResourceInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ExamType    *string `json:"exam_type"`
	FileURL     *string `json:"file_url"`
	IsVerified  *bool   `json:"is_verified"`
	IsActive    *bool   `json:"is_active"`
}

// ListResources lists active resources matching the filters, grouped by
// subject, together with the filter facets and the total match count
func (s *VaultService) ListResources(ctx context.Context, input *ListResourcesInput) (*VaultListing, error) {
	filter := repositories.ResourceFilter{
		BranchCode: input.BranchCode,
		Search:     input.Search,
	}

	// Out-of-range semesters are dropped, not rejected
	if input.Semester != nil && *input.Semester >= models.MinSemester && *input.Semester <= models.MaxSemester {
		filter.Semester = input.Semester
	}
	if models.ValidResourceType(input.ResourceType) {
		filter.ResourceType = input.ResourceType
	}
	switch input.ExamType {
	case models.ExamTypeMid, models.ExamTypeEnd, models.ExamTypeQuiz:
		filter.ExamType = input.ExamType
	}

	resources, err := s.resourceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	branches, err := s.branchRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	// Group by subject preserving first-seen order
	groupIndex := make(map[uint]*SubjectGroup)
	var groups []*SubjectGroup
	for _, res := range resources {
		group, ok := groupIndex[res.SubjectID]
		if !ok {
			group = &SubjectGroup{Subject: res.Subject}
			groupIndex[res.SubjectID] = group
			groups = append(groups, group)
		}
		group.Resources = append(group.Resources, res)
	}
	if groups == nil {
		groups = []*SubjectGroup{}
	}

	semesters := make([]int, 0, models.MaxSemester)
	for sem := models.MinSemester; sem <= models.MaxSemester; sem++ {
		semesters = append(semesters, sem)
	}

	return &VaultListing{
		Groups:        groups,
		Branches:      branches,
		Semesters:     semesters,
		ResourceTypes: []string{models.ResourceTypePYQ, models.ResourceTypeNotes, models.ResourceTypeBook},
		Total:         len(resources),
	}, nil
}

// ListBranches lists active branches
func (s *VaultService) ListBranches(ctx context.Context) ([]*models.Branch, error) {
	return s.branchRepo.ListActive(ctx)
}

// ListSubjects lists active subjects filtered by branch code and semester
func (s *VaultService) ListSubjects(ctx context.Context, branchCode string, semester *int) ([]*models.Subject, error) {
	var branchID *uint
	if branchCode != "" {
		branch, err := s.branchRepo.GetByCode(ctx, branchCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBranchNotFound
			}
			return nil, err
		}
		branchID = &branch.ID
	}
	if semester != nil && (*semester < models.MinSemester || *semester > models.MaxSemester) {
		semester = nil
	}
	return s.subjectRepo.List(ctx, branchID, semester)
}

// CreateBranch creates a branch (admin)
func (s *VaultService) CreateBranch(ctx context.Context, branch *models.Branch) (*models.Branch, error) {
	if branch.Name == "" || branch.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}
	log.Printf("✅ Branch created: %s", branch.Code)
	return branch, nil
}

// UpdateBranch updates a branch (admin)
func (s *VaultService) UpdateBranch(ctx context.Context, id uint, name, description *string, isActive *bool) (*models.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	if name != nil {
		branch.Name = *name
	}
	if description != nil {
		branch.Description = *description
	}
	if isActive != nil {
		branch.IsActive = *isActive
	}
	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// CreateSubject creates a subject (admin)
func (s *VaultService) CreateSubject(ctx context.Context, input *CreateSubjectInput) (*models.Subject, error) {
	if input.Semester < models.MinSemester || input.Semester > models.MaxSemester {
		return nil, ErrInvalidSemester
	}
	if _, err := s.branchRepo.GetByID(ctx, input.BranchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}

	subject := &models.Subject{
		Name:     input.Name,
		Code:     input.Code,
		BranchID: input.BranchID,
		Semester: input.Semester,
		IsActive: true,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	log.Printf("✅ Subject created: %s (sem %d)", subject.Code, subject.Semester)
	return subject, nil
}

// CreateResource creates a resource (admin)
func (s *VaultService) CreateResource(ctx context.Context, input *CreateResourceInput) (*models.Resource, error) {
	if !models.ValidResourceType(input.ResourceType) {
		return nil, ErrInvalidResourceType
	}
	if _, err := s.subjectRepo.GetByID(ctx, input.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	examType := input.ExamType
	if examType == "" {
		examType = models.ExamTypeNA
	}

	resource := &models.Resource{
		SubjectID:    input.SubjectID,
		Title:        input.Title,
		Description:  input.Description,
		ResourceType: input.ResourceType,
		ExamType:     examType,
		FileURL:      input.FileURL,
		UploadedBy:   input.UploadedBy,
		IsVerified:   input.IsVerified,
		IsActive:     true,
	}
	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}
	log.Printf("✅ Resource created: %s (%s)", resource.Title, resource.ResourceType)
	return resource, nil
}

// UpdateResource updates a resource (admin)
func (s *VaultService) UpdateResource(ctx context.Context, id uint, input *UpdateResourceInput) (*models.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		resource.Title = *input.Title
	}
	if input.Description != nil {
		resource.Description = *input.Description
	}
	if input.ExamType != nil {
		resource.ExamType = *input.ExamType
	}
	if input.FileURL != nil {
		resource.FileURL = *input.FileURL
	}
	if input.IsVerified != nil {
		resource.IsVerified = *input.IsVerified
	}
	if input.IsActive != nil {
		resource.IsActive = *input.IsActive
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// DeleteResource disables a resource (admin, soft delete)
func (s *VaultService) DeleteResource(ctx context.Context, id uint) error {
	if _, err := s.resourceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResourceNotFound
		}
		return err
	}
	return s.resourceRepo.Delete(ctx, id)
}
