package handlers

import (
	"errors"
	"strconv"
	"strings"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/core/domain"
	"nitp-innovhub/internal/core/services"
	"nitp-innovhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VaultHandler handles study resource vault endpoints
type VaultHandler struct {
	vaultService *services.VaultService
}

// NewVaultHandler creates a new vault handler
func NewVaultHandler(vaultService *services.VaultService) *VaultHandler {
	return &VaultHandler{
		vaultService: vaultService,
	}
}

// CreateBranchRequest represents admin branch creation
type CreateBranchRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ListResources handles the public vault listing
// @Summary Browse the resource vault
// @Description List active study resources grouped by subject; filters combine
// @Tags Vault
// @Accept json
// @Produce json
// @Param branch query string false "Branch code"
// @Param semester query int false "Semester (1-8)"
// @Param type query string false "Resource type (PYQ, NOTES, BOOK)"
// @Param exam query string false "Exam type (MID, END, QUIZ)"
// @Param q query string false "Search in title and subject"
// @Success 200 {object} response.Response
// @Router /vault/resources [get]
func (h *VaultHandler) ListResources(c *fiber.Ctx) error {
	input := &services.ListResourcesInput{
		BranchCode:   strings.ToUpper(c.Query("branch")),
		ResourceType: strings.ToUpper(c.Query("type")),
		ExamType:     strings.ToUpper(c.Query("exam")),
		Search:       c.Query("q"),
	}

	// Malformed semester values are ignored, not rejected
	if raw := c.Query("semester"); raw != "" {
		if sem, err := strconv.Atoi(raw); err == nil {
			input.Semester = &sem
		}
	}

	listing, err := h.vaultService.ListResources(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list resources")
	}

	return response.Success(c, "Resources retrieved successfully", listing)
}

// ListBranches handles listing active branches
// @Summary List branches
// @Description List active engineering branches
// @Tags Vault
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /vault/branches [get]
func (h *VaultHandler) ListBranches(c *fiber.Ctx) error {
	branches, err := h.vaultService.ListBranches(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list branches")
	}

	return response.Success(c, "Branches retrieved successfully", fiber.Map{
		"branches": branches,
	})
}

// ListSubjects handles listing subjects
// @Summary List subjects
// @Description List active subjects, optionally filtered by branch and semester
// @Tags Vault
// @Accept json
// @Produce json
// @Param branch query string false "Branch code"
// @Param semester query int false "Semester (1-8)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vault/subjects [get]
func (h *VaultHandler) ListSubjects(c *fiber.Ctx) error {
	branchCode := strings.ToUpper(c.Query("branch"))

	var semester *int
	if raw := c.Query("semester"); raw != "" {
		if sem, err := strconv.Atoi(raw); err == nil {
			semester = &sem
		}
	}

	subjects, err := h.vaultService.ListSubjects(c.Context(), branchCode, semester)
	if err != nil {
		if errors.Is(err, services.ErrBranchNotFound) {
			return response.NotFound(c, "Branch not found")
		}
		return response.InternalServerError(c, "Failed to list subjects")
	}

	return response.Success(c, "Subjects retrieved successfully", fiber.Map{
		"subjects": subjects,
	})
}

// CreateBranch handles branch creation (Admin only)
// @Summary Create branch
// @Description Create an engineering branch (Admin only)
// @Tags Vault
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateBranchRequest true "Branch data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/vault/branches [post]
func (h *VaultHandler) CreateBranch(c *fiber.Ctx) error {
	var req CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	branch := &models.Branch{
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Description: req.Description,
		IsActive:    true,
	}

	created, err := h.vaultService.CreateBranch(c.Context(), branch)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Name and code are required")
		}
		return response.InternalServerError(c, "Failed to create branch")
	}

	return response.Created(c, "Branch created successfully", fiber.Map{
		"branch": created,
	})
}

// CreateSubject handles subject creation (Admin only)
// @Summary Create subject
// @Description Create a subject under a branch and semester (Admin only)
// @Tags Vault
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateSubjectInput true "Subject data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/vault/subjects [post]
func (h *VaultHandler) CreateSubject(c *fiber.Ctx) error {
	var input services.CreateSubjectInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Name == "" || input.Code == "" {
		return response.BadRequest(c, "Name and code are required")
	}

	subject, err := h.vaultService.CreateSubject(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSemester):
			return response.BadRequest(c, "Semester must be between 1 and 8")
		case errors.Is(err, services.ErrBranchNotFound):
			return response.NotFound(c, "Branch not found")
		default:
			return response.InternalServerError(c, "Failed to create subject")
		}
	}

	return response.Created(c, "Subject created successfully", fiber.Map{
		"subject": subject,
	})
}

// CreateResource handles resource creation (Admin only)
// @Summary Create resource
// @Description Add a study resource to a subject (Admin only)
// @Tags Vault
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateResourceInput true "Resource data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/vault/resources [post]
func (h *VaultHandler) CreateResource(c *fiber.Ctx) error {
	var input services.CreateResourceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Title == "" {
		return response.BadRequest(c, "Title is required")
	}
	if input.FileURL == "" {
		return response.BadRequest(c, "File URL is required")
	}

	resource, err := h.vaultService.CreateResource(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidResourceType):
			return response.BadRequest(c, "Resource type must be PYQ, NOTES or BOOK")
		case errors.Is(err, services.ErrSubjectNotFound):
			return response.NotFound(c, "Subject not found")
		default:
			return response.InternalServerError(c, "Failed to create resource")
		}
	}

	return response.Created(c, "Resource created successfully", fiber.Map{
		"resource": resource,
	})
}

// UpdateResource handles resource updates (Admin only)
// @Summary Update resource
// @Description Update a study resource (Admin only)
// @Tags Vault
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Param body body services.UpdateResourceInput true "Update data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/vault/resources/{id} [put]
func (h *VaultHandler) UpdateResource(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid resource ID")
	}

	var input services.UpdateResourceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	resource, err := h.vaultService.UpdateResource(c.Context(), uint(id), &input)
	if err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			return response.NotFound(c, "Resource not found")
		}
		return response.InternalServerError(c, "Failed to update resource")
	}

	return response.Success(c, "Resource updated successfully", fiber.Map{
		"resource": resource,
	})
}

// DeleteResource handles resource deletion (Admin only)
// @Summary Delete resource
// @Description Disable a study resource (Admin only)
// @Tags Vault
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/vault/resources/{id} [delete]
func (h *VaultHandler) DeleteResource(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid resource ID")
	}

	if err := h.vaultService.DeleteResource(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			return response.NotFound(c, "Resource not found")
		}
		return response.InternalServerError(c, "Failed to delete resource")
	}

	return response.Success(c, "Resource deleted successfully", nil)
}
