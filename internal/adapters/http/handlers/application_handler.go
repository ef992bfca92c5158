package handlers

import (
	"errors"
	"strconv"
	"strings"

	"nitp-innovhub/internal/core/domain"
	"nitp-innovhub/internal/core/services"
	"nitp-innovhub/internal/pkg/pagination"
	"nitp-innovhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler handles mentor application endpoints
type ApplicationHandler struct {
	appService *services.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		appService: appService,
	}
}

// SubmitApplicationRequest represents a mentor application submission
type SubmitApplicationRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Branch          string `json:"branch"`
	Year            int    `json:"year"`
	Expertise       string `json:"expertise"`
	LinkedinProfile string `json:"linkedin_profile"`
	GithubProfile   string `json:"github_profile"`
	WhyMentor       string `json:"why_mentor"`
	MentorWhatsapp  string `json:"mentor_whatsapp"`
}

// BulkReviewRequest represents a bulk review decision
type BulkReviewRequest struct {
	IDs      []uint `json:"ids"`
	Approved bool   `json:"approved"`
}

// Submit handles a public mentor application
// @Summary Apply to become a mentor
// @Description Submit a mentor application for admin review
// @Tags Applications
// @Accept json
// @Produce json
// @Param body body SubmitApplicationRequest true "Application data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var req SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if req.FullName == "" {
		return response.BadRequest(c, "Full name is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Branch == "" {
		return response.BadRequest(c, "Branch is required")
	}
	if req.Year == 0 {
		return response.BadRequest(c, "Year of study is required")
	}
	if req.MentorWhatsapp == "" {
		return response.BadRequest(c, "WhatsApp number is required")
	}

	input := &services.SubmitApplicationInput{
		FullName:        strings.TrimSpace(req.FullName),
		Email:           strings.TrimSpace(req.Email),
		Branch:          strings.ToUpper(strings.TrimSpace(req.Branch)),
		Year:            req.Year,
		Expertise:       req.Expertise,
		LinkedinProfile: req.LinkedinProfile,
		GithubProfile:   req.GithubProfile,
		WhyMentor:       req.WhyMentor,
		MentorWhatsapp:  strings.TrimSpace(req.MentorWhatsapp),
	}

	app, err := h.appService.Submit(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNonInstituteEmail):
			return response.BadRequest(c, "Only institute email addresses are allowed")
		case errors.Is(err, services.ErrInvalidBranch):
			return response.BadRequest(c, "Invalid branch")
		case errors.Is(err, services.ErrInvalidYear):
			return response.BadRequest(c, "Invalid year of study")
		default:
			return response.InternalServerError(c, "Failed to submit application")
		}
	}

	return response.Created(c, "Application submitted successfully", fiber.Map{
		"application": app,
	})
}

// List handles listing applications (Admin only)
// @Summary List mentor applications
// @Description Get a paginated list of applications, optionally filtered by review state (Admin only)
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param approved query bool false "Filter by approval state"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	input := &services.ListApplicationsInput{
		Page:  params.Page,
		Limit: params.Limit,
	}
	if raw := c.Query("approved"); raw != "" {
		if approved, err := strconv.ParseBool(raw); err == nil {
			input.Approved = &approved
		}
	}

	apps, total, err := h.appService.List(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}

	return response.Success(c, "Applications retrieved successfully", fiber.Map{
		"applications": apps,
		"meta":         pagination.GetMeta(params, total),
	})
}

// Approve handles approving an application (Admin only)
// @Summary Approve mentor application
// @Description Approve an application and provision the mentor's directory entry (Admin only)
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/applications/{id}/approve [put]
func (h *ApplicationHandler) Approve(c *fiber.Ctx) error {
	return h.review(c, true)
}

// Reject handles rejecting an application (Admin only)
// @Summary Reject mentor application
// @Description Mark an application as reviewed and not approved (Admin only)
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/applications/{id}/reject [put]
func (h *ApplicationHandler) Reject(c *fiber.Ctx) error {
	return h.review(c, false)
}

func (h *ApplicationHandler) review(c *fiber.Ctx, approved bool) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid application ID")
	}

	app, err := h.appService.SetApproval(c.Context(), uint(id), approved)
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			return response.NotFound(c, "Application not found")
		}
		return response.InternalServerError(c, "Failed to review application")
	}

	message := "Application rejected"
	if approved {
		message = "Application approved"
	}
	return response.Success(c, message, fiber.Map{
		"application": app,
	})
}

// BulkReview handles a bulk review decision (Admin only)
// @Summary Bulk review applications
// @Description Apply one review decision to a set of applications (Admin only)
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BulkReviewRequest true "Review decision"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/applications/bulk [post]
func (h *ApplicationHandler) BulkReview(c *fiber.Ctx) error {
	var req BulkReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(req.IDs) == 0 {
		return response.BadRequest(c, "No application IDs provided")
	}

	count, err := h.appService.SetApprovalBulk(c.Context(), req.IDs, req.Approved)
	if err != nil {
		return response.InternalServerError(c, "Failed to review applications")
	}

	return response.Success(c, "Bulk review applied", fiber.Map{
		"reviewed": count,
	})
}
