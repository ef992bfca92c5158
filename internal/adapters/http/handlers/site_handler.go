package handlers

import (
	"errors"
	"strconv"
	"strings"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/core/domain"
	"nitp-innovhub/internal/core/services"
	"nitp-innovhub/internal/pkg/pagination"
	"nitp-innovhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SiteHandler handles site content and inquiry endpoints
type SiteHandler struct {
	siteService *services.SiteService
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(siteService *services.SiteService) *SiteHandler {
	return &SiteHandler{
		siteService: siteService,
	}
}

// GetConfiguration handles reading the site configuration
// @Summary Get site configuration
// @Description Get the site-wide settings (name, vision, footer, guidance video)
// @Tags Site
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /site/config [get]
func (h *SiteHandler) GetConfiguration(c *fiber.Ctx) error {
	cfg, err := h.siteService.GetConfiguration(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Site configuration not set")
		}
		return response.InternalServerError(c, "Failed to get configuration")
	}

	return response.Success(c, "Configuration retrieved successfully", fiber.Map{
		"configuration": cfg,
	})
}

// UpdateConfiguration handles updating the site configuration (Admin only)
// @Summary Update site configuration
// @Description Update the site-wide settings (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UpdateConfigurationInput true "Configuration data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/site/config [put]
func (h *SiteHandler) UpdateConfiguration(c *fiber.Ctx) error {
	var input services.UpdateConfigurationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	cfg, err := h.siteService.UpdateConfiguration(c.Context(), &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to update configuration")
	}

	return response.Success(c, "Configuration updated successfully", fiber.Map{
		"configuration": cfg,
	})
}

// GetNavbarLinks handles listing navbar links
// @Summary List navbar links
// @Description List active navigation links in display order
// @Tags Site
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /site/navbar [get]
func (h *SiteHandler) GetNavbarLinks(c *fiber.Ctx) error {
	links, err := h.siteService.GetNavbarLinks(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list navbar links")
	}

	return response.Success(c, "Navbar links retrieved successfully", fiber.Map{
		"links": links,
	})
}

// CreateNavbarLink handles navbar link creation (Admin only)
// @Summary Create navbar link
// @Description Create a navigation link (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.NavbarLink true "Link data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/site/navbar [post]
func (h *SiteHandler) CreateNavbarLink(c *fiber.Ctx) error {
	var link models.NavbarLink
	if err := c.BodyParser(&link); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	link.ID = 0
	link.IsActive = true

	created, err := h.siteService.CreateNavbarLink(c.Context(), &link)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Label and URL are required")
		}
		return response.InternalServerError(c, "Failed to create navbar link")
	}

	return response.Created(c, "Navbar link created successfully", fiber.Map{
		"link": created,
	})
}

// UpdateNavbarLink handles navbar link edits (Admin only)
// @Summary Update navbar link
// @Description Patch a navigation link (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Param body body services.UpdateNavbarLinkInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/site/navbar/{id} [put]
func (h *SiteHandler) UpdateNavbarLink(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid link ID")
	}

	var input services.UpdateNavbarLinkInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.siteService.UpdateNavbarLink(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Navbar link not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Label and URL cannot be blank")
		}
		return response.InternalServerError(c, "Failed to update navbar link")
	}

	return response.Success(c, "Navbar link updated successfully", fiber.Map{
		"link": updated,
	})
}

// DeleteNavbarLink handles navbar link deletion (Admin only)
// @Summary Delete navbar link
// @Description Delete a navigation link (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/site/navbar/{id} [delete]
func (h *SiteHandler) DeleteNavbarLink(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid link ID")
	}

	if err := h.siteService.DeleteNavbarLink(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Navbar link not found")
		}
		return response.InternalServerError(c, "Failed to delete navbar link")
	}

	return response.Success(c, "Navbar link deleted successfully", nil)
}

// GetBentoCards handles listing homepage cards
// @Summary List homepage cards
// @Description List active bento grid cards in display order
// @Tags Site
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /site/cards [get]
func (h *SiteHandler) GetBentoCards(c *fiber.Ctx) error {
	cards, err := h.siteService.GetBentoCards(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list cards")
	}

	return response.Success(c, "Cards retrieved successfully", fiber.Map{
		"cards": cards,
	})
}

// CreateBentoCard handles homepage card creation (Admin only)
// @Summary Create homepage card
// @Description Create a bento grid card (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.BentoCard true "Card data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/site/cards [post]
func (h *SiteHandler) CreateBentoCard(c *fiber.Ctx) error {
	var card models.BentoCard
	if err := c.BodyParser(&card); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	card.ID = 0
	card.IsActive = true

	created, err := h.siteService.CreateBentoCard(c.Context(), &card)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Title is required")
		}
		return response.InternalServerError(c, "Failed to create card")
	}

	return response.Created(c, "Card created successfully", fiber.Map{
		"card": created,
	})
}

// UpdateBentoCard handles homepage card updates (Admin only)
// @Summary Update homepage card
// @Description Update a bento grid card (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Param body body models.BentoCard true "Card data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/site/cards/{id} [put]
func (h *SiteHandler) UpdateBentoCard(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid card ID")
	}

	var patch models.BentoCard
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	card, err := h.siteService.UpdateBentoCard(c.Context(), uint(id), &patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Card not found")
		}
		return response.InternalServerError(c, "Failed to update card")
	}

	return response.Success(c, "Card updated successfully", fiber.Map{
		"card": card,
	})
}

// DeleteBentoCard handles homepage card deletion (Admin only)
// @Summary Delete homepage card
// @Description Delete a bento grid card (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/site/cards/{id} [delete]
func (h *SiteHandler) DeleteBentoCard(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid card ID")
	}

	if err := h.siteService.DeleteBentoCard(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Card not found")
		}
		return response.InternalServerError(c, "Failed to delete card")
	}

	return response.Success(c, "Card deleted successfully", nil)
}

// GetRoadmaps handles listing guidance roadmaps
// @Summary List roadmaps
// @Description List active learning roadmaps, optionally filtered by category
// @Tags Site
// @Accept json
// @Produce json
// @Param category query string false "Roadmap category"
// @Success 200 {object} response.Response
// @Router /site/roadmaps [get]
func (h *SiteHandler) GetRoadmaps(c *fiber.Ctx) error {
	category := strings.ToUpper(c.Query("category"))

	roadmaps, err := h.siteService.GetRoadmaps(c.Context(), category)
	if err != nil {
		return response.InternalServerError(c, "Failed to list roadmaps")
	}

	return response.Success(c, "Roadmaps retrieved successfully", fiber.Map{
		"roadmaps": roadmaps,
	})
}

// CreateRoadmap handles roadmap creation (Admin only)
// @Summary Create roadmap
// @Description Create a learning roadmap (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.GuidanceRoadmap true "Roadmap data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/site/roadmaps [post]
func (h *SiteHandler) CreateRoadmap(c *fiber.Ctx) error {
	var roadmap models.GuidanceRoadmap
	if err := c.BodyParser(&roadmap); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	roadmap.ID = 0
	roadmap.Category = strings.ToUpper(roadmap.Category)
	roadmap.IsActive = true

	created, err := h.siteService.CreateRoadmap(c.Context(), &roadmap)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Title, category and content link are required")
		}
		return response.InternalServerError(c, "Failed to create roadmap")
	}

	return response.Created(c, "Roadmap created successfully", fiber.Map{
		"roadmap": created,
	})
}

// UpdateRoadmap handles roadmap edits (Admin only)
// @Summary Update roadmap
// @Description Patch a learning roadmap (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Roadmap ID"
// @Param body body services.UpdateRoadmapInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/site/roadmaps/{id} [put]
func (h *SiteHandler) UpdateRoadmap(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid roadmap ID")
	}

	var input services.UpdateRoadmapInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Category != nil {
		upper := strings.ToUpper(*input.Category)
		input.Category = &upper
	}

	updated, err := h.siteService.UpdateRoadmap(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Roadmap not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Title, category and content link cannot be blank")
		}
		return response.InternalServerError(c, "Failed to update roadmap")
	}

	return response.Success(c, "Roadmap updated successfully", fiber.Map{
		"roadmap": updated,
	})
}

// DeleteRoadmap handles roadmap deletion (Admin only)
// @Summary Delete roadmap
// @Description Delete a learning roadmap (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Roadmap ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/site/roadmaps/{id} [delete]
func (h *SiteHandler) DeleteRoadmap(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid roadmap ID")
	}

	if err := h.siteService.DeleteRoadmap(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Roadmap not found")
		}
		return response.InternalServerError(c, "Failed to delete roadmap")
	}

	return response.Success(c, "Roadmap deleted successfully", nil)
}

// SubmitInquiry handles a public contact inquiry
// @Summary Submit inquiry
// @Description Submit a contact inquiry with an institute email address
// @Tags Site
// @Accept json
// @Produce json
// @Param body body services.SubmitInquiryInput true "Inquiry data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /inquiries [post]
func (h *SiteHandler) SubmitInquiry(c *fiber.Ctx) error {
	var input services.SubmitInquiryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if input.StudentName == "" {
		return response.BadRequest(c, "Name is required")
	}
	if input.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if input.Subject == "" {
		return response.BadRequest(c, "Subject is required")
	}
	if input.Message == "" {
		return response.BadRequest(c, "Message is required")
	}
	if input.StudentWhatsapp == "" {
		return response.BadRequest(c, "WhatsApp number is required")
	}

	inquiry, err := h.siteService.SubmitInquiry(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrNonInstituteEmail) {
			return response.BadRequest(c, "Only institute email addresses are allowed")
		}
		return response.InternalServerError(c, "Failed to submit inquiry")
	}

	return response.Created(c, "Inquiry submitted successfully", fiber.Map{
		"inquiry": inquiry,
	})
}

// ListInquiries handles listing inquiries (Admin only)
// @Summary List inquiries
// @Description Get a paginated list of inquiries, optionally filtered by resolution state (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resolved query bool false "Filter by resolution state"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/inquiries [get]
func (h *SiteHandler) ListInquiries(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	input := &services.ListInquiriesInput{
		Page:  params.Page,
		Limit: params.Limit,
	}
	if raw := c.Query("resolved"); raw != "" {
		if resolved, err := strconv.ParseBool(raw); err == nil {
			input.Resolved = &resolved
		}
	}

	inquiries, total, err := h.siteService.ListInquiries(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list inquiries")
	}

	return response.Success(c, "Inquiries retrieved successfully", fiber.Map{
		"inquiries": inquiries,
		"meta":      pagination.GetMeta(params, total),
	})
}

// ResolveInquiry handles resolving an inquiry (Admin only)
// @Summary Resolve inquiry
// @Description Mark an inquiry as resolved (Admin only)
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/inquiries/{id}/resolve [put]
func (h *SiteHandler) ResolveInquiry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid inquiry ID")
	}

	inquiry, err := h.siteService.ResolveInquiry(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrInquiryNotFound) {
			return response.NotFound(c, "Inquiry not found")
		}
		return response.InternalServerError(c, "Failed to resolve inquiry")
	}

	return response.Success(c, "Inquiry resolved", fiber.Map{
		"inquiry": inquiry,
	})
}
