package handlers

import (
	"errors"
	"strconv"

	"nitp-innovhub/internal/core/domain"
	"nitp-innovhub/internal/core/services"
	"nitp-innovhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// GuidanceHandler handles mentor directory, request and chat endpoints
type GuidanceHandler struct {
	guidanceService *services.GuidanceService
}

// NewGuidanceHandler creates a new guidance handler
func NewGuidanceHandler(guidanceService *services.GuidanceService) *GuidanceHandler {
	return &GuidanceHandler{
		guidanceService: guidanceService,
	}
}

// CreateRequestRequest represents a guidance request submission
type CreateRequestRequest struct {
	Message         string `json:"message"`
	StudentWhatsapp string `json:"student_whatsapp"`
}

// PostMessageRequest represents a chat message submission
type PostMessageRequest struct {
	Body string `json:"body"`
}

// ListMentors handles the public mentor directory
// @Summary List approved mentors
// @Description List approved mentor profiles; authenticated viewers see which mentors already accepted them
// @Tags Guidance
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /guidance/mentors [get]
func (h *GuidanceHandler) ListMentors(c *fiber.Ctx) error {
	// Zero when unauthenticated (OptionalAuth)
	viewerID, _ := c.Locals("userID").(uint)

	mentors, err := h.guidanceService.ListMentors(c.Context(), viewerID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list mentors")
	}

	return response.Success(c, "Mentors retrieved successfully", fiber.Map{
		"mentors": mentors,
	})
}

// CreateRequest handles a student's guidance request
// @Summary Request guidance from a mentor
// @Description Send a guidance request to an approved mentor; one request per mentor
// @Tags Guidance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentor profile ID"
// @Param body body CreateRequestRequest true "Request data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /guidance/mentors/{id}/requests [post]
func (h *GuidanceHandler) CreateRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	mentorID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid mentor ID")
	}

	var req CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Message == "" {
		return response.BadRequest(c, "Message is required")
	}
	if req.StudentWhatsapp == "" {
		return response.BadRequest(c, "WhatsApp number is required")
	}

	input := &services.CreateRequestInput{
		Message:         req.Message,
		StudentWhatsapp: req.StudentWhatsapp,
	}

	result, err := h.guidanceService.CreateRequest(c.Context(), userID, uint(mentorID), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMentorNotFound):
			return response.NotFound(c, "Mentor not found")
		case errors.Is(err, domain.ErrNonInstituteEmail):
			return response.BadRequest(c, "Only institute email addresses are allowed")
		case errors.Is(err, domain.ErrRequestAlreadyExists):
			return response.Info(c, "You already have a request with this mentor")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid request data")
		default:
			return response.InternalServerError(c, "Failed to create request")
		}
	}

	// An existing pair is not an error: approved points at the chat,
	// pending is a no-op
	if result.Existing {
		if result.Request.Status == domain.RequestApproved {
			return response.Success(c, "Request already approved, chat is open", fiber.Map{
				"request":  result.Request,
				"chat_url": "/api/v1/guidance/requests/" + strconv.FormatUint(uint64(result.Request.ID), 10) + "/chat",
			})
		}
		return response.Info(c, "Your request is still pending with this mentor")
	}

	return response.Created(c, "Request sent successfully", fiber.Map{
		"request": result.Request,
	})
}

// Dashboard handles the mentor's request dashboard
// @Summary Mentor request dashboard
// @Description List the caller's incoming requests partitioned into pending and approved
// @Tags Guidance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /guidance/dashboard [get]
func (h *GuidanceHandler) Dashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	dashboard, err := h.guidanceService.ListRequests(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrMentorNotFound) {
			return response.NotFound(c, "You don't have a mentor profile")
		}
		return response.InternalServerError(c, "Failed to load dashboard")
	}

	return response.Success(c, "Dashboard retrieved successfully", dashboard)
}

// ApproveRequest handles a mentor approving a request
// @Summary Approve guidance request
// @Description Approve a pending request addressed to the caller's mentor profile
// @Tags Guidance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /guidance/requests/{id}/approve [put]
func (h *GuidanceHandler) ApproveRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	request, err := h.guidanceService.ApproveRequest(c.Context(), userID, uint(requestID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			return response.NotFound(c, "Request not found")
		case errors.Is(err, domain.ErrIllegalTransition):
			return response.Info(c, "Request is already approved")
		default:
			return response.InternalServerError(c, "Failed to approve request")
		}
	}

	return response.Success(c, "Request approved", fiber.Map{
		"request": request.ToResponse(),
	})
}

// GetChat handles reading a request's chat channel
// @Summary Get chat messages
// @Description Read the chat of an approved request; participants only
// @Tags Guidance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /guidance/requests/{id}/chat [get]
func (h *GuidanceHandler) GetChat(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	chat, err := h.guidanceService.GetChat(c.Context(), userID, uint(requestID))
	if err != nil {
		return h.chatError(c, err)
	}

	return response.Success(c, "Chat retrieved successfully", chat)
}

// PostMessage handles posting to a request's chat channel
// @Summary Post chat message
// @Description Append a message to the chat of an approved request; participants only
// @Tags Guidance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body PostMessageRequest true "Message body"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /guidance/requests/{id}/chat [post]
func (h *GuidanceHandler) PostMessage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	var req PostMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Body == "" {
		return response.BadRequest(c, "Message body is required")
	}

	message, err := h.guidanceService.PostMessage(c.Context(), userID, uint(requestID), req.Body)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Message body is required")
		}
		return h.chatError(c, err)
	}

	return response.Created(c, "Message sent", fiber.Map{
		"message": message.ToResponse(),
	})
}

// chatError maps chat gating failures to responses
func (h *GuidanceHandler) chatError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrRequestNotFound):
		return response.NotFound(c, "Request not found")
	case errors.Is(err, domain.ErrChatUnavailable):
		return response.Forbidden(c, "Chat opens after the mentor approves your request")
	case errors.Is(err, domain.ErrNotParticipant):
		return response.Forbidden(c, "You are not a participant of this chat")
	default:
		return response.InternalServerError(c, "Chat operation failed")
	}
}
