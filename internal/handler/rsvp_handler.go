package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/internal/service"
	"github.com/danhluom/thiepcuoi-backend/pkg/utils"
)

type RSVPHandler struct {
	rsvpService *service.RSVPService
	invService  *service.InvitationService
	validator   *utils.Validator
}

func NewRSVPHandler(rsvpService *service.RSVPService, invService *service.InvitationService, validator *utils.Validator) *RSVPHandler {
	return &RSVPHandler{
		rsvpService: rsvpService,
		invService:  invService,
		validator:   validator,
	}
}

// SubmitRSVP is the public guest-response endpoint. The share code is the
// only credential.
func (h *RSVPHandler) SubmitRSVP(c *fiber.Ctx) error {
	var req models.RSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	rsvp, err := h.rsvpService.Submit(c.Params("code"), req)
	if err != nil {
		return invitationError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(rsvp, "Response recorded successfully"))
}

func (h *RSVPHandler) GetRSVPs(c *fiber.Ctx) error {
	rsvps, err := h.rsvpService.GetByInvitation(c.Params("code"))
	if err != nil {
		return invitationError(c, err)
	}

	return c.JSON(models.SuccessResponse(rsvps, "Responses retrieved successfully"))
}

// CheckSheetConnection probes the invitation's Apps Script webhook and, on
// success, stores the spreadsheet view URL it reports.
func (h *RSVPHandler) CheckSheetConnection(c *fiber.Ctx) error {
	sheetURL, err := h.invService.VerifySheetConnection(c.Params("code"))
	if err != nil {
		if err == service.ErrInvitationNotFound {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Invitation not found"))
		}
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(models.SheetCheckResponse{SheetURL: sheetURL}, "Sheet connection verified"))
}
