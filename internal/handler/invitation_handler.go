package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/internal/service"
	"github.com/danhluom/thiepcuoi-backend/pkg/qrcode"
	"github.com/danhluom/thiepcuoi-backend/pkg/utils"
)

type InvitationHandler struct {
	invService *service.InvitationService
	qrService  *qrcode.QRService
	validator  *utils.Validator
}

func NewInvitationHandler(invService *service.InvitationService, qrService *qrcode.QRService, validator *utils.Validator) *InvitationHandler {
	return &InvitationHandler{
		invService: invService,
		qrService:  qrService,
		validator:  validator,
	}
}

func (h *InvitationHandler) CreateInvitation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req models.InvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.invService.CreateInvitation(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(resp, "Invitation created successfully"))
}

func (h *InvitationHandler) GetInvitations(c *fiber.Ctx) error {
	resp, err := h.invService.GetInvitations()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(resp, "Invitations retrieved successfully"))
}

func (h *InvitationHandler) GetInvitation(c *fiber.Ctx) error {
	resp, err := h.invService.GetInvitation(c.Params("code"))
	if err != nil {
		return invitationError(c, err)
	}

	return c.JSON(models.SuccessResponse(resp, "Invitation retrieved successfully"))
}

func (h *InvitationHandler) UpdateInvitation(c *fiber.Ctx) error {
	var req models.InvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.invService.UpdateInvitation(c.Params("code"), req)
	if err != nil {
		return invitationError(c, err)
	}

	return c.JSON(models.SuccessResponse(resp, "Invitation updated successfully"))
}

func (h *InvitationHandler) DeleteInvitation(c *fiber.Ctx) error {
	if err := h.invService.DeleteInvitation(c.Params("code")); err != nil {
		return invitationError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Invitation deleted successfully"))
}

// Autosave queues a debounced write and reports the current save state, so
// the editor can render its saving indicator from the response alone.
func (h *InvitationHandler) Autosave(c *fiber.Ctx) error {
	var req models.AutosaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	status, err := h.invService.Autosave(c.Params("code"), req.Data)
	if err != nil {
		return invitationError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"status": status}, "Autosave queued"))
}

func (h *InvitationHandler) AutosaveStatus(c *fiber.Ctx) error {
	status := h.invService.AutosaveStatus(c.Params("code"))
	return c.JSON(models.SuccessResponse(fiber.Map{"status": status}, "Autosave status retrieved"))
}

// GetGuestView is the public read endpoint behind the share link.
func (h *InvitationHandler) GetGuestView(c *fiber.Ctx) error {
	view, err := h.invService.GuestView(c.Params("code"), c.Query("guestName"))
	if err != nil {
		return invitationError(c, err)
	}

	return c.JSON(models.SuccessResponse(view, "Invitation retrieved successfully"))
}

func (h *InvitationHandler) GetLinks(c *fiber.Ctx) error {
	links, err := h.invService.Links(c.Params("code"), c.Query("guestName"))
	if err != nil {
		return invitationError(c, err)
	}

	return c.JSON(models.SuccessResponse(links, "Links generated successfully"))
}

// GetQRCode renders the share link as a PNG for print materials.
func (h *InvitationHandler) GetQRCode(c *fiber.Ctx) error {
	links, err := h.invService.Links(c.Params("code"), "")
	if err != nil {
		return invitationError(c, err)
	}

	size, err := strconv.Atoi(c.Query("size", "256"))
	if err != nil || size < 64 || size > 1024 {
		size = 256
	}

	png, err := h.qrService.GenerateQRCode(links.Base, size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to generate QR code"))
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func invitationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrInvitationNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Invitation not found"))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
}
