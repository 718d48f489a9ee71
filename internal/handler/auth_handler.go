package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/internal/service"
	"github.com/danhluom/thiepcuoi-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

// GoogleLogin exchanges a Google ID token for an application session.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	var req models.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.GoogleLogin(req)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Google sign-in failed"))
	}

	return c.JSON(models.SuccessResponse(resp, "Signed in successfully"))
}
