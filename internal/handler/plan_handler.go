package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/internal/service"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) GetPlans(c *fiber.Ctx) error {
	plans, err := h.planService.GetPlans()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(plans, "Plans retrieved successfully"))
}

func (h *PlanHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	planID, err := strconv.ParseUint(c.Params("planId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid plan ID"))
	}

	userID := c.Locals("userID").(uint)
	userEmail := c.Locals("userEmail").(string)

	resp, err := h.planService.Checkout(userID, userEmail, uint(planID))
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Plan not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(resp, "Checkout session created"))
}
