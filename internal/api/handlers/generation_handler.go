package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/content-planner/internal/service"
	"github.com/maheshrc27/content-planner/internal/transfer"
)

type GenerationHandler struct {
	s service.GenerationService
}

func NewGenerationHandler(service service.GenerationService) *GenerationHandler {
	return &GenerationHandler{s: service}
}

// Generate queues generation of one day of a theme and answers right away.
func (h *GenerationHandler) Generate(c *fiber.Ctx) error {
	var req transfer.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	payload, err := h.s.Request(c.Context(), GetUser(c), c.Params("id"), &req)
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(payload)
}

func (h *GenerationHandler) Sync(c *fiber.Ctx) error {
	n, err := h.s.SyncThemes(c.Context(), GetUser(c))
	if errors.Is(err, service.ErrWebhookNotConfigured) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Unable to sync themes"})
	}
	return c.JSON(fiber.Map{"synced": n})
}
