package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/content-planner/internal/service"
	"github.com/maheshrc27/content-planner/internal/transfer"
)

type ThemeHandler struct {
	s service.ThemeService
}

func NewThemeHandler(service service.ThemeService) *ThemeHandler {
	return &ThemeHandler{s: service}
}

func (h *ThemeHandler) ListThemes(c *fiber.Ctx) error {
	themes, err := h.s.List(c.Context(), GetUser(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(themes)
}

func (h *ThemeHandler) GetTheme(c *fiber.Ctx) error {
	theme, err := h.s.Get(c.Context(), GetUser(c), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(theme)
}

func (h *ThemeHandler) CreateTheme(c *fiber.Ctx) error {
	var in transfer.ThemeInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	theme, err := h.s.Create(c.Context(), GetUser(c), &in)
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(theme)
}

func (h *ThemeHandler) UpdateTheme(c *fiber.Ctx) error {
	var in transfer.ThemeInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	theme, err := h.s.Update(c.Context(), GetUser(c), c.Params("id"), &in)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(theme)
}

func (h *ThemeHandler) DeleteTheme(c *fiber.Ctx) error {
	if err := h.s.Delete(c.Context(), GetUser(c), c.Params("id")); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ActiveTheme answers which of the caller's themes runs on ?date=, today by
// default.
func (h *ThemeHandler) ActiveTheme(c *fiber.Ctx) error {
	theme, err := h.s.ActiveOn(c.Context(), GetUser(c), c.Query("date"))
	if errors.Is(err, service.ErrThemeNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No active theme for this date"})
	}
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"theme": theme})
}

// Validate previews a date range without saving it. Invalid ranges are a
// normal answer, not an error.
func (h *ThemeHandler) Validate(c *fiber.Ctx) error {
	var req transfer.ValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.s.Check(c.Context(), GetUser(c), &req)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(result)
}
