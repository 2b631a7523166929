package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/content-planner/internal/service"
	"github.com/maheshrc27/content-planner/internal/transfer"
)

type AdminHandler struct {
	s service.UserService
}

func NewAdminHandler(service service.UserService) *AdminHandler {
	return &AdminHandler{s: service}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.s.List(c.Context())
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(users)
}

func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "Invalid user id")
	}

	var body transfer.RoleUpdate
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.s.UpdateRole(c.Context(), GetUser(c), int64(id), body.Role); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *AdminHandler) RemoveUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "Invalid user id")
	}

	if err := h.s.RemoveUser(c.Context(), GetUser(c), int64(id)); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
