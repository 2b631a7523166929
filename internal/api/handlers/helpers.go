package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/service"
)

func GetUserID(c *fiber.Ctx) int64 {
	s, _ := c.Locals("user_id").(string)
	userID, _ := strconv.ParseInt(s, 10, 64)
	return userID
}

// GetUser returns the caller loaded by the auth middleware.
func GetUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// sendError maps service errors onto status codes.
func sendError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	var cerr *service.ConflictError

	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Message})
	case errors.As(err, &cerr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":     cerr.Error(),
			"conflicts": cerr.Themes,
		})
	case errors.Is(err, service.ErrAlreadyFulfilled):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrThemeNotFound),
		errors.Is(err, service.ErrContentNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotPlanned):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slog.Info(err.Error(), "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
