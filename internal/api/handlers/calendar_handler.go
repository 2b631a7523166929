package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/content-planner/internal/service"
)

type CalendarHandler struct {
	s service.CalendarService
}

func NewCalendarHandler(service service.CalendarService) *CalendarHandler {
	return &CalendarHandler{s: service}
}

func (h *CalendarHandler) Events(c *fiber.Ctx) error {
	events, err := h.s.Events(c.Context(), GetUser(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(events)
}

func (h *CalendarHandler) ICS(c *fiber.Ctx) error {
	feed, err := h.s.ICS(c.Context(), GetUser(c))
	if err != nil {
		return sendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="content-plan.ics"`)
	return c.SendString(feed)
}

func (h *CalendarHandler) Template(c *fiber.Ctx) error {
	return c.JSON(h.s.Template())
}

func (h *CalendarHandler) Distribution(c *fiber.Ctx) error {
	days, err := h.s.Distribution(c.Query("name"), c.Query("start"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(days)
}
