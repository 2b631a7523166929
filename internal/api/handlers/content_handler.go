package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/content-planner/internal/service"
	"github.com/maheshrc27/content-planner/internal/transfer"
)

type ContentHandler struct {
	s service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{s: service}
}

func contentFilter(c *fiber.Ctx) transfer.ContentFilter {
	return transfer.ContentFilter{
		ThemeID:     c.Query("theme_id"),
		Date:        c.Query("date"),
		ContentType: c.Query("content_type"),
	}
}

func (h *ContentHandler) ListContent(c *fiber.Ctx) error {
	rows, err := h.s.List(c.Context(), GetUser(c), contentFilter(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(rows)
}

func (h *ContentHandler) Fulfilled(c *fiber.Ctx) error {
	ok, err := h.s.Fulfilled(c.Context(), GetUser(c), contentFilter(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"fulfilled": ok})
}

func (h *ContentHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.s.Summary(c.Context(), GetUser(c), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(summary)
}

func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "Invalid content id")
	}

	var in transfer.ContentUpdate
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	row, err := h.s.Update(c.Context(), GetUser(c), int64(id), &in)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(row)
}

func (h *ContentHandler) UploadContent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "Invalid content id")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file selected")
	}

	row, err := h.s.Upload(c.Context(), GetUser(c), int64(id), file)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(row)
}
