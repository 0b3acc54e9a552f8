package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/ports"
)

type EventHandler struct {
	service ports.EventLogService
	log     *zap.Logger
}

func NewEventHandler(service ports.EventLogService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log,
	}
}

type SubmitRequest struct {
	Initials string          `json:"initials"`
	Group    string          `json:"group"`
	People   []domain.Member `json:"people"`
	Action   string          `json:"action"`
}

func (h *EventHandler) Submit(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	rows, err := h.service.Record(c.Context(), req.Initials, req.Group, req.People, domain.EventStatus(req.Action))
	if err != nil {
		if errors.Is(err, domain.ErrMalformedInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "OK", "action": req.Action, "recorded": len(rows)})
}

func (h *EventHandler) ListToday(c *fiber.Ctx) error {
	group := c.Query("group")
	personID := c.Query("id")
	if group == "" || personID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing group or id parameter"})
	}

	rows, err := h.service.ListToday(c.Context(), group, personID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"entries": rows})
}

type UpdateRequest struct {
	Match  domain.EventRow `json:"match"`
	Update domain.EventRow `json:"update"`
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	n, err := h.service.Update(c.Context(), req.Match, req.Update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if n == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No matching row"})
	}
	return c.JSON(fiber.Map{"status": "OK", "updated": n})
}

type DeleteRequest struct {
	Match domain.EventRow `json:"match"`
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	var req DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	n, err := h.service.Delete(c.Context(), req.Match)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if n == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No matching row"})
	}
	return c.JSON(fiber.Map{"status": "OK", "deleted": n})
}
