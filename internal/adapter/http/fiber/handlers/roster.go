package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/ports"
)

type RosterHandler struct {
	service ports.RosterService
	log     *zap.Logger
}

func NewRosterHandler(service ports.RosterService, log *zap.Logger) *RosterHandler {
	return &RosterHandler{
		service: service,
		log:     log,
	}
}

func (h *RosterHandler) List(c *fiber.Ctx) error {
	groups, err := h.service.Groups(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"groups": groups})
}

func (h *RosterHandler) Members(c *fiber.Ctx) error {
	group := c.Params("group")
	members, err := h.service.Members(c.Context(), group)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown group"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"members": members})
}
