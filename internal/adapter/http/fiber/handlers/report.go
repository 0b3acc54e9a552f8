package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/ports"
)

type ReportHandler struct {
	service ports.ReportService
	log     *zap.Logger
}

func NewReportHandler(service ports.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

type GenerateRequest struct {
	Group    string `json:"group"`
	PersonID string `json:"id"`
}

// Generate runs the report pipeline and streams the finished PDF. The temp
// workspace is cleaned up on a delay after the response, so slow downloads
// are not cut off.
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.Group == "" || req.PersonID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing group or id"})
	}

	result := h.service.Generate(c.Context(), req.Group, req.PersonID)
	if !result.OK() {
		code := fiber.StatusInternalServerError
		switch {
		case errors.Is(result.Err, domain.ErrNotFound):
			code = fiber.StatusNotFound
		case errors.Is(result.Err, domain.ErrMalformedInput):
			code = fiber.StatusUnprocessableEntity
		}
		return c.Status(code).JSON(result)
	}

	defer h.service.ScheduleCleanup(result.TempDir)

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, result.DisplayName))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.SendFile(result.ArtifactPath)
}
