package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/ports"
)

// AdminHandler covers the maintenance surface: roster uploads and raw data
// exports.
type AdminHandler struct {
	roster ports.RosterService
	export ports.ExportService
	log    *zap.Logger
}

func NewAdminHandler(roster ports.RosterService, export ports.ExportService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		roster: roster,
		export: export,
		log:    log,
	}
}

func (h *AdminHandler) UploadRoster(c *fiber.Ctx) error {
	group := c.Params("group")
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Empty roster"})
	}

	if err := h.roster.SaveRoster(c.Context(), group, body); err != nil {
		if errors.Is(err, domain.ErrMalformedInput) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "OK", "group": group})
}

func (h *AdminHandler) EventsCSV(c *fiber.Ctx) error {
	data, err := h.export.EventsCSV(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="output.csv"`)
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(data)
}

func (h *AdminHandler) ExportZip(c *fiber.Ctx) error {
	// Build the archive fully before touching the response. Streaming straight
	// into the body would glue a JSON error onto a partial zip when the walk
	// fails halfway.
	var buf bytes.Buffer
	if err := h.export.WriteArchive(c.Context(), &buf); err != nil {
		h.log.Error("Data export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	name := fmt.Sprintf("passlog-export_%s.zip", time.Now().Format("2006-01-02_15-04"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	c.Set(fiber.HeaderContentType, "application/zip")
	return c.Send(buf.Bytes())
}
