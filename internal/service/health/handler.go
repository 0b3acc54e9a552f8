package health

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the health service over HTTP
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers liveness and readiness endpoints
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/healthz/live", h.Live)
	app.Get("/healthz/ready", h.Ready)
}

func (h *Handler) Live(c *fiber.Ctx) error {
	return c.SendString("OK")
}

func (h *Handler) Ready(c *fiber.Ctx) error {
	res := h.service.Check(c.Context())
	code := fiber.StatusOK
	if res.Status == StatusUnhealthy {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(res)
}
