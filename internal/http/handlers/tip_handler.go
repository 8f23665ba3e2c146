package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "huertohogar/internal/log"
	"huertohogar/internal/services"
)

type TipHandler struct {
	Catalog *services.CatalogService
}

// List handles GET /api/v1/tips.
func (h *TipHandler) List(c *fiber.Ctx) error {
	tips, err := h.Catalog.ListTips()
	if err != nil {
		applog.Error(c, "tips.listar.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no se pudo listar"})
	}
	return c.JSON(fiber.Map{"tips": tips})
}
