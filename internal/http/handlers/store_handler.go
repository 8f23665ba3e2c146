package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "huertohogar/internal/log"
	"huertohogar/internal/services"
)

type StoreHandler struct {
	Catalog *services.CatalogService
}

// List handles GET /api/v1/tiendas.
func (h *StoreHandler) List(c *fiber.Ctx) error {
	stores, err := h.Catalog.ListStores()
	if err != nil {
		applog.Error(c, "tiendas.listar.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no se pudo listar"})
	}
	return c.JSON(fiber.Map{"tiendas": stores})
}
