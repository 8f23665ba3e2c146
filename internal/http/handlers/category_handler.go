package handlers

import (
	"github.com/gofiber/fiber/v2"

	"huertohogar/internal/domain"
	applog "huertohogar/internal/log"
	"huertohogar/internal/services"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

// List handles GET /api/v1/categorias.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "categorias.listar.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no se pudo listar"})
	}
	return c.JSON(fiber.Map{"categorias": cats})
}

// Products handles GET /api/v1/categorias/:id/productos.
func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	catID := c.Params("id")
	if !domain.ValidCategory(catID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "categoría desconocida"})
	}
	products, err := h.Catalog.ListProductsByCategory(catID, c.QueryInt("pagina", 1), c.QueryInt("tamano", 20))
	if err != nil {
		applog.Error(c, "categorias.productos.fail", err, map[string]any{"categoria": catID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no se pudo listar"})
	}
	return c.JSON(fiber.Map{"categoria": catID, "productos": products})
}
