package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"huertohogar/internal/domain"
	applog "huertohogar/internal/log"
	"huertohogar/internal/services"
	"huertohogar/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List handles GET /api/v1/productos with optional ?categoria= and ?q=.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("categoria"))
	if category != "" && !domain.ValidCategory(category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "categoría desconocida"})
	}
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	products, err := h.Catalog.ListProducts(q, category, c.QueryInt("pagina", 1), c.QueryInt("tamano", 20))
	if err != nil {
		applog.Error(c, "productos.listar.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no se pudo listar"})
	}
	return c.JSON(fiber.Map{"productos": products})
}

// Detail handles GET /api/v1/productos/:id.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "producto"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "producto no disponible"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || p.ID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "producto no disponible"})
	}
	return c.JSON(p)
}
