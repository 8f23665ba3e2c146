package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "huertohogar/internal/log"
	"huertohogar/internal/services"
	"huertohogar/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// ensureSID issues the session cookie carts are keyed by.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // set true behind TLS
		})
	}
	return sid
}

// View handles GET /api/v1/carrito.
func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.Cart.View(ensureSID(c)))
}

type addRequest struct {
	ProductID string `json:"producto_id"`
	Qty       int    `json:"cantidad"`
}

// Add handles POST /api/v1/carrito.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "producto_id requerido"})
	}

	if err := h.Cart.Add(sid, id, validate.Qty(req.Qty)); err != nil {
		applog.Security(c, "carrito.agregar.fail", map[string]any{"producto": id})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "producto no disponible"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.Cart.View(sid))
}

// Remove handles DELETE /api/v1/carrito/:productId.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "producto_id inválido"})
	}
	h.Cart.Remove(sid, id)
	return c.JSON(h.Cart.View(sid))
}

// Clear handles DELETE /api/v1/carrito.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Cart.Clear(sid)
	return c.SendStatus(fiber.StatusNoContent)
}
