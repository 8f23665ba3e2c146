package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "huertohogar/internal/log"
	"huertohogar/internal/services"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
}

// Create handles POST /api/v1/checkout: cart lines become a payment
// preference and the cart is cleared. A provider failure is a generic 502 —
// no retry, no cause breakdown.
func (h *CheckoutHandler) Create(c *fiber.Ctx) error {
	sid := ensureSID(c)

	pref, err := h.Checkout.Checkout(c.Context(), sid)
	if err == services.ErrCartEmpty {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "carrito vacío"})
	}
	if err != nil {
		applog.Error(c, "checkout.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "no se pudo iniciar el pago"})
	}

	applog.Audit(c, "checkout.create", map[string]any{"preference_id": pref.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"preference_id": pref.ID,
		"init_point":    pref.InitPoint,
	})
}

// Return pages: the payment provider redirects the buyer's browser here, so
// these render HTML rather than JSON.

func (h *CheckoutHandler) Success(c *fiber.Ctx) error {
	return c.Render("pago", fiber.Map{"Title": "¡Pago aprobado!", "Message": "Gracias por tu compra. Recibirás tu pedido pronto."})
}

func (h *CheckoutHandler) Failure(c *fiber.Ctx) error {
	return c.Render("pago", fiber.Map{"Title": "Pago rechazado", "Message": "El pago no pudo completarse. Vuelve a la app e inténtalo nuevamente."})
}

func (h *CheckoutHandler) Pending(c *fiber.Ctx) error {
	return c.Render("pago", fiber.Map{"Title": "Pago pendiente", "Message": "Tu pago está en revisión. Te avisaremos cuando se confirme."})
}
