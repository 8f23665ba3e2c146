package handlers

import (
	"github.com/gofiber/fiber/v2"

	"huertohogar/internal/domain"
	applog "huertohogar/internal/log"
	"huertohogar/internal/repos"
	"huertohogar/internal/validate"
)

type UserHandler struct {
	Users *repos.UserRepo
}

// List handles GET /api/v1/usuario/listar (admin only).
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		applog.Error(c, "usuario.listar.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no se pudo listar"})
	}
	return c.JSON(fiber.Map{"usuarios": users})
}

// Delete handles DELETE /api/v1/usuario/:id/eliminar (admin only).
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}
	admin, _ := c.Locals("user").(*domain.User)
	if admin != nil && admin.ID == id {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no puedes eliminar tu propia cuenta"})
	}
	if _, err := h.Users.ByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "usuario no encontrado"})
	}
	if err := h.Users.Delete(id); err != nil {
		applog.Error(c, "usuario.eliminar.fail", err, map[string]any{"user_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no se pudo eliminar"})
	}
	applog.Audit(c, "usuario.eliminar", map[string]any{"user_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// Profile handles GET /api/v1/usuario/perfil.
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token requerido"})
	}
	return c.JSON(u)
}

type photoRequest struct {
	Photo string `json:"foto"`
}

// UpdatePhoto handles PUT /api/v1/usuario/perfil/foto.
func (h *UserHandler) UpdatePhoto(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token requerido"})
	}
	var req photoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}
	if err := h.Users.UpdatePhoto(u.ID, req.Photo); err != nil {
		applog.Error(c, "perfil.foto.fail", err, map[string]any{"user_id": u.ID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no se pudo actualizar"})
	}
	applog.Audit(c, "perfil.foto", map[string]any{"user_id": u.ID})
	return c.SendStatus(fiber.StatusNoContent)
}
