package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "huertohogar/internal/log"
	"huertohogar/internal/services"
	"huertohogar/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Region    string `json:"region"`
	Password  string `json:"password"`
	Confirm   string `json:"confirmar"`
}

// Register handles POST /api/v1/usuario/guardar. Validation runs before any
// store write; a failed submission never touches the database.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}

	if errs := validate.Registration(req.FirstName, req.LastName, req.Email, req.Region, req.Password, req.Confirm); len(errs) > 0 {
		applog.Security(c, "usuario.guardar.validation", map[string]any{"fields": len(errs)})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errores": errs})
	}

	u, err := h.Auth.Register(services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Region:    req.Region,
		Password:  req.Password,
	})
	if err == services.ErrEmailTaken {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email ya registrado"})
	}
	if err != nil {
		applog.Error(c, "usuario.guardar.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no se pudo registrar"})
	}

	applog.Audit(c, "usuario.guardar", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(u)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/usuario/login. Any mismatch — unknown email or
// wrong password — gets the same generic 401.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}
	if _, ok := validate.Email(req.Email); !ok {
		applog.Security(c, "usuario.login.fail", map[string]any{"reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "credenciales inválidas"})
	}

	token, u, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		applog.Security(c, "usuario.login.fail", map[string]any{"email": req.Email})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "credenciales inválidas"})
	}

	applog.Audit(c, "usuario.login", map[string]any{"user_id": u.ID})
	return c.JSON(fiber.Map{"token": token, "usuario": u})
}

// Logout drops the caller's session token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if tok := bearerToken(c); tok != "" {
		_ = h.Auth.Logout(tok)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
