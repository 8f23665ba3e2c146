package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"huertohogar/internal/cart"
	"huertohogar/internal/config"
	"huertohogar/internal/http/handlers"
	applog "huertohogar/internal/log"
	"huertohogar/internal/repos"
	"huertohogar/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Carts live in memory only; a restart empties them.
	carts := cart.NewStore()

	// Templates back the payment-provider browser return pages.
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "algo salió mal, inténtalo de nuevo"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, authSvc, carts)

	api := app.Group("/api/v1")

	// Catalog
	api.Get("/categorias", deps.CategoryHandler.List)
	api.Get("/categorias/:id/productos", deps.CategoryHandler.Products)
	api.Get("/productos", deps.ProductHandler.List)
	api.Get("/productos/:id", deps.ProductHandler.Detail)
	api.Get("/tips", deps.TipHandler.List)
	api.Get("/tiendas", deps.StoreHandler.List)

	// Users (login throttled)
	usuario := api.Group("/usuario")
	usuario.Post("/guardar", authH.Register)
	usuario.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "demasiados intentos, espera unos minutos"})
		},
	}), authH.Login)
	usuario.Post("/logout", authH.Logout)
	usuario.Get("/listar", handlers.RequireAdmin(authSvc), deps.UserHandler.List)
	usuario.Delete("/:id/eliminar", handlers.RequireAdmin(authSvc), deps.UserHandler.Delete)
	usuario.Get("/perfil", handlers.RequireUser(authSvc), deps.UserHandler.Profile)
	usuario.Put("/perfil/foto", handlers.RequireUser(authSvc), deps.UserHandler.UpdatePhoto)

	// Cart & checkout
	api.Get("/carrito", deps.CartHandler.View)
	api.Post("/carrito", deps.CartHandler.Add)
	api.Delete("/carrito/:productId", deps.CartHandler.Remove)
	api.Delete("/carrito", deps.CartHandler.Clear)
	api.Post("/checkout", limiter.New(limiter.Config{
		Max:        15,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|checkout"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.checkout.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "demasiados intentos, reintenta en unos segundos"})
		},
	}), deps.CheckoutHandler.Create)

	// Payment-provider browser returns
	app.Get("/pago/exito", deps.CheckoutHandler.Success)
	app.Get("/pago/error", deps.CheckoutHandler.Failure)
	app.Get("/pago/pendiente", deps.CheckoutHandler.Pending)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no encontrado"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
