package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"huertohogar/internal/cart"
	"huertohogar/internal/config"
	"huertohogar/internal/http/handlers"
	"huertohogar/internal/repos"
	"huertohogar/internal/services"
)

type testApp struct {
	app  *fiber.App
	auth *services.AuthService
}

// newTestApp wires the real handlers against an in-memory seeded store.
func newTestApp(t *testing.T, cfg config.Config) *testApp {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	authSvc := &services.AuthService{Users: repos.NewUserRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}
	deps := handlers.NewDeps(db, cfg, authSvc, cart.NewStore())

	app := fiber.New()

	api := app.Group("/api/v1")
	api.Get("/categorias", deps.CategoryHandler.List)
	api.Get("/categorias/:id/productos", deps.CategoryHandler.Products)
	api.Get("/productos", deps.ProductHandler.List)
	api.Get("/productos/:id", deps.ProductHandler.Detail)
	api.Get("/tips", deps.TipHandler.List)
	api.Get("/tiendas", deps.StoreHandler.List)

	usuario := api.Group("/usuario")
	usuario.Post("/guardar", authH.Register)
	usuario.Post("/login", authH.Login)
	usuario.Post("/logout", authH.Logout)
	usuario.Get("/listar", handlers.RequireAdmin(authSvc), deps.UserHandler.List)
	usuario.Delete("/:id/eliminar", handlers.RequireAdmin(authSvc), deps.UserHandler.Delete)
	usuario.Get("/perfil", handlers.RequireUser(authSvc), deps.UserHandler.Profile)
	usuario.Put("/perfil/foto", handlers.RequireUser(authSvc), deps.UserHandler.UpdatePhoto)

	api.Get("/carrito", deps.CartHandler.View)
	api.Post("/carrito", deps.CartHandler.Add)
	api.Delete("/carrito/:productId", deps.CartHandler.Remove)
	api.Delete("/carrito", deps.CartHandler.Clear)
	api.Post("/checkout", deps.CheckoutHandler.Create)

	return &testApp{app: app, auth: authSvc}
}

func jsonReq(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// loginAs fetches a bearer token for a seeded account.
func (ta *testApp) loginAs(t *testing.T, email, password string) string {
	t.Helper()
	token, _, err := ta.auth.Login(email, password)
	if err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
	return token
}
