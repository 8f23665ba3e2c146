package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"huertohogar/internal/http/handlers"
	"huertohogar/internal/repos"
	"huertohogar/internal/services"
)

// Login throttling: after the window's attempts are spent, further tries get
// 429 regardless of credentials.
func TestLoginThrottle(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	authSvc := &services.AuthService{Users: repos.NewUserRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New()
	app.Post("/api/v1/usuario/login", limiter.New(limiter.Config{Max: 2, Expiration: time.Minute}), authH.Login)

	bad := map[string]string{"email": "maria@huertohogar.cl", "password": "WrongPass1!"}
	for i := 0; i < 2; i++ {
		resp, err := app.Test(jsonReq("POST", "/api/v1/usuario/login", bad))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: want 401, got %d", i+1, resp.StatusCode)
		}
	}

	resp, err := app.Test(jsonReq("POST", "/api/v1/usuario/login", map[string]string{
		"email": "maria@huertohogar.cl", "password": "Cliente123!",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("want 429 after throttle, got %d", resp.StatusCode)
	}
}
