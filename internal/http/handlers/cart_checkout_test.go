package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"huertohogar/internal/config"
	"huertohogar/internal/payments"
)

type cartBody struct {
	Items []struct {
		Producto struct {
			ID string `json:"id"`
		} `json:"producto"`
		Cantidad int    `json:"cantidad"`
		Subtotal string `json:"subtotal"`
	} `json:"items"`
	Count int    `json:"cantidad_total"`
	Total string `json:"total"`
}

func TestCartAddViewRemove(t *testing.T) {
	ta := newTestApp(t, config.Config{})

	// first touch issues the sid cookie
	resp, err := ta.app.Test(jsonReq("POST", "/api/v1/carrito", map[string]any{"producto_id": "FR001", "cantidad": 2}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	sid := cookieValue(resp, "sid")
	if sid == "" {
		t.Fatal("sid cookie missing")
	}

	// adding the same product increments, not duplicates
	req := jsonReq("POST", "/api/v1/carrito", map[string]any{"producto_id": "FR001", "cantidad": 1})
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	if _, err := ta.app.Test(req); err != nil {
		t.Fatal(err)
	}

	req = jsonReq("GET", "/api/v1/carrito", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = ta.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var cv cartBody
	decodeBody(t, resp, &cv)
	if len(cv.Items) != 1 || cv.Items[0].Cantidad != 3 || cv.Count != 3 {
		t.Fatalf("bad cart after increments: %+v", cv)
	}
	if cv.Total != "3600" { // Manzanas $1.200/Kg x3
		t.Fatalf("want total 3600, got %s", cv.Total)
	}

	// unknown product -> 404, cart untouched
	req = jsonReq("POST", "/api/v1/carrito", map[string]any{"producto_id": "XX999", "cantidad": 1})
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, _ = ta.app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for unknown product, got %d", resp.StatusCode)
	}

	// remove drops the line
	req = jsonReq("DELETE", "/api/v1/carrito/FR001", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = ta.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	decodeBody(t, resp, &cv)
	if len(cv.Items) != 0 || cv.Count != 0 {
		t.Fatalf("cart not empty after remove: %+v", cv)
	}
}

func TestCheckoutClearsCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payments.Preference{ID: "pref-7", InitPoint: "https://mp.test/init/pref-7"})
	}))
	defer srv.Close()

	ta := newTestApp(t, config.Config{MPBaseURL: srv.URL, MPAccessToken: "t"})

	resp, err := ta.app.Test(jsonReq("POST", "/api/v1/carrito", map[string]any{"producto_id": "FR001", "cantidad": 2}))
	if err != nil {
		t.Fatal(err)
	}
	sid := cookieValue(resp, "sid")

	req := jsonReq("POST", "/api/v1/checkout", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = ta.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	var out struct {
		PreferenceID string `json:"preference_id"`
		InitPoint    string `json:"init_point"`
	}
	decodeBody(t, resp, &out)
	if out.PreferenceID != "pref-7" || out.InitPoint == "" {
		t.Fatalf("bad checkout response: %+v", out)
	}

	// cart is cleared, not archived
	req = jsonReq("GET", "/api/v1/carrito", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, _ = ta.app.Test(req)
	var cv cartBody
	decodeBody(t, resp, &cv)
	if cv.Count != 0 || len(cv.Items) != 0 {
		t.Fatalf("cart not cleared after checkout: %+v", cv)
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	ta := newTestApp(t, config.Config{MPBaseURL: "http://unused"})

	resp, err := ta.app.Test(jsonReq("POST", "/api/v1/checkout", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for empty cart, got %d", resp.StatusCode)
	}
}

func TestCheckoutProviderFailureIsBadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ta := newTestApp(t, config.Config{MPBaseURL: srv.URL})

	resp, err := ta.app.Test(jsonReq("POST", "/api/v1/carrito", map[string]any{"producto_id": "PL001", "cantidad": 1}))
	if err != nil {
		t.Fatal(err)
	}
	sid := cookieValue(resp, "sid")

	req := jsonReq("POST", "/api/v1/checkout", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, _ = ta.app.Test(req)
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("want 502 on provider failure, got %d", resp.StatusCode)
	}
}
