package handlers_test

import (
	"net/http"
	"testing"

	"huertohogar/internal/config"
)

func TestCatalogEndpoints(t *testing.T) {
	ta := newTestApp(t, config.Config{})

	resp, err := ta.app.Test(jsonReq("GET", "/api/v1/categorias", nil))
	if err != nil {
		t.Fatal(err)
	}
	var cats struct {
		Categorias []struct {
			ID     string `json:"id"`
			Nombre string `json:"nombre"`
		} `json:"categorias"`
	}
	decodeBody(t, resp, &cats)
	if len(cats.Categorias) != 5 {
		t.Fatalf("want 5 categories, got %d", len(cats.Categorias))
	}

	resp, err = ta.app.Test(jsonReq("GET", "/api/v1/categorias/frutas/productos", nil))
	if err != nil {
		t.Fatal(err)
	}
	var byCat struct {
		Productos []struct {
			ID        string `json:"id"`
			Categoria string `json:"categoria"`
		} `json:"productos"`
	}
	decodeBody(t, resp, &byCat)
	if len(byCat.Productos) != 3 {
		t.Fatalf("want 3 frutas, got %d", len(byCat.Productos))
	}
	for _, p := range byCat.Productos {
		if p.Categoria != "frutas" {
			t.Fatalf("wrong category: %+v", p)
		}
	}

	// unknown category id -> 404
	resp, _ = ta.app.Test(jsonReq("GET", "/api/v1/categorias/juguetes/productos", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for unknown category, got %d", resp.StatusCode)
	}

	resp, err = ta.app.Test(jsonReq("GET", "/api/v1/productos/FR001", nil))
	if err != nil {
		t.Fatal(err)
	}
	var p struct {
		ID          string `json:"id"`
		PrecioTexto string `json:"precio_texto"`
	}
	decodeBody(t, resp, &p)
	if p.ID != "FR001" || p.PrecioTexto != "$1.200/Kg" {
		t.Fatalf("bad product detail: %+v", p)
	}

	// missing product -> 404
	resp, _ = ta.app.Test(jsonReq("GET", "/api/v1/productos/XX999", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for unknown product, got %d", resp.StatusCode)
	}

	resp, err = ta.app.Test(jsonReq("GET", "/api/v1/tips", nil))
	if err != nil {
		t.Fatal(err)
	}
	var tips struct {
		Tips []struct {
			Titulo string `json:"titulo"`
		} `json:"tips"`
	}
	decodeBody(t, resp, &tips)
	if len(tips.Tips) != 3 {
		t.Fatalf("want 3 tips, got %d", len(tips.Tips))
	}

	resp, err = ta.app.Test(jsonReq("GET", "/api/v1/tiendas", nil))
	if err != nil {
		t.Fatal(err)
	}
	var stores struct {
		Tiendas []struct {
			ID  string  `json:"id"`
			Lat float64 `json:"lat"`
		} `json:"tiendas"`
	}
	decodeBody(t, resp, &stores)
	if len(stores.Tiendas) != 5 {
		t.Fatalf("want 5 tiendas, got %d", len(stores.Tiendas))
	}
}

func TestProductSearchFilter(t *testing.T) {
	ta := newTestApp(t, config.Config{})

	resp, err := ta.app.Test(jsonReq("GET", "/api/v1/productos?q=manzanas", nil))
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Productos []struct {
			ID string `json:"id"`
		} `json:"productos"`
	}
	decodeBody(t, resp, &out)
	if len(out.Productos) != 1 || out.Productos[0].ID != "FR001" {
		t.Fatalf("bad search result: %+v", out.Productos)
	}

	// bad category filter -> 400
	resp, _ = ta.app.Test(jsonReq("GET", "/api/v1/productos?categoria=juguetes", nil))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for unknown category filter, got %d", resp.StatusCode)
	}
}
