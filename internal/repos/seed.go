package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"huertohogar/internal/domain"
)

func clp(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Fixed six-item catalog inserted on first store creation.
var defaultProducts = []domain.Product{
	{ID: "FR001", Name: "Manzanas Fuji", Price: clp(1200), PriceLabel: "$1.200/Kg", Image: "productos/manzanas.jpg", Category: domain.CategoryFrutas, Active: true},
	{ID: "FR002", Name: "Naranjas Valencia", Price: clp(1000), PriceLabel: "$1.000/Kg", Image: "productos/naranjas.jpg", Category: domain.CategoryFrutas, Active: true},
	{ID: "FR003", Name: "Plátanos Cavendish", Price: clp(800), PriceLabel: "$800/Kg", Image: "productos/platanos.jpg", Category: domain.CategoryFrutas, Active: true},
	{ID: "VR001", Name: "Zanahorias Orgánicas", Price: clp(900), PriceLabel: "$900/Kg", Image: "productos/zanahorias.jpg", Category: domain.CategoryVerduras, Active: true},
	{ID: "VR002", Name: "Espinacas Frescas", Price: clp(700), PriceLabel: "$700/bolsa", Image: "productos/espinacas.jpg", Category: domain.CategoryVerduras, Active: true},
	{ID: "PL001", Name: "Leche Entera", Price: clp(2200), PriceLabel: "$2.200/L", Image: "productos/leche.jpg", Category: domain.CategoryLacteos, Active: true},
}

var defaultCategories = []domain.Category{
	{ID: domain.CategoryFrutas, Name: domain.CategoryNames[domain.CategoryFrutas], Image: "categorias/frutas.jpg", Description: "Fruta fresca de temporada, directo del huerto."},
	{ID: domain.CategoryVerduras, Name: domain.CategoryNames[domain.CategoryVerduras], Image: "categorias/verduras.jpg", Description: "Verduras cultivadas sin pesticidas."},
	{ID: domain.CategoryOrganicos, Name: domain.CategoryNames[domain.CategoryOrganicos], Image: "categorias/organicos.jpg", Description: "Certificados orgánicos de productores locales."},
	{ID: domain.CategoryLacteos, Name: domain.CategoryNames[domain.CategoryLacteos], Image: "categorias/lacteos.jpg", Description: "Lácteos de campo, frescos cada día."},
	{ID: domain.CategoryOtros, Name: domain.CategoryNames[domain.CategoryOtros], Image: "categorias/otros.jpg", Description: "Despensa y otros productos del hogar."},
}

var defaultTips = []domain.Tip{
	{ID: "tip-01", Icon: "eco", Title: "Conserva mejor tus verduras", Body: "Guarda las hojas verdes en un paño húmedo dentro del refrigerador: duran hasta una semana más."},
	{ID: "tip-02", Icon: "water_drop", Title: "Lava justo antes de comer", Body: "Lavar la fruta al momento de consumirla evita que la humedad acelere su deterioro."},
	{ID: "tip-03", Icon: "compost", Title: "Cáscaras al compost", Body: "Las cáscaras de frutas y verduras son excelente materia para compost casero."},
}

var defaultStores = []domain.Store{
	{ID: "scl", Name: "HuertoHogar Santiago", Address: "Av. Providencia 1234, Santiago", Phone: "+56 2 2345 6789", Lat: -33.4489, Lng: -70.6693, Description: "Casa matriz."},
	{ID: "vap", Name: "HuertoHogar Valparaíso", Address: "Av. Brasil 2150, Valparaíso", Phone: "+56 32 234 5678", Lat: -33.0472, Lng: -71.6127, Description: "Sucursal puerto."},
	{ID: "ccp", Name: "HuertoHogar Concepción", Address: "Barros Arana 535, Concepción", Phone: "+56 41 223 4567", Lat: -36.8270, Lng: -73.0503, Description: "Sucursal Biobío."},
	{ID: "pmc", Name: "HuertoHogar Puerto Montt", Address: "Urmeneta 745, Puerto Montt", Phone: "+56 65 225 6789", Lat: -41.4693, Lng: -72.9424, Description: "Sucursal Los Lagos."},
	{ID: "vrc", Name: "HuertoHogar Villarrica", Address: "Camilo Henríquez 430, Villarrica", Phone: "+56 45 241 1234", Lat: -39.2856, Lng: -72.2279, Description: "Sucursal La Araucanía."},
}

// seedUsers ensures one ADMIN and two CLIENTE accounts exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Nombre, Apellido, Email, Region, Rol, Hash string
	}
	mk := func(id, nombre, apellido, email, region, rol, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Nombre: nombre, Apellido: apellido, Email: email, Region: region, Rol: rol, Hash: string(h)}
	}

	users := []u{
		mk("u-admin", "Admin", "HuertoHogar", "admin@huertohogar.cl", "Metropolitana", "ADMIN", "Admin123!"),
		mk("u-maria", "María", "Pérez", "maria@huertohogar.cl", "Valparaíso", "CLIENTE", "Cliente123!"),
		mk("u-pedro", "Pedro", "Soto", "pedro@huertohogar.cl", "Biobío", "CLIENTE", "Cliente123!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,nombre,apellido,email,region,password_hash,rol)
			VALUES(?,?,?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Nombre, x.Apellido, x.Email, x.Region, x.Hash, x.Rol); err != nil {
			return err
		}
	}

	return tx.Commit()
}
