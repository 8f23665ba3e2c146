package domain

import "github.com/shopspring/decimal"

// Product categories form a closed set; CategoryNames holds display text.
const (
	CategoryFrutas    = "frutas"
	CategoryVerduras  = "verduras"
	CategoryOrganicos = "organicos"
	CategoryLacteos   = "lacteos"
	CategoryOtros     = "otros"
)

var CategoryNames = map[string]string{
	CategoryFrutas:    "Frutas Frescas",
	CategoryVerduras:  "Verduras Orgánicas",
	CategoryOrganicos: "Productos Orgánicos",
	CategoryLacteos:   "Productos Lácteos",
	CategoryOtros:     "Otros",
}

func ValidCategory(id string) bool {
	_, ok := CategoryNames[id]
	return ok
}

type Category struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"nombre"`
	Image       string `db:"image" json:"imagen"`
	Description string `db:"description" json:"descripcion"`
}

type Product struct {
	ID         string          `db:"id" json:"id"`
	Name       string          `db:"name" json:"nombre"`
	Price      decimal.Decimal `db:"price" json:"precio"`
	PriceLabel string          `db:"price_label" json:"precio_texto"` // display form, e.g. "$1.200/Kg"
	Image      string          `db:"image" json:"imagen"`
	Category   string          `db:"category" json:"categoria"`
	Active     bool            `db:"active" json:"activo"`
	CreatedAt  string          `db:"created_at" json:"-"`
	UpdatedAt  string          `db:"updated_at" json:"-"`
}

type Tip struct {
	ID    string `db:"id" json:"id"`
	Icon  string `db:"icon" json:"icono"`
	Title string `db:"title" json:"titulo"`
	Body  string `db:"body" json:"texto"`
}

// Store is a physical HuertoHogar branch (tienda).
type Store struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"nombre"`
	Address     string  `db:"address" json:"direccion"`
	Phone       string  `db:"phone" json:"telefono"`
	Lat         float64 `db:"lat" json:"lat"`
	Lng         float64 `db:"lng" json:"lng"`
	Description string  `db:"description" json:"descripcion"`
}

// CartLine is a product with a quantity. Lines live only in memory; they are
// never persisted and a process restart empties every cart.
type CartLine struct {
	Product Product `json:"producto"`
	Qty     int     `json:"cantidad"`
}

// Subtotal derives the line amount from the display label rather than the
// numeric price column, so labels and totals can never disagree on screen.
// A malformed label contributes zero.
func (l CartLine) Subtotal() decimal.Decimal {
	return ParsePriceLabel(l.Product.PriceLabel).Mul(decimal.NewFromInt(int64(l.Qty)))
}
