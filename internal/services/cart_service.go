package services

import (
	"github.com/shopspring/decimal"

	"huertohogar/internal/cart"
	"huertohogar/internal/domain"
	"huertohogar/internal/repos"
)

type CartService struct {
	Carts *cart.Store
	Prods *repos.ProductRepo
}

func NewCartService(carts *cart.Store, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// Add resolves the product from the catalog and drops it into the session's
// cart; an already-present product has its quantity incremented.
func (s *CartService) Add(sid, productID string, qty int) error {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return err
	}
	s.Carts.Add(sid, p, qty)
	return nil
}

func (s *CartService) Remove(sid, productID string) {
	s.Carts.Remove(sid, productID)
}

func (s *CartService) Clear(sid string) {
	s.Carts.Clear(sid)
}

type CartView struct {
	Lines []CartLineView  `json:"items"`
	Count int             `json:"cantidad_total"`
	Total decimal.Decimal `json:"total"`
}

type CartLineView struct {
	domain.CartLine
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (s *CartService) View(sid string) CartView {
	lines := s.Carts.Lines(sid)
	view := CartView{Lines: make([]CartLineView, 0, len(lines)), Total: decimal.Zero}
	for _, l := range lines {
		view.Lines = append(view.Lines, CartLineView{CartLine: l, Subtotal: l.Subtotal()})
		view.Count += l.Qty
		view.Total = view.Total.Add(l.Subtotal())
	}
	return view
}
