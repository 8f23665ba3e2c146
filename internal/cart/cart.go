// Package cart holds the volatile shopping carts. Carts are keyed by session
// id and live only in process memory: a restart empties every cart, and
// checkout clears rather than archives. Nothing here touches the database.
package cart

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"huertohogar/internal/domain"
)

type Store struct {
	mu    sync.Mutex
	carts map[string]map[string]*domain.CartLine // session id -> product id -> line
}

func NewStore() *Store {
	return &Store{carts: make(map[string]map[string]*domain.CartLine)}
}

// Add puts qty units of p into the session's cart; if the product is already
// present its quantity is incremented.
func (s *Store) Add(sid string, p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sid]
	if lines == nil {
		lines = make(map[string]*domain.CartLine)
		s.carts[sid] = lines
	}
	if l, ok := lines[p.ID]; ok {
		l.Qty += qty
		return
	}
	lines[p.ID] = &domain.CartLine{Product: p, Qty: qty}
}

// Remove drops the product's line entirely, whatever its quantity.
func (s *Store) Remove(sid, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts[sid], productID)
}

func (s *Store) Clear(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sid)
}

// Lines returns the cart's lines ordered by product id.
func (s *Store) Lines(sid string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, 0, len(s.carts[sid]))
	for _, l := range s.carts[sid] {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product.ID < out[j].Product.ID })
	return out
}

// Count is the sum of quantities across all lines.
func (s *Store) Count(sid string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, l := range s.carts[sid] {
		n += l.Qty
	}
	return n
}

// Total is the sum of line subtotals.
func (s *Store) Total(sid string) decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines(sid) {
		total = total.Add(l.Subtotal())
	}
	return total
}
