package services

import (
	"context"
	"errors"
	"fmt"

	"huertohogar/internal/cart"
	"huertohogar/internal/domain"
	"huertohogar/internal/payments"
)

var ErrCartEmpty = errors.New("cart empty")

type CheckoutService struct {
	Carts    *cart.Store
	Payments *payments.Client
	BackBase string // public base URL for the provider's browser return pages
}

func NewCheckoutService(carts *cart.Store, pay *payments.Client, backBase string) *CheckoutService {
	return &CheckoutService{Carts: carts, Payments: pay, BackBase: backBase}
}

// Checkout turns the session's cart lines into a payment preference. On
// success the cart is cleared; the preference holds the redirect reference
// the client follows to pay. Unit prices come from the parsed display label,
// the same figure the cart showed the buyer.
func (s *CheckoutService) Checkout(ctx context.Context, sid string) (*payments.Preference, error) {
	lines := s.Carts.Lines(sid)
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	req := &payments.PreferenceRequest{
		Items:             make([]payments.PreferenceItem, 0, len(lines)),
		ExternalReference: sid,
	}
	for _, l := range lines {
		unit := domain.ParsePriceLabel(l.Product.PriceLabel)
		req.Items = append(req.Items, payments.PreferenceItem{
			Title:      l.Product.Name,
			Quantity:   l.Qty,
			CurrencyID: "CLP",
			UnitPrice:  unit.InexactFloat64(),
		})
	}
	if s.BackBase != "" {
		req.BackURLs = &payments.BackURLs{
			Success: s.BackBase + "/pago/exito",
			Failure: s.BackBase + "/pago/error",
			Pending: s.BackBase + "/pago/pendiente",
		}
	}

	pref, err := s.Payments.CreatePreference(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	s.Carts.Clear(sid)
	return pref, nil
}
