package handlers

import (
	"huertohogar/internal/cart"
	"huertohogar/internal/config"
	"huertohogar/internal/payments"
	"huertohogar/internal/repos"
	"huertohogar/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	TipHandler      *TipHandler
	StoreHandler    *StoreHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	UserHandler     *UserHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService, carts *cart.Store) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	tipRepo := repos.NewTipRepo(db)
	storeRepo := repos.NewStoreRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo, tipRepo, storeRepo)
	cartSvc := services.NewCartService(carts, prodRepo)

	payClient := payments.New(payments.Config{
		BaseURL:     cfg.MPBaseURL,
		AccessToken: cfg.MPAccessToken,
	})
	checkoutSvc := services.NewCheckoutService(carts, payClient, cfg.MPBackBase)

	return &Deps{
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		TipHandler:      &TipHandler{Catalog: catalogSvc},
		StoreHandler:    &StoreHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc},
		UserHandler:     &UserHandler{Users: auth.Users},
	}
}
