package services

import (
	"huertohogar/internal/domain"
	"huertohogar/internal/repos"
)

type CatalogService struct {
	Cats   *repos.CategoryRepo
	Prods  *repos.ProductRepo
	Tips   *repos.TipRepo
	Stores *repos.StoreRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo, tips *repos.TipRepo, stores *repos.StoreRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods, Tips: tips, Stores: stores}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) ListProductsByCategory(category string, page, pageSize int) ([]domain.Product, error) {
	page, pageSize = clampPage(page, pageSize)
	return s.Prods.ListByCategory(category, pageSize, (page-1)*pageSize)
}

func (s *CatalogService) ListProducts(q, category string, page, pageSize int) ([]domain.Product, error) {
	page, pageSize = clampPage(page, pageSize)
	if q == "" && category == "" {
		return s.Prods.List(pageSize, (page-1)*pageSize)
	}
	return s.Prods.Search(q, category, pageSize, (page-1)*pageSize)
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) ListTips() ([]domain.Tip, error) {
	return s.Tips.List()
}

func (s *CatalogService) ListStores() ([]domain.Store, error) {
	return s.Stores.List()
}

func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 20
	}
	return page, pageSize
}
