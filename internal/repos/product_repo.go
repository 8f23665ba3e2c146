package repos

import (
	"huertohogar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List(limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, price, price_label, image, category, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE active = 1
	  ORDER BY category, name
	  LIMIT ? OFFSET ?
	`, limit, offset)
	return out, err
}

func (r *ProductRepo) ListByCategory(category string, limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, price, price_label, image, category, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE category = ? AND active = 1
	  ORDER BY name
	  LIMIT ? OFFSET ?
	`, category, limit, offset)
	return out, err
}

func (r *ProductRepo) Search(q, category string, limit, offset int) ([]domain.Product, error) {
	where := `active = 1`
	args := []any{}
	if q != "" {
		where += ` AND LOWER(name) LIKE ?`
		args = append(args, "%"+q+"%")
	}
	if category != "" {
		where += ` AND category = ?`
		args = append(args, category)
	}

	sql := `
	  SELECT id, name, price, price_label, image, category, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE ` + where + `
	  ORDER BY category, name
	  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var out []domain.Product
	err := r.db.Select(&out, sql, args...)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, price, price_label, image, category, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,name,price,price_label,image,category,active)
	  VALUES(?,?,?,?,?,?,?)
	`, p.ID, p.Name, p.Price, p.PriceLabel, p.Image, p.Category, p.Active)
	return err
}

func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products
	  SET name=?, price=?, price_label=?, image=?, category=?, active=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, p.Name, p.Price, p.PriceLabel, p.Image, p.Category, p.Active, p.ID)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return err
}

func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products`)
	return n, err
}

// ReplaceAll swaps the catalog wholesale: delete everything, insert the given
// rows in one transaction.
func (r *ProductRepo) ReplaceAll(products []domain.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return err
	}
	for _, p := range products {
		if _, err := tx.Exec(`
		  INSERT INTO products(id,name,price,price_label,image,category,active)
		  VALUES(?,?,?,?,?,?,?)
		`, p.ID, p.Name, p.Price, p.PriceLabel, p.Image, p.Category, p.Active); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// PopulateIfEmpty inserts the fixed six-item catalog when the table has no
// rows. Running it twice never duplicates anything.
func (r *ProductRepo) PopulateIfEmpty() error {
	n, err := r.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return r.ReplaceAll(defaultProducts)
}
