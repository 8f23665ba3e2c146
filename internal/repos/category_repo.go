package repos

import (
	"huertohogar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(image,'') AS image, COALESCE(description,'') AS description
	  FROM categories
	  ORDER BY name
	`)
	return out, err
}

func (r *CategoryRepo) Get(id string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
	  SELECT id, name, COALESCE(image,'') AS image, COALESCE(description,'') AS description
	  FROM categories
	  WHERE id = ?
	`, id)
	return c, err
}

func (r *CategoryRepo) PopulateIfEmpty() error {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	tx := r.db.MustBegin()
	defer func() { _ = tx.Rollback() }()
	for _, c := range defaultCategories {
		if _, err := tx.Exec(`INSERT INTO categories(id,name,image,description) VALUES(?,?,?,?)`,
			c.ID, c.Name, c.Image, c.Description); err != nil {
			return err
		}
	}
	return tx.Commit()
}
