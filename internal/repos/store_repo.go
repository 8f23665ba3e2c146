package repos

import (
	"huertohogar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type StoreRepo struct{ db *sqlx.DB }

func NewStoreRepo(db *sqlx.DB) *StoreRepo { return &StoreRepo{db: db} }

func (r *StoreRepo) List() ([]domain.Store, error) {
	var out []domain.Store
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(address,'') AS address, COALESCE(phone,'') AS phone,
	         COALESCE(lat,0) AS lat, COALESCE(lng,0) AS lng,
	         COALESCE(description,'') AS description
	  FROM tiendas
	  ORDER BY name
	`)
	return out, err
}

// ReplaceAll bulk-clears and re-inserts the branch list.
func (r *StoreRepo) ReplaceAll(stores []domain.Store) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM tiendas`); err != nil {
		return err
	}
	for _, s := range stores {
		if _, err := tx.Exec(`
		  INSERT INTO tiendas(id,name,address,phone,lat,lng,description)
		  VALUES(?,?,?,?,?,?,?)
		`, s.ID, s.Name, s.Address, s.Phone, s.Lat, s.Lng, s.Description); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *StoreRepo) PopulateIfEmpty() error {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM tiendas`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return r.ReplaceAll(defaultStores)
}
