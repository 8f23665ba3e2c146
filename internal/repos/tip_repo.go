package repos

import (
	"huertohogar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TipRepo struct{ db *sqlx.DB }

func NewTipRepo(db *sqlx.DB) *TipRepo { return &TipRepo{db: db} }

func (r *TipRepo) List() ([]domain.Tip, error) {
	var out []domain.Tip
	err := r.db.Select(&out, `SELECT id, COALESCE(icon,'') AS icon, title, body FROM tips ORDER BY id`)
	return out, err
}

// ReplaceAll clears the table and inserts the given tips.
func (r *TipRepo) ReplaceAll(tips []domain.Tip) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM tips`); err != nil {
		return err
	}
	for _, tp := range tips {
		if _, err := tx.Exec(`INSERT INTO tips(id,icon,title,body) VALUES(?,?,?,?)`,
			tp.ID, tp.Icon, tp.Title, tp.Body); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *TipRepo) PopulateIfEmpty() error {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM tips`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return r.ReplaceAll(defaultTips)
}
