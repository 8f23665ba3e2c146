package repos

import (
	"huertohogar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id,nombre,apellido,email,COALESCE(region,'') AS region,password_hash,fecha_registro,activo,rol,foto`

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List() ([]domain.User, error) {
	var out []domain.User
	err := r.DB.Select(&out, `SELECT `+userCols+` FROM users ORDER BY email`)
	return out, err
}

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`
	  INSERT INTO users(id,nombre,apellido,email,region,password_hash,fecha_registro,activo,rol,foto)
	  VALUES(?,?,?,?,?,?,?,?,?,?)
	`, u.ID, u.FirstName, u.LastName, u.Email, u.Region, u.Hash, u.RegisteredAt, u.Active, u.Role, u.Photo)
	return err
}

// UpdatePhoto sets the profile photo URI for a user.
func (r *UserRepo) UpdatePhoto(userID, photo string) error {
	_, err := r.DB.Exec(`UPDATE users SET foto=? WHERE id=?`, photo, userID)
	return err
}

// Delete removes the user; sessions go with it via ON DELETE CASCADE.
func (r *UserRepo) Delete(userID string) error {
	_, err := r.DB.Exec(`DELETE FROM users WHERE id=?`, userID)
	return err
}

// ---------- session tokens ----------

func (r *UserRepo) BindSession(token, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(token,user_id,last_seen)
	                      VALUES(?,?,CURRENT_TIMESTAMP)
	                      ON CONFLICT(token) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`,
		token, userID)
	return err
}

func (r *UserRepo) SessionUser(token string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT u.id,u.nombre,u.apellido,u.email,COALESCE(u.region,'') AS region,
	         u.password_hash,u.fecha_registro,u.activo,u.rol,u.foto
	  FROM sessions s
	  JOIN users u ON u.id=s.user_id
	  WHERE s.token=?`, token)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(token string) error {
	_, err := r.DB.Exec(`DELETE FROM sessions WHERE token=?`, token)
	return err
}
