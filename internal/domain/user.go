package domain

type User struct {
	ID           string `db:"id" json:"id"`
	FirstName    string `db:"nombre" json:"nombre"`
	LastName     string `db:"apellido" json:"apellido"`
	Email        string `db:"email" json:"email"`
	Region       string `db:"region" json:"region"`
	Hash         string `db:"password_hash" json:"-"`
	RegisteredAt string `db:"fecha_registro" json:"fecha_registro"`
	Active       bool   `db:"activo" json:"activo"`
	Role         string `db:"rol" json:"rol"` // CLIENTE | ADMIN
	Photo        string `db:"foto" json:"foto,omitempty"`
}
