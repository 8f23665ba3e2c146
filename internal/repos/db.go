package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the SQLite store, creates the schema and seeds the default
// dataset. It is called exactly once at startup and the handle is injected
// into every repo; nothing else in the process opens the database.
//
// Seeding is best-effort: a seed failure is logged and the handle is still
// returned, since the app can run against an empty catalog. A schema failure
// is fatal to the caller.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedAll(db); err != nil {
		log.Printf("[seed] warn: %v", err)
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  image TEXT,
  description TEXT
);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  price_label TEXT NOT NULL,
  image TEXT,
  category TEXT NOT NULL CHECK (category IN ('frutas','verduras','organicos','lacteos','otros')),
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Tips
CREATE TABLE IF NOT EXISTS tips(
  id TEXT PRIMARY KEY,
  icon TEXT,
  title TEXT NOT NULL,
  body TEXT NOT NULL
);

-- Tiendas
CREATE TABLE IF NOT EXISTS tiendas(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  address TEXT,
  phone TEXT,
  lat REAL,
  lng REAL,
  description TEXT
);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  nombre TEXT NOT NULL,
  apellido TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  region TEXT,
  password_hash TEXT NOT NULL,
  fecha_registro TEXT DEFAULT CURRENT_TIMESTAMP,
  activo INTEGER NOT NULL DEFAULT 1,
  rol TEXT NOT NULL CHECK (rol IN ('CLIENTE','ADMIN')),
  foto TEXT NOT NULL DEFAULT ''
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  token TEXT PRIMARY KEY,
  user_id TEXT NULL REFERENCES users(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

// seedAll fills every empty table with its fixed default rows. Each step is
// idempotent so it is safe to run on every start.
func seedAll(db *sqlx.DB) error {
	if err := NewCategoryRepo(db).PopulateIfEmpty(); err != nil {
		return err
	}
	if err := NewProductRepo(db).PopulateIfEmpty(); err != nil {
		return err
	}
	if err := NewTipRepo(db).PopulateIfEmpty(); err != nil {
		return err
	}
	if err := NewStoreRepo(db).PopulateIfEmpty(); err != nil {
		return err
	}
	return seedUsers(db)
}
