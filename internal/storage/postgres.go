package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx so helpers can run
// inside or outside a transaction.
type querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			address TEXT,
			birth_date TIMESTAMPTZ,
			gender TEXT,
			phone_number TEXT,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
			image TEXT,
			vegetarian BOOLEAN NOT NULL DEFAULT FALSE,
			rating DOUBLE PRECISION,
			category TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS baskets (
			id UUID PRIMARY KEY,
			user_id INTEGER NOT NULL UNIQUE REFERENCES users(id),
			total_price DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS basket_lines (
			id UUID PRIMARY KEY,
			basket_id UUID NOT NULL REFERENCES baskets(id) ON DELETE CASCADE,
			dish_id UUID NOT NULL REFERENCES dishes(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			line_total DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (basket_id, dish_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			delivery_time TIMESTAMPTZ NOT NULL,
			order_time TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			address TEXT NOT NULL,
			basket_id UUID,
			qr_code BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS ratings (
			id UUID PRIMARY KEY,
			dish_id UUID NOT NULL REFERENCES dishes(id),
			user_id INTEGER NOT NULL REFERENCES users(id),
			score INTEGER NOT NULL CHECK (score BETWEEN 1 AND 5),
			rated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (dish_id, user_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
