package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const accountsSchema = `
CREATE TABLE IF NOT EXISTS accounts (
    id           BIGSERIAL PRIMARY KEY,
    name         TEXT NOT NULL,
    email        TEXT NOT NULL,
    address      TEXT NOT NULL,
    phone_number TEXT NOT NULL DEFAULT '',
    date_joined  DATE NOT NULL DEFAULT CURRENT_DATE
)`

// EnsureSchema creates the accounts table if it does not exist yet. Safe to
// run on every boot.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, accountsSchema); err != nil {
		return fmt.Errorf("error creating accounts table: %w", err)
	}
	return nil
}
