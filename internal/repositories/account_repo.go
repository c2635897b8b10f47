package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prudhvinik1/accountsvc/internal/models"
)

var ErrNotFound = errors.New("account not found")

type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `INSERT INTO accounts (name, email, address, phone_number, date_joined)
              VALUES ($1, $2, $3, $4, COALESCE($5::date, CURRENT_DATE))
              RETURNING id, date_joined`

	// A zero DateJoined means the payload omitted it; the store fills in
	// the creation date.
	var joined any
	if !account.DateJoined.IsZero() {
		joined = account.DateJoined
	}

	err := r.pool.QueryRow(ctx, query,
		account.Name,
		account.Email,
		account.Address,
		account.PhoneNumber,
		joined,
	).Scan(&account.ID, &account.DateJoined)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT id, name, email, address, phone_number, date_joined
              FROM accounts
              WHERE id = $1`

	var account models.Account
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Address,
		&account.PhoneNumber,
		&account.DateJoined,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *PostgresAccountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `UPDATE accounts
              SET name = $1, email = $2, address = $3, phone_number = $4, date_joined = $5
              WHERE id = $6`

	result, err := r.pool.Exec(ctx, query,
		account.Name,
		account.Email,
		account.Address,
		account.PhoneNumber,
		account.DateJoined,
		account.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the row if present. Deleting an absent id is not an error.
func (r *PostgresAccountRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

func (r *PostgresAccountRepository) List(ctx context.Context) ([]*models.Account, error) {
	query := `SELECT id, name, email, address, phone_number, date_joined
              FROM accounts`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		var account models.Account
		err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.Email,
			&account.Address,
			&account.PhoneNumber,
			&account.DateJoined,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
