package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore/internal/domain"
)

// AccountRepository defines persistence access for credential records.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByPhoneNumber(ctx context.Context, phone string) (*domain.Account, error)
	ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (email, phone_number, password_hash, role)
        VALUES (NULLIF($1, ''), $2, $3, $4)
        RETURNING account_id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		account.Email,
		account.PhoneNumber,
		account.PasswordHash,
		account.Role,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `
        UPDATE accounts SET password_hash=$1, updated_at=NOW()
        WHERE account_id=$2`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const query = `
        SELECT account_id, COALESCE(email, ''), phone_number, password_hash, role, created_at, updated_at
        FROM accounts WHERE email=$1`

	return r.scanOne(ctx, query, email)
}

func (r *accountRepository) GetByPhoneNumber(ctx context.Context, phone string) (*domain.Account, error) {
	const query = `
        SELECT account_id, COALESCE(email, ''), phone_number, password_hash, role, created_at, updated_at
        FROM accounts WHERE phone_number=$1`

	return r.scanOne(ctx, query, phone)
}

func (r *accountRepository) ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM accounts WHERE phone_number=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, phone).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *accountRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.PhoneNumber,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}
