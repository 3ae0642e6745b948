package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore/internal/domain"
)

// AddressRepository defines persistence access for user address books.
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, id int64) error
}

type addressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository returns a Postgres-backed implementation.
func NewAddressRepository(pool *pgxpool.Pool) AddressRepository {
	return &addressRepository{pool: pool}
}

func (r *addressRepository) Create(ctx context.Context, address *domain.Address) error {
	const query = `
        INSERT INTO addresses (user_id, address)
        VALUES ($1, $2)
        RETURNING address_id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		address.UserID,
		address.Address,
	).Scan(&address.ID, &address.CreatedAt, &address.UpdatedAt)
}

func (r *addressRepository) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	const query = `
        SELECT address_id, user_id, address, created_at, updated_at
        FROM addresses WHERE address_id=$1`

	var address domain.Address
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&address.ID,
		&address.UserID,
		&address.Address,
		&address.CreatedAt,
		&address.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Address, error) {
	const query = `
        SELECT address_id, user_id, address, created_at, updated_at
        FROM addresses WHERE user_id=$1 ORDER BY address_id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]*domain.Address, 0)
	for rows.Next() {
		var address domain.Address
		if err := rows.Scan(
			&address.ID,
			&address.UserID,
			&address.Address,
			&address.CreatedAt,
			&address.UpdatedAt,
		); err != nil {
			return nil, err
		}
		addresses = append(addresses, &address)
	}
	return addresses, rows.Err()
}

func (r *addressRepository) Update(ctx context.Context, address *domain.Address) error {
	const query = `
        UPDATE addresses SET address=$1, updated_at=NOW()
        WHERE address_id=$2
        RETURNING user_id, updated_at`

	return r.pool.QueryRow(ctx, query,
		address.Address,
		address.ID,
	).Scan(&address.UserID, &address.UpdatedAt)
}

func (r *addressRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE address_id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
