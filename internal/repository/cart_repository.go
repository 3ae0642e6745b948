package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore/internal/domain"
)

// CartRepository defines persistence access for cart rows. Every operation is
// keyed by user id; there is no way to read another user's rows.
type CartRepository interface {
	Upsert(ctx context.Context, userID, bookID int64, delta int) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.CartItem, error)
	Get(ctx context.Context, userID, bookID int64) (*domain.CartItem, error)
	SetQuantity(ctx context.Context, userID, bookID int64, quantity int) error
	Delete(ctx context.Context, userID, bookID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a Postgres-backed implementation.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) Upsert(ctx context.Context, userID, bookID int64, delta int) (*domain.CartItem, error) {
	const query = `
        INSERT INTO cart_items (user_id, book_id, quantity)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, book_id)
        DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
        RETURNING cart_item_id, user_id, book_id, quantity, created_at, updated_at`

	var item domain.CartItem
	if err := r.pool.QueryRow(ctx, query, userID, bookID, delta).Scan(
		&item.ID,
		&item.UserID,
		&item.BookID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.CartItem, error) {
	const query = `
        SELECT cart_item_id, user_id, book_id, quantity, created_at, updated_at
        FROM cart_items WHERE user_id=$1 ORDER BY cart_item_id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.BookID,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *cartRepository) Get(ctx context.Context, userID, bookID int64) (*domain.CartItem, error) {
	const query = `
        SELECT cart_item_id, user_id, book_id, quantity, created_at, updated_at
        FROM cart_items WHERE user_id=$1 AND book_id=$2`

	var item domain.CartItem
	if err := r.pool.QueryRow(ctx, query, userID, bookID).Scan(
		&item.ID,
		&item.UserID,
		&item.BookID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) SetQuantity(ctx context.Context, userID, bookID int64, quantity int) error {
	const query = `
        UPDATE cart_items SET quantity=$1, updated_at=NOW()
        WHERE user_id=$2 AND book_id=$3`

	cmd, err := r.pool.Exec(ctx, query, quantity, userID, bookID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, userID, bookID int64) error {
	const query = `DELETE FROM cart_items WHERE user_id=$1 AND book_id=$2`

	cmd, err := r.pool.Exec(ctx, query, userID, bookID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cartRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, userID)
	return err
}
