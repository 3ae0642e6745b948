package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore/internal/domain"
)

// BookRepository defines persistence access for the catalog.
type BookRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	ListPaged(ctx context.Context, page, size int) ([]*domain.Book, int64, error)
	ListNewest(ctx context.Context, limit int) ([]*domain.Book, error)
	DeductStock(ctx context.Context, id int64, amount int) error
}

type bookRepository struct {
	pool *pgxpool.Pool
}

// NewBookRepository returns a Postgres-backed implementation.
func NewBookRepository(pool *pgxpool.Pool) BookRepository {
	return &bookRepository{pool: pool}
}

const bookColumns = `book_id, title, author, price, quantity, description, image_url, created_at, updated_at`

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE book_id=$1`

	var book domain.Book
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Price,
		&book.Quantity,
		&book.Description,
		&book.ImageURL,
		&book.CreatedAt,
		&book.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) ListPaged(ctx context.Context, page, size int) ([]*domain.Book, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + bookColumns + ` FROM books ORDER BY book_id LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books, err := scanBooks(rows.Next, rows.Scan)
	if err != nil {
		return nil, 0, err
	}
	return books, total, rows.Err()
}

func (r *bookRepository) ListNewest(ctx context.Context, limit int) ([]*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books, err := scanBooks(rows.Next, rows.Scan)
	if err != nil {
		return nil, err
	}
	return books, rows.Err()
}

// DeductStock atomically removes copies from stock. The guard in the WHERE
// clause makes overselling impossible even under concurrent orders; zero rows
// affected means the book is missing or short on stock.
func (r *bookRepository) DeductStock(ctx context.Context, id int64, amount int) error {
	const query = `
        UPDATE books SET quantity = quantity - $2, updated_at=NOW()
        WHERE book_id=$1 AND quantity >= $2`

	cmd, err := r.pool.Exec(ctx, query, id, amount)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanBooks(next func() bool, scan func(...any) error) ([]*domain.Book, error) {
	books := make([]*domain.Book, 0)
	for next() {
		var book domain.Book
		if err := scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.Price,
			&book.Quantity,
			&book.Description,
			&book.ImageURL,
			&book.CreatedAt,
			&book.UpdatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	return books, nil
}
