package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/repository"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

const newestBooksLimit = 10

// BookService serves the public catalog.
type BookService struct {
	books repository.BookRepository
}

// NewBookService builds the service.
func NewBookService(books repository.BookRepository) *BookService {
	return &BookService{books: books}
}

// PagedBooks is one page of the catalog.
type PagedBooks struct {
	Items []*domain.Book
	Total int64
	Page  int
	Size  int
}

// Paged returns one catalog page.
func (s *BookService) Paged(ctx context.Context, page, size int) (*PagedBooks, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	items, total, err := s.books.ListPaged(ctx, page, size)
	if err != nil {
		return nil, apperrors.NewDownstreamUnavailable("book store", err)
	}
	return &PagedBooks{Items: items, Total: total, Page: page, Size: size}, nil
}

// Newest returns the most recently added books.
func (s *BookService) Newest(ctx context.Context) ([]*domain.Book, error) {
	items, err := s.books.ListNewest(ctx, newestBooksLimit)
	if err != nil {
		return nil, apperrors.NewDownstreamUnavailable("book store", err)
	}
	return items, nil
}

// DeductStock removes copies from stock when an order is fulfilled. A book
// with fewer copies than requested is left untouched and the call fails.
func (s *BookService) DeductStock(ctx context.Context, id int64, amount int) error {
	if amount <= 0 {
		return apperrors.NewValidationError("quantity must be positive",
			map[string]any{"quantity": "quantity must be positive"})
	}

	if err := s.books.DeductStock(ctx, id, amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("not enough stock",
				map[string]any{"id": id, "quantity": "not enough stock"})
		}
		return apperrors.NewDownstreamUnavailable("book store", err)
	}
	return nil
}

// ByID looks up a single book.
func (s *BookService) ByID(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("book", map[string]any{"id": id})
		}
		return nil, apperrors.NewDownstreamUnavailable("book store", err)
	}
	return book, nil
}
