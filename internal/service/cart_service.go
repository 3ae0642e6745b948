package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/repository"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// CartService manages cart rows for the user id the gateway vouched for. It
// never inspects tokens; the caller supplies an already-trusted user id.
type CartService struct {
	carts  repository.CartRepository
	books  BookLookup
	logger *zap.Logger
}

// NewCartService builds the service.
func NewCartService(carts repository.CartRepository, books BookLookup, logger *zap.Logger) *CartService {
	return &CartService{carts: carts, books: books, logger: logger}
}

// CartLine pairs a cart row with the book details behind it.
type CartLine struct {
	Item *domain.CartItem
	Book *domain.Book
}

// Add puts one more copy of the book into the user's cart.
func (s *CartService) Add(ctx context.Context, userID, bookID int64) (*CartLine, error) {
	item, err := s.carts.Upsert(ctx, userID, bookID, 1)
	if err != nil {
		return nil, apperrors.NewDownstreamUnavailable("cart store", err)
	}
	return s.withBook(ctx, item), nil
}

// List returns every line in the user's cart.
func (s *CartService) List(ctx context.Context, userID int64) ([]*CartLine, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDownstreamUnavailable("cart store", err)
	}

	lines := make([]*CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, s.withBook(ctx, item))
	}
	return lines, nil
}

// Remove drops a book from the cart entirely.
func (s *CartService) Remove(ctx context.Context, userID, bookID int64) error {
	if err := s.carts.Delete(ctx, userID, bookID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("cart item", map[string]any{"bookId": bookID})
		}
		return apperrors.NewDownstreamUnavailable("cart store", err)
	}
	return nil
}

// Increase bumps the quantity by one.
func (s *CartService) Increase(ctx context.Context, userID, bookID int64) error {
	_, err := s.carts.Upsert(ctx, userID, bookID, 1)
	if err != nil {
		return apperrors.NewDownstreamUnavailable("cart store", err)
	}
	return nil
}

// Decrease lowers the quantity by one, removing the line at zero.
func (s *CartService) Decrease(ctx context.Context, userID, bookID int64) error {
	item, err := s.carts.Get(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("cart item", map[string]any{"bookId": bookID})
		}
		return apperrors.NewDownstreamUnavailable("cart store", err)
	}

	if item.Quantity <= 1 {
		return s.Remove(ctx, userID, bookID)
	}
	if err := s.carts.SetQuantity(ctx, userID, bookID, item.Quantity-1); err != nil {
		return apperrors.NewDownstreamUnavailable("cart store", err)
	}
	return nil
}

// Clear empties the user's cart.
func (s *CartService) Clear(ctx context.Context, userID int64) error {
	if err := s.carts.DeleteByUser(ctx, userID); err != nil {
		return apperrors.NewDownstreamUnavailable("cart store", err)
	}
	return nil
}

// withBook decorates a cart row with book details. A failed lookup leaves the
// line without details rather than failing the cart call.
func (s *CartService) withBook(ctx context.Context, item *domain.CartItem) *CartLine {
	line := &CartLine{Item: item}
	if s.books == nil {
		return line
	}
	book, err := s.books.BookByID(ctx, item.BookID)
	if err != nil {
		s.logger.Warn("book lookup failed", zap.Int64("book_id", item.BookID), zap.Error(err))
		return line
	}
	line.Book = book
	return line
}
