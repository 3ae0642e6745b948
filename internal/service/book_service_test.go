package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bookstore/internal/domain"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// shelfStore is an in-memory BookRepository.
type shelfStore struct {
	books map[int64]*domain.Book
}

func (s *shelfStore) GetByID(_ context.Context, id int64) (*domain.Book, error) {
	if book, ok := s.books[id]; ok {
		return book, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *shelfStore) ListPaged(_ context.Context, page, size int) ([]*domain.Book, int64, error) {
	out := make([]*domain.Book, 0, len(s.books))
	for _, book := range s.books {
		out = append(out, book)
	}
	return out, int64(len(s.books)), nil
}

func (s *shelfStore) ListNewest(_ context.Context, limit int) ([]*domain.Book, error) {
	out := make([]*domain.Book, 0, len(s.books))
	for _, book := range s.books {
		out = append(out, book)
	}
	return out, nil
}

func (s *shelfStore) DeductStock(_ context.Context, id int64, amount int) error {
	book, ok := s.books[id]
	if !ok || book.Quantity < amount {
		return pgx.ErrNoRows
	}
	book.Quantity -= amount
	return nil
}

func TestDeductStock(t *testing.T) {
	store := &shelfStore{books: map[int64]*domain.Book{7: {ID: 7, Title: "Dune", Quantity: 5}}}
	svc := NewBookService(store)

	require.NoError(t, svc.DeductStock(context.Background(), 7, 3))
	assert.Equal(t, 2, store.books[7].Quantity)
}

func TestDeductStockInsufficient(t *testing.T) {
	store := &shelfStore{books: map[int64]*domain.Book{7: {ID: 7, Title: "Dune", Quantity: 2}}}
	svc := NewBookService(store)

	err := svc.DeductStock(context.Background(), 7, 3)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, "not enough stock", domainErr.Message)

	// Stock stays untouched on failure.
	assert.Equal(t, 2, store.books[7].Quantity)
}

func TestDeductStockRejectsNonPositiveAmount(t *testing.T) {
	svc := NewBookService(&shelfStore{books: map[int64]*domain.Book{}})

	for _, amount := range []int{0, -1} {
		err := svc.DeductStock(context.Background(), 7, amount)
		require.Error(t, err, "amount %d", amount)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	}
}
