package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore/internal/api/http/handlers"
	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/observability"
	"github.com/spec-kit/bookstore/internal/service"
)

type fakeBooks struct {
	books map[int64]*domain.Book
}

func (f *fakeBooks) GetByID(_ context.Context, id int64) (*domain.Book, error) {
	if book, ok := f.books[id]; ok {
		return book, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeBooks) ListPaged(_ context.Context, page, size int) ([]*domain.Book, int64, error) {
	out := make([]*domain.Book, 0, len(f.books))
	for _, book := range f.books {
		out = append(out, book)
	}
	return out, int64(len(f.books)), nil
}

func (f *fakeBooks) ListNewest(_ context.Context, limit int) ([]*domain.Book, error) {
	out := make([]*domain.Book, 0, len(f.books))
	for _, book := range f.books {
		out = append(out, book)
	}
	return out, nil
}

func (f *fakeBooks) DeductStock(_ context.Context, id int64, amount int) error {
	book, ok := f.books[id]
	if !ok || book.Quantity < amount {
		return pgx.ErrNoRows
	}
	book.Quantity -= amount
	return nil
}

func newBookTestApp(t *testing.T, store *fakeBooks) *fiber.App {
	t.Helper()

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterBookRoutes(app, BookRouteConfig{
		Health: handlers.NewHealthHandler("book-service", "test", nil, nil),
		Books:  handlers.NewBooksHandler(service.NewBookService(store)),
	})
	return app
}

func patchStock(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestUpdateStockRoute(t *testing.T) {
	store := &fakeBooks{books: map[int64]*domain.Book{7: {ID: 7, Title: "Dune", Quantity: 5}}}
	app := newBookTestApp(t, store)

	resp := patchStock(t, app, "/api/books/7/update-stock", "3")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, store.books[7].Quantity)
}

func TestUpdateStockRouteInsufficient(t *testing.T) {
	store := &fakeBooks{books: map[int64]*domain.Book{7: {ID: 7, Title: "Dune", Quantity: 2}}}
	app := newBookTestApp(t, store)

	resp := patchStock(t, app, "/api/books/7/update-stock", "3")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 2, store.books[7].Quantity)
}

func TestUpdateStockRouteRejectsBadBody(t *testing.T) {
	store := &fakeBooks{books: map[int64]*domain.Book{7: {ID: 7, Title: "Dune", Quantity: 5}}}
	app := newBookTestApp(t, store)

	for _, body := range []string{"", "abc", `{"quantity":3}`} {
		resp := patchStock(t, app, "/api/books/7/update-stock", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
	}
}
