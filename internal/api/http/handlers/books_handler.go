package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore/internal/api/dto"
	"github.com/spec-kit/bookstore/internal/service"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// BooksHandler exposes the public catalog endpoints.
type BooksHandler struct {
	books *service.BookService
}

// NewBooksHandler constructs the handler.
func NewBooksHandler(books *service.BookService) *BooksHandler {
	return &BooksHandler{books: books}
}

// Paged handles GET /api/books/paged.
func (h *BooksHandler) Paged(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	result, err := h.books.Paged(c.Context(), page, size)
	if err != nil {
		return err
	}

	content := make([]dto.BookDTO, 0, len(result.Items))
	for _, book := range result.Items {
		content = append(content, dto.FromBook(book))
	}
	return c.JSON(dto.PagedBooksDTO{
		Content:       content,
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.Total,
	})
}

// Newest handles GET /api/books/newest.
func (h *BooksHandler) Newest(c *fiber.Ctx) error {
	books, err := h.books.Newest(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.BookDTO, 0, len(books))
	for _, book := range books {
		out = append(out, dto.FromBook(book))
	}
	return c.JSON(fiber.Map{"data": out})
}

// GetByID handles GET /api/books/:id.
func (h *BooksHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid book id", nil)
	}

	book, err := h.books.ByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromBook(book)})
}

// UpdateStock handles PATCH /api/books/:id/update-stock. The body is a bare
// integer: the number of copies an order takes out of stock.
func (h *BooksHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid book id", nil)
	}

	amount, err := strconv.Atoi(strings.TrimSpace(string(c.Body())))
	if err != nil {
		return apperrors.NewValidationError("invalid quantity", nil)
	}

	if err := h.books.DeductStock(c.Context(), id, amount); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
