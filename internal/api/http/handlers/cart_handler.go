package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore/internal/api/dto"
	"github.com/spec-kit/bookstore/internal/identity"
	"github.com/spec-kit/bookstore/internal/service"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// CartHandler exposes the cart endpoints. Every route sits behind
// identity.Require, so the user id here is the one the gateway verified.
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler constructs the handler.
func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Add handles POST /api/cart/add?bookId=N.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	bookID, err := queryBookID(c)
	if err != nil {
		return err
	}

	line, err := h.carts.Add(c.Context(), identity.UserID(c), bookID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromCartLine(line)})
}

// All handles GET /api/cart/all.
func (h *CartHandler) All(c *fiber.Ctx) error {
	lines, err := h.carts.List(c.Context(), identity.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromCartLines(lines)})
}

// Remove handles DELETE /api/cart/remove?bookId=N.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	bookID, err := queryBookID(c)
	if err != nil {
		return err
	}

	userID := identity.UserID(c)
	if err := h.carts.Remove(c.Context(), userID, bookID); err != nil {
		return err
	}
	return h.respondWithCart(c, userID)
}

// Increase handles PATCH /api/cart/increase?bookId=N.
func (h *CartHandler) Increase(c *fiber.Ctx) error {
	bookID, err := queryBookID(c)
	if err != nil {
		return err
	}

	userID := identity.UserID(c)
	if err := h.carts.Increase(c.Context(), userID, bookID); err != nil {
		return err
	}
	return h.respondWithCart(c, userID)
}

// Decrease handles PATCH /api/cart/decrease?bookId=N.
func (h *CartHandler) Decrease(c *fiber.Ctx) error {
	bookID, err := queryBookID(c)
	if err != nil {
		return err
	}

	userID := identity.UserID(c)
	if err := h.carts.Decrease(c.Context(), userID, bookID); err != nil {
		return err
	}
	return h.respondWithCart(c, userID)
}

// Clear handles DELETE /api/cart/clear.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.carts.Clear(c.Context(), identity.UserID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *CartHandler) respondWithCart(c *fiber.Ctx, userID int64) error {
	lines, err := h.carts.List(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromCartLines(lines)})
}

func queryBookID(c *fiber.Ctx) (int64, error) {
	bookID, err := strconv.ParseInt(c.Query("bookId"), 10, 64)
	if err != nil || bookID <= 0 {
		return 0, apperrors.NewValidationError("invalid bookId", map[string]any{"bookId": "must be a positive integer"})
	}
	return bookID, nil
}
