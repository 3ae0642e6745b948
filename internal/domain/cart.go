package domain

import "time"

// CartItem is one book held in a user's cart. Rows are always scoped by the
// user id the gateway propagated; the cart service never sees the token.
type CartItem struct {
	ID        int64
	UserID    int64
	BookID    int64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
