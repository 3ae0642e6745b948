package dto

import "github.com/spec-kit/bookstore/internal/service"

// CartLineDTO is one cart row with resolved book details when available.
type CartLineDTO struct {
	BookID   int64    `json:"bookId"`
	Quantity int      `json:"quantity"`
	Book     *BookDTO `json:"book,omitempty"`
}

// FromCartLine maps a service cart line onto its wire form.
func FromCartLine(line *service.CartLine) CartLineDTO {
	out := CartLineDTO{
		BookID:   line.Item.BookID,
		Quantity: line.Item.Quantity,
	}
	if line.Book != nil {
		book := FromBook(line.Book)
		out.Book = &book
	}
	return out
}

// FromCartLines maps a list of cart lines.
func FromCartLines(lines []*service.CartLine) []CartLineDTO {
	out := make([]CartLineDTO, 0, len(lines))
	for _, line := range lines {
		out = append(out, FromCartLine(line))
	}
	return out
}
