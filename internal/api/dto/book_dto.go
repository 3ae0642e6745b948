package dto

import "github.com/spec-kit/bookstore/internal/domain"

// BookDTO is the wire form of a catalog entry.
type BookDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// FromBook maps a domain book onto its wire form.
func FromBook(book *domain.Book) BookDTO {
	return BookDTO{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Price:       book.Price,
		Quantity:    book.Quantity,
		Description: book.Description,
		ImageURL:    book.ImageURL,
	}
}

// PagedBooksDTO is one page of the catalog.
type PagedBooksDTO struct {
	Content       []BookDTO `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"totalElements"`
}
