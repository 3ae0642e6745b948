package domain

import "time"

// Book is the catalog record owned by the book service.
type Book struct {
	ID          int64
	Title       string
	Author      string
	Price       float64
	Quantity    int
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
