package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spec-kit/bookstore/internal/domain"
)

// BookLookup resolves book details for cart lines. The cart service talks to
// the book service through this interface; tests substitute a stub.
type BookLookup interface {
	BookByID(ctx context.Context, id int64) (*domain.Book, error)
}

// BookClient is the HTTP implementation of BookLookup. Calls are single-shot
// with a bounded timeout.
type BookClient struct {
	baseURL string
	client  *http.Client
}

// NewBookClient builds a client for the book service.
func NewBookClient(baseURL string, timeout time.Duration) *BookClient {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &BookClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type bookResponse struct {
	Data struct {
		ID       int64   `json:"id"`
		Title    string  `json:"title"`
		Author   string  `json:"author"`
		Price    float64 `json:"price"`
		Quantity int     `json:"quantity"`
		ImageURL string  `json:"imageUrl"`
	} `json:"data"`
}

// BookByID fetches one book from the book service.
func (b *BookClient) BookByID(ctx context.Context, id int64) (*domain.Book, error) {
	url := fmt.Sprintf("%s/api/books/%d", b.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("book service returned status %d", resp.StatusCode)
	}

	var body bookResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &domain.Book{
		ID:       body.Data.ID,
		Title:    body.Data.Title,
		Author:   body.Data.Author,
		Price:    body.Data.Price,
		Quantity: body.Data.Quantity,
		ImageURL: body.Data.ImageURL,
	}, nil
}
