package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spec-kit/bookstore/internal/config"
)

// ProfileClient calls the user-profile service over HTTP. Every call is
// single-shot with a bounded timeout; there are no retries.
type ProfileClient struct {
	baseURL string
	client  *http.Client
}

// NewProfileClient builds a client from configuration.
func NewProfileClient(cfg config.ProfileConfig) *ProfileClient {
	return &ProfileClient{
		baseURL: cfg.UserServiceURL,
		client:  &http.Client{Timeout: cfg.Timeout()},
	}
}

type saveUserRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Enabled     bool   `json:"enabled"`
}

// SaveUser asks the user service to create the profile row matching a new
// account. The caller treats failure as non-fatal: the account write has
// already committed and is never rolled back.
func (p *ProfileClient) SaveUser(ctx context.Context, phoneNumber string) error {
	body, err := json.Marshal(saveUserRequest{PhoneNumber: phoneNumber, Enabled: true})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/user/save", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("user service returned status %d", resp.StatusCode)
	}
	return nil
}
