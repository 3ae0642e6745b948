package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountCreated  EventType = "account_created"
	EventPasswordChanged EventType = "password_changed"
)

// Event represents a domain event emitted by the auth service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountCreatedPayload carries what the user-profile service needs to create
// the matching profile row.
type AccountCreatedPayload struct {
	AccountID   int64  `json:"account_id"`
	PhoneNumber string `json:"phone_number"`
	Enabled     bool   `json:"enabled"`
}

// PasswordChangedPayload payload.
type PasswordChangedPayload struct {
	AccountID int64 `json:"account_id"`
}
