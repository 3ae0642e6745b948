package domain

import "time"

// User is the profile record owned by the user service, created out-of-band
// when the auth service reports a new account.
type User struct {
	ID          int64
	PhoneNumber string
	FullName    string
	Email       string
	DOB         *time.Time
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Address is one delivery address in a user's address book. A user owns any
// number of them; deleting the user cascades to the rows.
type Address struct {
	ID        int64
	UserID    int64
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
