package domain

import "time"

// Account is the credential record owned by the auth service. The phone
// number is the primary handle; email is the optional secondary one. Both are
// unique and either works as the sign-in identifier.
type Account struct {
	ID           int64
	Email        string
	PhoneNumber  string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Roles returns the account's role set in authority form. An account with no
// stored role has an empty set; role-gated actions are then denied.
func (a *Account) Roles() []string {
	if a.Role == "" {
		return []string{}
	}
	return []string{"ROLE_" + a.Role}
}
