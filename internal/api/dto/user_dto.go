package dto

import (
	"time"

	"github.com/spec-kit/bookstore/internal/domain"
)

// dateLayout is the wire form of date-only fields.
const dateLayout = "2006-01-02"

// SaveUserRequest is what the auth service posts after a successful sign-up.
type SaveUserRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Enabled     bool   `json:"enabled"`
}

// Validate returns field-level errors.
func (r SaveUserRequest) Validate() map[string]any {
	errs := map[string]any{}
	if !phonePattern.MatchString(r.PhoneNumber) {
		errs["phoneNumber"] = "invalid phone number"
	}
	return errs
}

// UpdateUserRequest carries the editable profile fields. The date of birth
// rides as a date-only string and must lie in the past.
type UpdateUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	DOB      string `json:"dob"`
}

// Validate returns field-level errors.
func (r UpdateUserRequest) Validate() map[string]any {
	errs := map[string]any{}
	if len(r.FullName) < 5 || len(r.FullName) > 50 {
		errs["fullName"] = "full name must be between 5 and 50 characters"
	}
	if !emailPattern.MatchString(r.Email) {
		errs["email"] = "invalid email"
	}
	if r.DOB != "" {
		dob, err := time.Parse(dateLayout, r.DOB)
		if err != nil {
			errs["dob"] = "date of birth must be in yyyy-mm-dd form"
		} else if !dob.Before(time.Now()) {
			errs["dob"] = "date of birth must be in the past"
		}
	}
	return errs
}

// ParseDOB returns the parsed date of birth, nil when absent. Call Validate
// first; a malformed value parses to nil here.
func (r UpdateUserRequest) ParseDOB() *time.Time {
	if r.DOB == "" {
		return nil
	}
	dob, err := time.Parse(dateLayout, r.DOB)
	if err != nil {
		return nil
	}
	return &dob
}

// AddAddressRequest appends one address to a user's book.
type AddAddressRequest struct {
	UserID  int64  `json:"userId"`
	Address string `json:"address"`
}

// Validate returns field-level errors.
func (r AddAddressRequest) Validate() map[string]any {
	errs := map[string]any{}
	if r.UserID <= 0 {
		errs["userId"] = "user id is required"
	}
	if r.Address == "" {
		errs["address"] = "address is required"
	}
	return errs
}

// UpdateAddressRequest replaces the text of an existing address.
type UpdateAddressRequest struct {
	AddressID  int64  `json:"addressId"`
	NewAddress string `json:"newAddress"`
}

// Validate returns field-level errors.
func (r UpdateAddressRequest) Validate() map[string]any {
	errs := map[string]any{}
	if r.AddressID <= 0 {
		errs["addressId"] = "address id is required"
	}
	if r.NewAddress == "" {
		errs["newAddress"] = "address is required"
	}
	return errs
}

// AddressDTO is the wire form of one address-book entry.
type AddressDTO struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"userId"`
	Address string `json:"address"`
}

// FromAddress maps a domain address onto its wire form.
func FromAddress(address *domain.Address) AddressDTO {
	return AddressDTO{ID: address.ID, UserID: address.UserID, Address: address.Address}
}

// FromAddresses maps a slice of addresses.
func FromAddresses(addresses []*domain.Address) []AddressDTO {
	out := make([]AddressDTO, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, FromAddress(address))
	}
	return out
}

// UserDTO is the wire form of a profile.
type UserDTO struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phoneNumber"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	DOB         string `json:"dob,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// FromUser maps a domain user onto its wire form.
func FromUser(user *domain.User) UserDTO {
	out := UserDTO{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
		FullName:    user.FullName,
		Email:       user.Email,
		Enabled:     user.Enabled,
	}
	if user.DOB != nil {
		out.DOB = user.DOB.Format(dateLayout)
	}
	return out
}
