package dto

import "regexp"

// Vietnamese mobile numbers, local or +84 form.
var phonePattern = regexp.MustCompile(`^(0|\+84)(3[2-9]|5[2689]|7[0-9]|8[1-9]|9[0-9])[0-9]{7}$`)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SignUpRequest payload for account registration.
type SignUpRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	OTP         string `json:"otp"`
	Role        string `json:"role"`
}

// Validate returns field-level errors, empty when the payload is well formed.
func (r SignUpRequest) Validate() map[string]any {
	errs := map[string]any{}
	if !phonePattern.MatchString(r.PhoneNumber) {
		errs["phoneNumber"] = "invalid phone number"
	}
	if len(r.Password) < 8 {
		errs["password"] = "password must be at least 8 characters"
	}
	if r.OTP == "" {
		errs["otp"] = "verification code is required"
	}
	return errs
}

// SignInRequest payload for sign-in. Username is the account's email or
// phone number.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate returns field-level errors.
func (r SignInRequest) Validate() map[string]any {
	errs := map[string]any{}
	if r.Username == "" {
		errs["username"] = "username is required"
	}
	if r.Password == "" {
		errs["password"] = "password is required"
	}
	return errs
}

// SendOTPRequest payload for requesting a sign-up passcode.
type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// Validate returns field-level errors.
func (r SendOTPRequest) Validate() map[string]any {
	errs := map[string]any{}
	if !phonePattern.MatchString(r.PhoneNumber) {
		errs["phoneNumber"] = "invalid phone number"
	}
	return errs
}

// VerifyOTPRequest payload for checking a passcode without signing up.
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	OTP         string `json:"otp"`
}

// Validate returns field-level errors.
func (r VerifyOTPRequest) Validate() map[string]any {
	errs := map[string]any{}
	if !phonePattern.MatchString(r.PhoneNumber) {
		errs["phoneNumber"] = "invalid phone number"
	}
	if r.OTP == "" {
		errs["otp"] = "verification code is required"
	}
	return errs
}

// ChangePasswordRequest payload for authenticated password changes.
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate returns field-level errors.
func (r ChangePasswordRequest) Validate() map[string]any {
	errs := map[string]any{}
	if r.OldPassword == "" {
		errs["oldPassword"] = "current password is required"
	}
	if len(r.NewPassword) < 8 {
		errs["newPassword"] = "password must be at least 8 characters"
	}
	if r.NewPassword != r.ConfirmPassword {
		errs["confirmPassword"] = "passwords do not match"
	}
	return errs
}

// ForgotPasswordRequest payload for OTP-backed password recovery.
type ForgotPasswordRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// Validate returns field-level errors.
func (r ForgotPasswordRequest) Validate() map[string]any {
	errs := map[string]any{}
	if !phonePattern.MatchString(r.PhoneNumber) {
		errs["phoneNumber"] = "invalid phone number"
	}
	if r.OTP == "" {
		errs["otp"] = "verification code is required"
	}
	if len(r.NewPassword) < 8 {
		errs["newPassword"] = "password must be at least 8 characters"
	}
	return errs
}

// SignInResponse mirrors the sign-in success body.
type SignInResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}
