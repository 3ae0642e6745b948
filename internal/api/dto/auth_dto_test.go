package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhonePattern(t *testing.T) {
	valid := []string{"0987654321", "+84987654321", "0329999999", "0521234567"}
	invalid := []string{"", "987654321", "09876", "0187654321", "+1987654321", "0987654321x"}

	for _, phone := range valid {
		assert.True(t, phonePattern.MatchString(phone), "expected valid: %s", phone)
	}
	for _, phone := range invalid {
		assert.False(t, phonePattern.MatchString(phone), "expected invalid: %s", phone)
	}
}

func TestSignUpRequestValidate(t *testing.T) {
	ok := SignUpRequest{PhoneNumber: "0987654321", Password: "Secret!23", OTP: "123456"}
	assert.Empty(t, ok.Validate())

	bad := SignUpRequest{PhoneNumber: "12345", Password: "short", OTP: ""}
	errs := bad.Validate()
	assert.Contains(t, errs, "phoneNumber")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "otp")
}

func TestSignInRequestValidate(t *testing.T) {
	assert.Empty(t, SignInRequest{Username: "0987654321", Password: "x"}.Validate())

	errs := SignInRequest{}.Validate()
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "password")
}

func TestChangePasswordRequestValidate(t *testing.T) {
	ok := ChangePasswordRequest{OldPassword: "old", NewPassword: "NewSecret!45", ConfirmPassword: "NewSecret!45"}
	assert.Empty(t, ok.Validate())

	mismatch := ChangePasswordRequest{OldPassword: "old", NewPassword: "NewSecret!45", ConfirmPassword: "other"}
	assert.Contains(t, mismatch.Validate(), "confirmPassword")
}
