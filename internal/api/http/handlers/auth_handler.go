package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore/internal/api/dto"
	"github.com/spec-kit/bookstore/internal/service"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// OTPProvider issues and checks one-time codes. Satisfied by
// service.OTPService.
type OTPProvider interface {
	Send(ctx context.Context, phoneNumber string) error
	Verify(ctx context.Context, phoneNumber, code string) (bool, error)
}

// AuthHandler exposes the account endpoints of the auth service.
type AuthHandler struct {
	accounts *service.AccountService
	otp      OTPProvider
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(accounts *service.AccountService, otp OTPProvider) *AuthHandler {
	return &AuthHandler{accounts: accounts, otp: otp}
}

// SignUp handles POST /api/auth/sign-up.
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs)
	}

	account, err := h.accounts.SignUp(c.Context(), service.SignUpInput{
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		OTP:         req.OTP,
		Role:        req.Role,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status":  http.StatusCreated,
		"message": "Account created successfully!",
		"data": fiber.Map{
			"id":          account.ID,
			"phoneNumber": account.PhoneNumber,
			"role":        account.Role,
		},
	})
}

// SignIn handles POST /api/auth/sign-in. Account-not-found and bad-password
// both collapse to the same 401 body; the distinction stays in the service
// logs.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs)
	}

	result, err := h.accounts.SignIn(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) || errors.Is(err, service.ErrBadCredentials) {
			return apperrors.NewUnauthorized("invalid credentials")
		}
		return err
	}

	return c.JSON(dto.SignInResponse{
		Success: true,
		Message: "signed in",
		Token:   result.Token,
		Role:    result.Role,
	})
}

// SendOTP handles POST /api/auth/send-otp.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req dto.SendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs)
	}

	exists, err := h.accounts.ExistsByPhoneNumber(c.Context(), req.PhoneNumber)
	if err != nil {
		return apperrors.NewDownstreamUnavailable("account store", err)
	}
	if exists {
		return apperrors.NewValidationError("phone number already registered",
			map[string]any{"phoneNumber": "phone number already registered"})
	}

	if err := h.otp.Send(c.Context(), req.PhoneNumber); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  http.StatusOK,
		"message": "OTP sent successfully!",
	})
}

// ResendOTP handles POST /api/auth/resend-otp. Unlike SendOTP it skips the
// registered-phone check: the caller is mid sign-up and just lost the code.
func (h *AuthHandler) ResendOTP(c *fiber.Ctx) error {
	var req dto.SendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs)
	}

	if err := h.otp.Send(c.Context(), req.PhoneNumber); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  http.StatusOK,
		"message": "OTP resent successfully!",
	})
}

// VerifyOTP handles POST /api/auth/verify-otp.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs)
	}

	ok, err := h.otp.Verify(c.Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewValidationError("invalid verification code",
			map[string]any{"otp": "invalid verification code"})
	}
	return c.JSON(fiber.Map{
		"status":  http.StatusOK,
		"message": "OTP verified",
	})
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs)
	}

	if err := h.accounts.ForgotPassword(c.Context(), req.PhoneNumber, req.OTP, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  http.StatusOK,
		"message": "password reset",
	})
}

// ChangePassword handles POST /api/auth/change-password. The subject comes
// from the verified token, never from the request body.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	subject := SubjectFromContext(c)
	if subject == "" {
		return apperrors.NewUnauthorized("missing token")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs)
	}

	if err := h.accounts.ChangePassword(c.Context(), subject, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  http.StatusOK,
		"message": "password changed",
	})
}
