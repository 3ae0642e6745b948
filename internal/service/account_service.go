package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore/internal/auth"
	"github.com/spec-kit/bookstore/internal/config"
	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/events"
	"github.com/spec-kit/bookstore/internal/repository"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// Sign-in failure kinds. The distinction exists for logging only; handlers
// present one generic message for both.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrBadCredentials  = errors.New("bad credentials")
)

// OTPVerifier proves phone ownership with a one-time passcode. *OTPService
// is the production implementation.
type OTPVerifier interface {
	Verify(ctx context.Context, phoneNumber, code string) (bool, error)
}

// AccountService coordinates sign-up, sign-in and password changes. It is
// stateless across requests; issuance never mutates account state.
type AccountService struct {
	accounts   repository.AccountRepository
	otp        OTPVerifier
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// AccountDependencies encapsulates requirements for the account service.
type AccountDependencies struct {
	AccountRepo repository.AccountRepository
	OTP         OTPVerifier
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewAccountService builds the service.
func NewAccountService(cfg config.Config, deps AccountDependencies) *AccountService {
	return &AccountService{
		accounts:   deps.AccountRepo,
		otp:        deps.OTP,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// SignInResult is what a successful sign-in hands back to the client.
type SignInResult struct {
	Token string
	Role  string
}

// SignIn verifies the credential pair and issues a signed identity token.
// The identifier matches the account's email or phone number.
func (s *AccountService) SignIn(ctx context.Context, identifier, password string) (*SignInResult, error) {
	account, err := s.lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			// Burn the bcrypt cost so lookup misses time like mismatches.
			_ = auth.CompareConstantCost(password)
			s.logger.Info("sign-in failed", zap.String("identifier", identifier), zap.String("reason", "account not found"))
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		s.logger.Info("sign-in failed", zap.String("identifier", identifier), zap.String("reason", "bad password"))
		return nil, ErrBadCredentials
	}

	roles := account.Roles()
	token, err := s.tokenMgr.Issue(identifier, account.ID, roles, time.Now())
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	return &SignInResult{Token: token, Role: auth.PrimaryRole(roles)}, nil
}

// SignUpInput carries the validated sign-up fields.
type SignUpInput struct {
	PhoneNumber string
	Password    string
	OTP         string
	Role        string
}

// SignUp verifies the passcode, creates the account and reports it to the
// user-profile service. The profile notification rides on the event
// dispatcher and is best-effort: a failure after the account write is logged
// and swallowed, never rolled back.
func (s *AccountService) SignUp(ctx context.Context, input SignUpInput) (*domain.Account, error) {
	exists, err := s.accounts.ExistsByPhoneNumber(ctx, input.PhoneNumber)
	if err != nil {
		return nil, apperrors.NewDownstreamUnavailable("account store", err)
	}
	if exists {
		return nil, apperrors.NewValidationError("phone number already registered",
			map[string]any{"phoneNumber": "phone number already registered"})
	}

	ok, err := s.otp.Verify(ctx, input.PhoneNumber, input.OTP)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewValidationError("invalid verification code",
			map[string]any{"otp": "invalid verification code"})
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	role := input.Role
	if role == "" {
		role = "USER"
	}
	account := &domain.Account{
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, apperrors.NewDownstreamUnavailable("account store", err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAccountCreated,
		Timestamp: time.Now(),
		Payload: events.AccountCreatedPayload{
			AccountID:   account.ID,
			PhoneNumber: account.PhoneNumber,
			Enabled:     true,
		},
	})

	return account, nil
}

// ChangePassword verifies the current password before storing the new hash.
// The identifier comes from the verified token, never from the request body.
func (s *AccountService) ChangePassword(ctx context.Context, identifier, oldPassword, newPassword string) error {
	account, err := s.lookup(ctx, identifier)
	if err != nil {
		return err
	}

	if err := auth.ComparePassword(account.PasswordHash, oldPassword); err != nil {
		return apperrors.NewValidationError("current password is incorrect", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.accounts.UpdatePassword(ctx, account.ID, hash); err != nil {
		return apperrors.NewDownstreamUnavailable("account store", err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPasswordChanged,
		Timestamp: time.Now(),
		Payload:   events.PasswordChangedPayload{AccountID: account.ID},
	})
	return nil
}

// ForgotPassword resets a lost password after proving phone ownership with a
// fresh passcode.
func (s *AccountService) ForgotPassword(ctx context.Context, phoneNumber, otp, newPassword string) error {
	ok, err := s.otp.Verify(ctx, phoneNumber, otp)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewValidationError("invalid verification code",
			map[string]any{"otp": "invalid verification code"})
	}

	account, err := s.accounts.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("phone number is not registered",
				map[string]any{"phoneNumber": "phone number is not registered"})
		}
		return apperrors.NewDownstreamUnavailable("account store", err)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.accounts.UpdatePassword(ctx, account.ID, hash); err != nil {
		return apperrors.NewDownstreamUnavailable("account store", err)
	}
	return nil
}

// ExistsByPhoneNumber reports whether the phone number is registered.
func (s *AccountService) ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error) {
	return s.accounts.ExistsByPhoneNumber(ctx, phone)
}

// TokenManager exposes the underlying token manager for gateway wiring.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AccountService) lookup(ctx context.Context, identifier string) (*domain.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, identifier)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewDownstreamUnavailable("account store", err)
	}

	account, err = s.accounts.GetByPhoneNumber(ctx, identifier)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewDownstreamUnavailable("account store", err)
	}
	return nil, ErrAccountNotFound
}
