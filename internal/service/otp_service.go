package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore/internal/config"
	"github.com/spec-kit/bookstore/internal/persistence"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// devOTPCode is what dev mode always issues, so local sign-up works without
// an SMS provider.
const devOTPCode = "123456"

// SMSSender delivers a one-time passcode to a phone number. The production
// implementation wraps the external SMS provider and lives at the deployment
// boundary; this package only depends on the interface.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, code string) error
}

// LogSender is the dev-mode sender: it logs the code instead of sending it.
type LogSender struct {
	Logger *zap.Logger
}

func (s *LogSender) Send(_ context.Context, phoneNumber, code string) error {
	s.Logger.Info("dev otp issued", zap.String("phone", phoneNumber), zap.String("code", code))
	return nil
}

// OTPService issues and verifies sign-up passcodes. Codes live in redis under
// the normalized phone number and expire on their own; verification consumes
// the code.
type OTPService struct {
	redis  *persistence.Redis
	sender SMSSender
	logger *zap.Logger
	ttl    time.Duration
	dev    bool
}

// NewOTPService builds the service.
func NewOTPService(cfg config.OTPConfig, store *persistence.Redis, sender SMSSender, logger *zap.Logger) *OTPService {
	return &OTPService{
		redis:  store,
		sender: sender,
		logger: logger,
		ttl:    cfg.TTL(),
		dev:    cfg.DevMode,
	}
}

// Send generates a code for the phone number, stores it with expiry and hands
// it to the SMS sender.
func (s *OTPService) Send(ctx context.Context, phoneNumber string) error {
	normalized, err := NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), map[string]any{"phoneNumber": phoneNumber})
	}

	code := devOTPCode
	if !s.dev {
		code, err = generateCode()
		if err != nil {
			return apperrors.NewInternalError(err)
		}
	}

	if err := s.redis.Client.Set(ctx, otpKey(normalized), code, s.ttl).Err(); err != nil {
		return apperrors.NewDownstreamUnavailable("otp store", err)
	}

	if err := s.sender.Send(ctx, normalized, code); err != nil {
		return apperrors.NewDownstreamUnavailable("sms provider", err)
	}
	return nil
}

// Verify compares the presented code and consumes it on success.
func (s *OTPService) Verify(ctx context.Context, phoneNumber, code string) (bool, error) {
	normalized, err := NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return false, apperrors.NewValidationError(err.Error(), map[string]any{"phoneNumber": phoneNumber})
	}

	stored, err := s.redis.Client.Get(ctx, otpKey(normalized)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewDownstreamUnavailable("otp store", err)
	}

	if stored != code {
		return false, nil
	}

	_ = s.redis.Client.Del(ctx, otpKey(normalized)).Err()
	return true, nil
}

func otpKey(phoneNumber string) string {
	return "otp:" + phoneNumber
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// NormalizePhoneNumber maps local numbers onto the +84 country form.
func NormalizePhoneNumber(phoneNumber string) (string, error) {
	trimmed := strings.TrimSpace(phoneNumber)
	switch {
	case strings.HasPrefix(trimmed, "+84"):
		return trimmed, nil
	case strings.HasPrefix(trimmed, "0") && len(trimmed) > 1:
		return "+84" + trimmed[1:], nil
	default:
		return "", fmt.Errorf("invalid phone number format: %s", phoneNumber)
	}
}
