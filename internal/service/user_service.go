package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/repository"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// UserService owns profile records.
type UserService struct {
	users repository.UserRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Save creates a profile row for a newly registered phone number.
func (s *UserService) Save(ctx context.Context, phoneNumber string, enabled bool) (*domain.User, error) {
	exists, err := s.users.ExistsByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, apperrors.NewDownstreamUnavailable("user store", err)
	}
	if exists {
		return nil, apperrors.NewValidationError("phone number already registered",
			map[string]any{"phoneNumber": "phone number already registered"})
	}

	user := &domain.User{PhoneNumber: phoneNumber, Enabled: enabled}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewDownstreamUnavailable("user store", err)
	}
	return user, nil
}

// ByID looks up one profile.
func (s *UserService) ByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, apperrors.NewDownstreamUnavailable("user store", err)
	}
	return user, nil
}

// List returns every profile.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewDownstreamUnavailable("user store", err)
	}
	return users, nil
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	FullName string
	Email    string
	DOB      *time.Time
}

// Update rewrites the editable profile fields. The email must not belong to
// another user; phone number and enabled flag never change here.
func (s *UserService) Update(ctx context.Context, id int64, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != user.Email {
		taken, err := s.users.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, apperrors.NewDownstreamUnavailable("user store", err)
		}
		if taken {
			return nil, apperrors.NewValidationError("email is already in use",
				map[string]any{"email": "email is already in use"})
		}
	}

	user.FullName = input.FullName
	user.Email = input.Email
	user.DOB = input.DOB
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.NewDownstreamUnavailable("user store", err)
	}
	return user, nil
}
