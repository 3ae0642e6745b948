package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bookstore/internal/domain"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// userStore is an in-memory UserRepository.
type userStore struct {
	users  []*domain.User
	nextID int64
}

func (s *userStore) Create(_ context.Context, user *domain.User) error {
	s.nextID++
	user.ID = s.nextID
	s.users = append(s.users, user)
	return nil
}

func (s *userStore) Update(_ context.Context, user *domain.User) error {
	for i, existing := range s.users {
		if existing.ID == user.ID {
			s.users[i] = user
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *userStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *userStore) List(_ context.Context) ([]*domain.User, error) {
	return s.users, nil
}

func (s *userStore) ExistsByPhoneNumber(_ context.Context, phone string) (bool, error) {
	for _, user := range s.users {
		if user.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *userStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range s.users {
		if user.Email != "" && user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func TestUserSaveRejectsDuplicatePhone(t *testing.T) {
	store := &userStore{}
	svc := NewUserService(store)

	_, err := svc.Save(context.Background(), "0987654321", true)
	require.NoError(t, err)

	user, err := svc.Save(context.Background(), "0987654321", true)
	assert.Nil(t, user)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestUserUpdateProfile(t *testing.T) {
	store := &userStore{}
	svc := NewUserService(store)

	created, err := svc.Save(context.Background(), "0987654321", true)
	require.NoError(t, err)

	dob := time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), created.ID, UpdateProfileInput{
		FullName: "Frank Herbert",
		Email:    "frank@example.com",
		DOB:      &dob,
	})
	require.NoError(t, err)
	assert.Equal(t, "Frank Herbert", updated.FullName)
	assert.Equal(t, "frank@example.com", updated.Email)
	require.NotNil(t, updated.DOB)
	assert.True(t, dob.Equal(*updated.DOB))

	stored, err := svc.ByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Frank Herbert", stored.FullName)
	assert.Equal(t, "0987654321", stored.PhoneNumber)
}

func TestUserUpdateRejectsEmailInUse(t *testing.T) {
	store := &userStore{}
	svc := NewUserService(store)

	first, err := svc.Save(context.Background(), "0987654321", true)
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), first.ID, UpdateProfileInput{
		FullName: "Frank Herbert",
		Email:    "frank@example.com",
	})
	require.NoError(t, err)

	second, err := svc.Save(context.Background(), "0912345678", true)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.ID, UpdateProfileInput{
		FullName: "Brian Herbert",
		Email:    "frank@example.com",
	})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, "email is already in use", domainErr.Message)
}

func TestUserUpdateKeepsOwnEmail(t *testing.T) {
	store := &userStore{}
	svc := NewUserService(store)

	created, err := svc.Save(context.Background(), "0987654321", true)
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), created.ID, UpdateProfileInput{
		FullName: "Frank Herbert",
		Email:    "frank@example.com",
	})
	require.NoError(t, err)

	// Re-submitting the same email must not trip the in-use check.
	updated, err := svc.Update(context.Background(), created.ID, UpdateProfileInput{
		FullName: "Franklin Herbert",
		Email:    "frank@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Franklin Herbert", updated.FullName)
}

func TestUserUpdateUnknownID(t *testing.T) {
	svc := NewUserService(&userStore{})

	_, err := svc.Update(context.Background(), 99, UpdateProfileInput{FullName: "Nobody"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestUserList(t *testing.T) {
	store := &userStore{}
	svc := NewUserService(store)

	_, err := svc.Save(context.Background(), "0987654321", true)
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), "0912345678", false)
	require.NoError(t, err)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
