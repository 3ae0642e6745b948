package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/repository"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// AddressService manages user address books.
type AddressService struct {
	addresses repository.AddressRepository
	users     repository.UserRepository
}

// NewAddressService builds the service.
func NewAddressService(addresses repository.AddressRepository, users repository.UserRepository) *AddressService {
	return &AddressService{addresses: addresses, users: users}
}

// Add appends an address to the user's book. The user must exist.
func (s *AddressService) Add(ctx context.Context, userID int64, text string) (*domain.Address, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"userId": userID})
		}
		return nil, apperrors.NewDownstreamUnavailable("user store", err)
	}

	address := &domain.Address{UserID: userID, Address: text}
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, apperrors.NewDownstreamUnavailable("address store", err)
	}
	return address, nil
}

// ListByUser returns the user's address book.
func (s *AddressService) ListByUser(ctx context.Context, userID int64) ([]*domain.Address, error) {
	addresses, err := s.addresses.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDownstreamUnavailable("address store", err)
	}
	return addresses, nil
}

// Update replaces the text of an existing address.
func (s *AddressService) Update(ctx context.Context, addressID int64, text string) (*domain.Address, error) {
	address := &domain.Address{ID: addressID, Address: text}
	if err := s.addresses.Update(ctx, address); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("address", map[string]any{"id": addressID})
		}
		return nil, apperrors.NewDownstreamUnavailable("address store", err)
	}
	return address, nil
}

// Delete removes an address and returns the owner's remaining book.
func (s *AddressService) Delete(ctx context.Context, addressID int64) ([]*domain.Address, error) {
	address, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("address", map[string]any{"id": addressID})
		}
		return nil, apperrors.NewDownstreamUnavailable("address store", err)
	}

	if err := s.addresses.Delete(ctx, addressID); err != nil {
		return nil, apperrors.NewDownstreamUnavailable("address store", err)
	}
	return s.ListByUser(ctx, address.UserID)
}
