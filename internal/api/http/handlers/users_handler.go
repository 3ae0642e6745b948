package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore/internal/api/dto"
	"github.com/spec-kit/bookstore/internal/service"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// UsersHandler exposes the profile and address-book endpoints of the user
// service.
type UsersHandler struct {
	users     *service.UserService
	addresses *service.AddressService
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(users *service.UserService, addresses *service.AddressService) *UsersHandler {
	return &UsersHandler{users: users, addresses: addresses}
}

// Save handles POST /api/user/save, called by the auth service after a
// successful sign-up.
func (h *UsersHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs)
	}

	user, err := h.users.Save(c.Context(), req.PhoneNumber, req.Enabled)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status":  http.StatusCreated,
		"message": "User created successfully!",
		"data":    dto.FromUser(user),
	})
}

// GetByID handles GET /api/user/:id.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}

	user, err := h.users.ByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromUser(user)})
}

// List handles GET /api/user/all.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.UserDTO, 0, len(users))
	for _, user := range users {
		out = append(out, dto.FromUser(user))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Update handles PUT /api/user/:id/update.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs)
	}

	user, err := h.users.Update(c.Context(), id, service.UpdateProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
		DOB:      req.ParseDOB(),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User updated successfully", "data": dto.FromUser(user)})
}

// AddAddress handles POST /api/user/add-address.
func (h *UsersHandler) AddAddress(c *fiber.Ctx) error {
	var req dto.AddAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs)
	}

	address, err := h.addresses.Add(c.Context(), req.UserID, req.Address)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Address added successfully",
		"data":    dto.FromAddress(address),
	})
}

// Addresses handles GET /api/user/:id/addresses.
func (h *UsersHandler) Addresses(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}

	addresses, err := h.addresses.ListByUser(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromAddresses(addresses)})
}

// UpdateAddress handles POST /api/user/update-address.
func (h *UsersHandler) UpdateAddress(c *fiber.Ctx) error {
	var req dto.UpdateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs)
	}

	address, err := h.addresses.Update(c.Context(), req.AddressID, req.NewAddress)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Address updated successfully",
		"data":    dto.FromAddress(address),
	})
}

// DeleteAddress handles DELETE /api/user/delete-address/:id and echoes the
// owner's remaining addresses.
func (h *UsersHandler) DeleteAddress(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid address id", nil)
	}

	remaining, err := h.addresses.Delete(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Address deleted successfully",
		"data":    dto.FromAddresses(remaining),
	})
}
