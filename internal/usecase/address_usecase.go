package usecase

import (
	"context"

	"mart/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressUsecase defines the interface for address-book business operations,
// including the exclusive default/primary flag maintenance.
type AddressUsecase interface {
	// CreateAddress adds an address. A user's first address becomes both the
	// default and the primary one.
	CreateAddress(ctx context.Context, userID uuid.UUID, input *CreateAddressInput) (*entity.Address, error)

	// UpdateAddress edits an address the user owns.
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)

	// DeleteAddress soft-deletes an address the user owns.
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error

	// ListAddresses retrieves the user's non-deleted addresses, default first.
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// SetAddressFlag makes the target the user's only address carrying the
	// flag (default or primary).
	SetAddressFlag(ctx context.Context, userID, addressID uuid.UUID, flag entity.AddressFlag) (*entity.Address, error)

	// UnsetAddressFlag clears the flag on the target address only.
	UnsetAddressFlag(ctx context.Context, userID, addressID uuid.UUID, flag entity.AddressFlag) (*entity.Address, error)
}

// --- Input DTOs ---

// CreateAddressInput defines the data required to create an address.
type CreateAddressInput struct {
	Label       string `json:"label" validate:"required,max=100"`
	FullAddress string `json:"full_address" validate:"required"`
	Phone       string `json:"phone" validate:"required,len=10,numeric"`
	Pincode     string `json:"pincode" validate:"required,len=6,numeric"`
}

// UpdateAddressInput defines the data that can be edited on an address.
// Nil fields are left unchanged.
type UpdateAddressInput struct {
	Label       *string `json:"label,omitempty" validate:"omitempty,max=100"`
	FullAddress *string `json:"full_address,omitempty"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
	Pincode     *string `json:"pincode,omitempty" validate:"omitempty,len=6,numeric"`
}
