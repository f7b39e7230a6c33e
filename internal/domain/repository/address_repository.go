package repository

import (
	"context"

	"mart/internal/domain/entity"
	"mart/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found or soft-deleted.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// CreateAddress persists a new address for a user.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID, excluding
	// soft-deleted rows. Returns ErrAddressNotFound otherwise.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByUser retrieves all non-deleted addresses for a user,
	// default first.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// CountAddressesByUser returns the number of non-deleted addresses a user has.
	CountAddressesByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress soft-deletes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// SetExclusiveFlag makes the target address the only one of the user's
	// non-deleted addresses carrying the flag. Implementations must perform
	// this as a single atomic write: the flag becomes true on the target and
	// false everywhere else, with no interleaving window in between.
	SetExclusiveFlag(ctx context.Context, userID, addressID uuid.UUID, flag entity.AddressFlag) error

	// UnsetFlag clears the flag on the target address only; sibling rows are
	// untouched.
	UnsetFlag(ctx context.Context, userID, addressID uuid.UUID, flag entity.AddressFlag) error
}
