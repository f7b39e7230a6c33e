package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressFlag is the closed set of exclusive per-owner address markers.
// Each flag obeys single-active semantics: among a user's non-deleted
// addresses at most one carries the flag.
type AddressFlag string

const (
	// FlagDefault marks the shipping default address.
	FlagDefault AddressFlag = "default"
	// FlagPrimary marks the primary address, independent of the default.
	FlagPrimary AddressFlag = "primary"
)

// Valid reports whether the flag is one of the known kinds.
func (f AddressFlag) Valid() bool {
	switch f {
	case FlagDefault, FlagPrimary:
		return true
	default:
		return false
	}
}

// Address is one entry in a user's address book.
type Address struct {
	ID          uuid.UUID // The unique identifier for the address.
	UserID      uuid.UUID // The owning user.
	Label       string    // A user-defined label, e.g., "Home", "Office".
	FullAddress string    // The full, human-readable street address.
	Phone       string    // Contact phone number, 10 digits.
	Pincode     string    // Postal code, 6 digits.
	IsDefault   bool      // Shipping default. At most one per user.
	IsPrimary   bool      // Primary address. At most one per user, independent of IsDefault.
	CreatedAt   time.Time // Timestamp of when this address was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
