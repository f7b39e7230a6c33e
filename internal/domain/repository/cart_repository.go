// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"mart/internal/domain/entity"
	"mart/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a user has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartLineNotFound is returned when a cart has no line for the requested product/variant.
	ErrCartLineNotFound = errors.New("cart line not found")
)

// CartRepository defines the interface for cart-related database operations.
// The cart aggregate is exclusively owned by its user; implementations must
// enforce one cart per user.
type CartRepository interface {
	// CreateCart persists a new empty cart for the user.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// FindCartByUser retrieves the user's cart with its lines and applied
	// coupon snapshot. Returns ErrCartNotFound when the user has no cart.
	FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// CreateLine appends a new line to the cart.
	CreateLine(ctx context.Context, cartID uuid.UUID, line *entity.CartLine) error

	// UpdateLineQuantity overwrites the quantity of an existing line.
	UpdateLineQuantity(ctx context.Context, lineID uuid.UUID, quantity int) error

	// DeleteLine removes one line. Returns ErrCartLineNotFound when the line
	// does not exist.
	DeleteLine(ctx context.Context, lineID uuid.UUID) error

	// DeleteAllLines removes every line of the cart.
	DeleteAllLines(ctx context.Context, cartID uuid.UUID) error

	// CountLines returns the number of lines in the cart.
	CountLines(ctx context.Context, cartID uuid.UUID) (int64, error)

	// SetAppliedCoupon overwrites the cart's applied coupon snapshot.
	// The storage layer holds at most one snapshot per cart.
	SetAppliedCoupon(ctx context.Context, cartID uuid.UUID, coupon *entity.AppliedCoupon) error

	// ClearAppliedCoupon removes the cart's applied coupon snapshot if any.
	ClearAppliedCoupon(ctx context.Context, cartID uuid.UUID) error
}
