// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mart/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for cart-related business operations.
type CartUsecase interface {
	// GetCart returns the user's cart with its pricing quote, creating the
	// empty cart lazily.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)

	// AddItem puts quantity units of a product variant into the cart. A line
	// for the same (product, weight option) pair accumulates; the call is
	// deliberately additive, not idempotent.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddItemInput) (*CartMutationOutput, error)

	// SetQuantity overwrites a line's quantity. Quantity 0 removes the line.
	SetQuantity(ctx context.Context, userID uuid.UUID, input *SetQuantityInput) (*CartMutationOutput, error)

	// RemoveItem deletes the line for the (product, weight option) pair.
	RemoveItem(ctx context.Context, userID uuid.UUID, input *RemoveItemInput) (*CartMutationOutput, error)

	// Clear empties the cart and unconditionally clears the coupon state.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// --- Input DTOs ---

// AddItemInput defines the data required to add a cart line.
type AddItemInput struct {
	ProductID    uuid.UUID `json:"product_id" validate:"required"`
	WeightOption *string   `json:"weight_option,omitempty"`
	Quantity     int       `json:"quantity" validate:"required,min=1"`
	Price        float64   `json:"price" validate:"min=0"`
}

// SetQuantityInput defines the data required to overwrite a line quantity.
type SetQuantityInput struct {
	ProductID    uuid.UUID `json:"product_id" validate:"required"`
	WeightOption *string   `json:"weight_option,omitempty"`
	Quantity     int       `json:"quantity" validate:"min=0"`
}

// RemoveItemInput identifies the line to delete.
type RemoveItemInput struct {
	ProductID    uuid.UUID `json:"product_id" validate:"required"`
	WeightOption *string   `json:"weight_option,omitempty"`
}

// --- Output DTOs ---

// CartOutput is the read-side view of a cart: the lines with their display
// snapshots plus the computed pricing quote.
type CartOutput struct {
	Items                 []*entity.CartLine    `json:"items"`
	Subtotal              float64               `json:"subtotal"`
	Discount              float64               `json:"discount"`
	SubtotalAfterDiscount float64               `json:"subtotal_after_discount"`
	AppliedCoupon         *entity.AppliedCoupon `json:"applied_coupon,omitempty"`
}

// CartMutationOutput reports the cart size after a mutating operation.
type CartMutationOutput struct {
	LineCount int64 `json:"line_count"`
}
