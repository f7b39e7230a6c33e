// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-user shopping cart aggregate. Every user owns at most one
// cart; it is created lazily on first use and survives as empty rather than
// being deleted.
type Cart struct {
	ID            uuid.UUID      // The unique identifier for the cart.
	UserID        uuid.UUID      // The owning user. One cart per user.
	Items         []*CartLine    // The cart lines, in insertion order.
	AppliedCoupon *AppliedCoupon // The applied coupon snapshot, nil when none is applied.
	CreatedAt     time.Time      // Timestamp of when this cart was created.
	UpdatedAt     time.Time      // Timestamp of the last modification.
}

// CartLine is one (product, weight option) entry in a cart. Price and the
// display fields are snapshots taken at add time and are not re-derived from
// the catalog on later reads.
type CartLine struct {
	ID           uuid.UUID // The unique identifier for the line.
	ProductID    uuid.UUID // The referenced catalog product.
	WeightOption *string   // The variant key, nil for the base variant.
	Quantity     int       // Unit count, >= 1 while the line exists.
	Price        float64   // Snapshot unit price at add time.
	ProductTitle string    // Snapshot product title for display.
	ProductImage string    // Snapshot product image URL for display.
	AddedAt      time.Time // Timestamp of when this line was added.
}

// FindLine returns the line matching the (productID, weightOption) pair, or
// nil when the cart has no such line.
func (c *Cart) FindLine(productID uuid.UUID, weightOption *string) *CartLine {
	for _, line := range c.Items {
		if line.ProductID == productID && sameWeightOption(line.WeightOption, weightOption) {
			return line
		}
	}

	return nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func sameWeightOption(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}
