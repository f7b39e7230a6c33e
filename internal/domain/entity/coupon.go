package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiscountType is the closed set of discount kinds a coupon can carry.
type DiscountType string

const (
	// DiscountPercentage discounts a percentage of the applicable total.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed discounts a fixed amount.
	DiscountFixed DiscountType = "fixed"
)

// Valid reports whether the discount type is one of the known kinds.
func (t DiscountType) Valid() bool {
	switch t {
	case DiscountPercentage, DiscountFixed:
		return true
	default:
		return false
	}
}

// Coupon is a shared catalog entity describing a promotion. Carts reference
// coupons by value through AppliedCoupon snapshots, never by live pointer, so
// later catalog edits do not retroactively change an applied discount.
type Coupon struct {
	ID                   uuid.UUID    // The unique identifier for the coupon.
	Code                 string       // Unique redemption code, normalized upper case.
	DiscountType         DiscountType // Kind of discount.
	DiscountValue        float64      // Percentage (0,100] or fixed amount, > 0.
	MinOrderValue        float64      // Minimum cart subtotal required, 0 = none.
	MaxDiscount          float64      // Upper bound on the computed discount, 0 = none.
	UsageLimit           int          // Total redemption budget, 0 = unlimited.
	UsageLimitPerUser    int          // Per-user redemption budget, 0 = unlimited.
	ExpiryDate           *time.Time   // Expiry instant, nil = never expires.
	IsActive             bool         // Administrative on/off switch.
	ApplicableProducts   []uuid.UUID  // Product scope, empty = whole cart.
	ApplicableCategories []string     // Category scope, informational here.
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Expired reports whether the coupon's expiry date is set and in the past.
func (c *Coupon) Expired(now time.Time) bool {
	return c.ExpiryDate != nil && c.ExpiryDate.Before(now)
}

// NormalizeCouponCode upper-cases and trims a redemption code so lookups and
// uniqueness checks are case-insensitive.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// AppliedCoupon is the immutable copy of a coupon's terms taken at selection
// time and stored on the cart.
type AppliedCoupon struct {
	CouponID          uuid.UUID   // The source catalog coupon.
	Code              string      // Snapshot of the redemption code.
	DiscountType      DiscountType
	DiscountValue     float64
	AppliedToProducts []uuid.UUID // Product scope at application time, empty = whole cart.
	Discount          float64     // Precomputed absolute discount. When > 0 it overrides recomputation.
	AppliedAt         time.Time   // Timestamp of selection.
}

// SelectedCoupon is the denormalized one-row-per-user pointer to the coupon a
// user currently has selected. It mirrors the cart's applied snapshot for the
// checkout flow and must never outlive it.
type SelectedCoupon struct {
	UserID    uuid.UUID // The owning user. One selected coupon per user.
	CouponID  uuid.UUID
	Code      string
	AppliedAt time.Time
}
