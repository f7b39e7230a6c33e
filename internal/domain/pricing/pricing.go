// Package pricing computes cart totals and promotional discounts. All
// functions are pure: they read the cart lines and the applied coupon
// snapshot and never touch storage.
package pricing

import (
	"mart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Quote is the monetary summary of a cart. Values are in the catalog's
// native currency unit.
type Quote struct {
	Subtotal              float64 `json:"subtotal"`
	Discount              float64 `json:"discount"`
	SubtotalAfterDiscount float64 `json:"subtotal_after_discount"`
}

// Compute derives the quote for the given lines and applied coupon snapshot.
//
// A positive precomputed snapshot Discount overrides recomputation; otherwise
// the discount is derived from the snapshot's type and value against the
// applicable total (the lines in AppliedToProducts, or the whole subtotal when
// the scope is empty). Percentage results are rounded half-up to a whole
// currency unit. The discount is clamped so it never exceeds the subtotal,
// even when computed against a narrower applicable total.
func Compute(lines []*entity.CartLine, coupon *entity.AppliedCoupon) Quote {
	subtotal := sumLines(lines, nil)

	discount := decimal.Zero
	if coupon != nil {
		discount = couponDiscount(lines, coupon, subtotal)
	}

	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	remainder := subtotal.Sub(discount)
	if remainder.IsNegative() {
		remainder = decimal.Zero
	}

	return Quote{
		Subtotal:              subtotal.InexactFloat64(),
		Discount:              discount.InexactFloat64(),
		SubtotalAfterDiscount: remainder.InexactFloat64(),
	}
}

func couponDiscount(lines []*entity.CartLine, coupon *entity.AppliedCoupon, subtotal decimal.Decimal) decimal.Decimal {
	// A precomputed positive discount is the source of truth, e.g. for
	// snapshots written with a pre-resolved absolute amount.
	if coupon.Discount > 0 {
		return decimal.NewFromFloat(coupon.Discount)
	}

	applicable := subtotal
	if len(coupon.AppliedToProducts) > 0 {
		applicable = sumLines(lines, coupon.AppliedToProducts)
	}

	switch coupon.DiscountType {
	case entity.DiscountPercentage:
		value := decimal.NewFromFloat(coupon.DiscountValue)

		return applicable.Mul(value).Div(oneHundred).Round(0)
	case entity.DiscountFixed:
		return decimal.NewFromFloat(coupon.DiscountValue)
	default:
		return decimal.Zero
	}
}

// sumLines totals price × quantity over the lines, restricted to the given
// product scope when it is non-empty.
func sumLines(lines []*entity.CartLine, scope []uuid.UUID) decimal.Decimal {
	inScope := func(line *entity.CartLine) bool {
		if len(scope) == 0 {
			return true
		}
		for _, id := range scope {
			if line.ProductID == id {
				return true
			}
		}

		return false
	}

	total := decimal.Zero
	for _, line := range lines {
		if !inScope(line) {
			continue
		}

		lineTotal := decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(lineTotal)
	}

	return total
}
