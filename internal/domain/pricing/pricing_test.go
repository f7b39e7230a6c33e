package pricing

import (
	"testing"

	"mart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCompute_EmptyCart(t *testing.T) {
	quote := Compute(nil, nil)

	assert.Zero(t, quote.Subtotal)
	assert.Zero(t, quote.Discount)
	assert.Zero(t, quote.SubtotalAfterDiscount)
}

func TestCompute_NoCoupon(t *testing.T) {
	lines := []*entity.CartLine{
		{ProductID: uuid.New(), Quantity: 2, Price: 150},
		{ProductID: uuid.New(), Quantity: 1, Price: 99.5},
	}

	quote := Compute(lines, nil)

	assert.InDelta(t, 399.5, quote.Subtotal, 0.001)
	assert.Zero(t, quote.Discount)
	assert.InDelta(t, 399.5, quote.SubtotalAfterDiscount, 0.001)
}

func TestCompute_PercentageRoundsHalfUp(t *testing.T) {
	lines := []*entity.CartLine{
		{ProductID: uuid.New(), Quantity: 2, Price: 57.5},
	}
	coupon := &entity.AppliedCoupon{
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: 10,
	}

	quote := Compute(lines, coupon)

	// 10% of 115 is 11.5, rounded up to the next whole unit.
	assert.InDelta(t, 115.0, quote.Subtotal, 0.001)
	assert.InDelta(t, 12.0, quote.Discount, 0.001)
	assert.InDelta(t, 103.0, quote.SubtotalAfterDiscount, 0.001)
}

func TestCompute_FixedDiscount(t *testing.T) {
	lines := []*entity.CartLine{
		{ProductID: uuid.New(), Quantity: 3, Price: 100},
	}
	coupon := &entity.AppliedCoupon{
		DiscountType:  entity.DiscountFixed,
		DiscountValue: 50,
	}

	quote := Compute(lines, coupon)

	assert.InDelta(t, 300.0, quote.Subtotal, 0.001)
	assert.InDelta(t, 50.0, quote.Discount, 0.001)
	assert.InDelta(t, 250.0, quote.SubtotalAfterDiscount, 0.001)
}

func TestCompute_DiscountClampedToSubtotal(t *testing.T) {
	lines := []*entity.CartLine{
		{ProductID: uuid.New(), Quantity: 1, Price: 80},
	}
	coupon := &entity.AppliedCoupon{
		DiscountType:  entity.DiscountFixed,
		DiscountValue: 500,
	}

	quote := Compute(lines, coupon)

	assert.InDelta(t, 80.0, quote.Discount, 0.001)
	assert.Zero(t, quote.SubtotalAfterDiscount)
}

func TestCompute_ScopedCouponDiscountsApplicableLinesOnly(t *testing.T) {
	inScope := uuid.New()
	lines := []*entity.CartLine{
		{ProductID: inScope, Quantity: 2, Price: 100},
		{ProductID: uuid.New(), Quantity: 1, Price: 300},
	}
	coupon := &entity.AppliedCoupon{
		DiscountType:      entity.DiscountPercentage,
		DiscountValue:     50,
		AppliedToProducts: []uuid.UUID{inScope},
	}

	quote := Compute(lines, coupon)

	// Half of the 200 in scope, not half of the 500 subtotal.
	assert.InDelta(t, 500.0, quote.Subtotal, 0.001)
	assert.InDelta(t, 100.0, quote.Discount, 0.001)
	assert.InDelta(t, 400.0, quote.SubtotalAfterDiscount, 0.001)
}

func TestCompute_ScopedCouponWithNoApplicableLines(t *testing.T) {
	lines := []*entity.CartLine{
		{ProductID: uuid.New(), Quantity: 1, Price: 250},
	}
	coupon := &entity.AppliedCoupon{
		DiscountType:      entity.DiscountPercentage,
		DiscountValue:     10,
		AppliedToProducts: []uuid.UUID{uuid.New()},
	}

	quote := Compute(lines, coupon)

	assert.Zero(t, quote.Discount)
	assert.InDelta(t, 250.0, quote.SubtotalAfterDiscount, 0.001)
}

func TestCompute_PrecomputedDiscountOverridesRecomputation(t *testing.T) {
	lines := []*entity.CartLine{
		{ProductID: uuid.New(), Quantity: 1, Price: 200},
	}
	coupon := &entity.AppliedCoupon{
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: 10,
		Discount:      75,
	}

	quote := Compute(lines, coupon)

	assert.InDelta(t, 75.0, quote.Discount, 0.001)
	assert.InDelta(t, 125.0, quote.SubtotalAfterDiscount, 0.001)
}

func TestCompute_UnknownDiscountTypeIsIgnored(t *testing.T) {
	lines := []*entity.CartLine{
		{ProductID: uuid.New(), Quantity: 1, Price: 200},
	}
	coupon := &entity.AppliedCoupon{
		DiscountType:  entity.DiscountType("bogus"),
		DiscountValue: 10,
	}

	quote := Compute(lines, coupon)

	assert.Zero(t, quote.Discount)
	assert.InDelta(t, 200.0, quote.SubtotalAfterDiscount, 0.001)
}
