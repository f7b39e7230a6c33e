// Package stock gates cart quantities against a product variant's tracked
// inventory. The check is read-only: it never mutates stock.
package stock

import (
	"mart/internal/domain/entity"
)

// Result is the outcome of a stock check.
type Result struct {
	Allowed       bool // Whether the prospective quantity fits the available stock.
	Available     int  // Units available for the variant.
	MaxAdditional int  // Units that can still be added on top of the existing cart quantity, floored at 0.
}

// CheckAdd validates adding delta units on top of the existing cart quantity.
// Products or variants without a tracked stock entry are treated as
// unlimited and the check is skipped.
func CheckAdd(product *entity.Product, weightOption *string, existingQty, delta int) Result {
	available, tracked := lookup(product, weightOption)
	if !tracked {
		return unlimited()
	}

	return check(available, existingQty, existingQty+delta)
}

// CheckAbsolute validates overwriting the line quantity with the given value.
func CheckAbsolute(product *entity.Product, weightOption *string, existingQty, quantity int) Result {
	available, tracked := lookup(product, weightOption)
	if !tracked {
		return unlimited()
	}

	return check(available, existingQty, quantity)
}

func check(available, existingQty, prospective int) Result {
	maxAdditional := available - existingQty
	if maxAdditional < 0 {
		maxAdditional = 0
	}

	return Result{
		Allowed:       prospective <= available,
		Available:     available,
		MaxAdditional: maxAdditional,
	}
}

// unlimited is the result for untracked variants. Available and MaxAdditional
// are -1 so callers can tell "no limit" apart from "zero left".
func unlimited() Result {
	return Result{Allowed: true, Available: -1, MaxAdditional: -1}
}

// lookup finds the tracked unit count for the variant. The second return
// value is false when the product tracks no stock for the variant.
func lookup(product *entity.Product, weightOption *string) (int, bool) {
	if product == nil || len(product.Stocks) == 0 {
		return 0, false
	}

	key := ""
	if weightOption != nil {
		key = *weightOption
	}

	for _, s := range product.Stocks {
		if s.Weight == key {
			return s.Quantity, true
		}
	}

	return 0, false
}
