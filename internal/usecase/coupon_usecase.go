package usecase

import (
	"context"
	"time"

	"mart/internal/domain/entity"

	"github.com/google/uuid"
)

// CouponUsecase defines the interface for coupon-related business operations:
// the user-facing selection workflow and the administrative catalog surface.
type CouponUsecase interface {
	// SelectCoupon binds a coupon to the user's cart as a fresh snapshot,
	// silently replacing any previously applied one.
	SelectCoupon(ctx context.Context, userID uuid.UUID, input *SelectCouponInput) (*entity.AppliedCoupon, error)

	// UnselectCoupon clears the cart's applied snapshot if present and always
	// deletes the selected-coupon side record.
	UnselectCoupon(ctx context.Context, userID uuid.UUID) error

	// GetSelectedCoupon retrieves the user's current selection, as consumed
	// by the checkout flow.
	GetSelectedCoupon(ctx context.Context, userID uuid.UUID) (*entity.SelectedCoupon, error)

	// CreateCoupon adds a catalog coupon.
	CreateCoupon(ctx context.Context, input *CouponInput) (*entity.Coupon, error)

	// UpdateCoupon edits a catalog coupon.
	UpdateCoupon(ctx context.Context, couponID uuid.UUID, input *CouponInput) (*entity.Coupon, error)

	// DeleteCoupon soft-deletes a catalog coupon.
	DeleteCoupon(ctx context.Context, couponID uuid.UUID) error

	// GetCoupon retrieves one catalog coupon.
	GetCoupon(ctx context.Context, couponID uuid.UUID) (*entity.Coupon, error)

	// ListCoupons retrieves the non-deleted catalog, newest first.
	ListCoupons(ctx context.Context) ([]*entity.Coupon, error)
}

// --- Input DTOs ---

// SelectCouponInput identifies the coupon to apply, by ID or by code.
type SelectCouponInput struct {
	Coupon string `json:"coupon" validate:"required"`
}

// CouponInput defines the data required to create or edit a catalog coupon.
type CouponInput struct {
	Code                 string              `json:"code" validate:"required,min=3,max=64"`
	DiscountType         entity.DiscountType `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue        float64             `json:"discount_value" validate:"required,gt=0"`
	MinOrderValue        float64             `json:"min_order_value" validate:"gte=0"`
	MaxDiscount          float64             `json:"max_discount" validate:"gte=0"`
	UsageLimit           int                 `json:"usage_limit" validate:"gte=0"`
	UsageLimitPerUser    int                 `json:"usage_limit_per_user" validate:"gte=0"`
	ExpiryDate           *time.Time          `json:"expiry_date,omitempty"`
	IsActive             bool                `json:"is_active"`
	ApplicableProducts   []uuid.UUID         `json:"applicable_products,omitempty"`
	ApplicableCategories []string            `json:"applicable_categories,omitempty"`
}
