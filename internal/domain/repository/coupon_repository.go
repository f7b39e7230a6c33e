package repository

import (
	"context"

	"mart/internal/domain/entity"
	"mart/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when a coupon is not found or soft-deleted.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponCodeTaken is returned when another coupon already uses the code.
	ErrCouponCodeTaken = errors.New("coupon code already taken")
	// ErrSelectedCouponNotFound is returned when a user has no selected-coupon record.
	ErrSelectedCouponNotFound = errors.New("selected coupon not found")
)

// CouponRepository defines the interface for coupon catalog operations.
// The catalog is read-shared across users; writes come from the
// administrative surface only.
type CouponRepository interface {
	// CreateCoupon persists a new catalog coupon.
	CreateCoupon(ctx context.Context, coupon *entity.Coupon) error

	// FindCouponByID retrieves a coupon by its unique ID, excluding
	// soft-deleted rows. Returns ErrCouponNotFound otherwise.
	FindCouponByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// FindCouponByCode retrieves a coupon by its normalized code, excluding
	// soft-deleted rows. Returns ErrCouponNotFound otherwise.
	FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// ResolveCoupon finds a coupon by an identifier that is either the
	// coupon's ID or its redemption code. Callers never see which strategy
	// matched. Returns ErrCouponNotFound when neither resolves.
	ResolveCoupon(ctx context.Context, idOrCode string) (*entity.Coupon, error)

	// ListCoupons retrieves all non-deleted coupons, newest first.
	ListCoupons(ctx context.Context) ([]*entity.Coupon, error)

	// UpdateCoupon updates an existing coupon record.
	UpdateCoupon(ctx context.Context, coupon *entity.Coupon) error

	// DeleteCoupon soft-deletes a coupon by its ID.
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
}

// SelectedCouponRepository owns the denormalized one-row-per-user pointer to
// the coupon a user currently has selected.
type SelectedCouponRepository interface {
	// UpsertSelectedCoupon creates or replaces the user's selected-coupon record.
	UpsertSelectedCoupon(ctx context.Context, selected *entity.SelectedCoupon) error

	// FindSelectedCouponByUser retrieves the user's selected-coupon record.
	// Returns ErrSelectedCouponNotFound when none exists.
	FindSelectedCouponByUser(ctx context.Context, userID uuid.UUID) (*entity.SelectedCoupon, error)

	// DeleteSelectedCouponByUser removes the user's selected-coupon record.
	// Deleting an absent record is not an error.
	DeleteSelectedCouponByUser(ctx context.Context, userID uuid.UUID) error
}
