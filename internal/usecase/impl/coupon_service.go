package impl

import (
	"context"
	"log/slog"
	"time"

	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	"mart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxPercentageValue = 100

// couponService implements the CouponUsecase interface.
type couponService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CouponUsecase {
	return &couponService{
		txManager: txManager,
		logger:    logger,
	}
}

// SelectCoupon binds a coupon to the user's cart as a fresh snapshot. A
// previously applied coupon is silently replaced; selection is exclusive by
// construction because the snapshot row is keyed by the cart.
func (srv *couponService) SelectCoupon(ctx context.Context, userID uuid.UUID, input *usecase.SelectCouponInput) (*entity.AppliedCoupon, error) {
	srv.logger.Info("Selecting coupon", "userID", userID, "coupon", input.Coupon)

	var snapshot *entity.AppliedCoupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Resolve by ID or code; soft-deleted coupons do not resolve.
		coupon, err := repoFactory.CouponRepo().ResolveCoupon(ctx, input.Coupon)
		if err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return errors.Wrap(domainerrors.ErrCouponNotFound, "coupon does not exist")
			}

			return errors.Wrap(err, "failed to resolve coupon")
		}

		// 2. Eligibility.
		if !coupon.IsActive {
			return errors.Wrap(domainerrors.ErrCouponInactive, "coupon is not active")
		}
		if coupon.Expired(time.Now()) {
			return errors.Wrap(domainerrors.ErrCouponExpired, "coupon expiry date has passed")
		}

		// 3. Bind the snapshot to the cart. Discount stays 0 here; the
		// pricing quote derives it on the next read. Scope starts empty,
		// meaning whole-cart.
		cart, err := getOrCreateCart(ctx, repoFactory, userID)
		if err != nil {
			return err
		}

		snapshot = &entity.AppliedCoupon{
			CouponID:      coupon.ID,
			Code:          coupon.Code,
			DiscountType:  coupon.DiscountType,
			DiscountValue: coupon.DiscountValue,
			AppliedAt:     time.Now(),
		}
		if err := repoFactory.CartRepo().SetAppliedCoupon(ctx, cart.ID, snapshot); err != nil {
			return errors.Wrap(err, "failed to set applied coupon")
		}

		// 4. Mirror the selection in the per-user side record for checkout.
		selected := &entity.SelectedCoupon{
			UserID:    userID,
			CouponID:  coupon.ID,
			Code:      coupon.Code,
			AppliedAt: snapshot.AppliedAt,
		}
		if err := repoFactory.SelectedCouponRepo().UpsertSelectedCoupon(ctx, selected); err != nil {
			return errors.Wrap(err, "failed to upsert selected coupon record")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to select coupon")
	}

	return snapshot, nil
}

// UnselectCoupon clears the cart's applied snapshot if present and deletes
// the selected-coupon side record regardless, so the record can never outlive
// the cart state.
func (srv *couponService) UnselectCoupon(ctx context.Context, userID uuid.UUID) error {
	srv.logger.Info("Unselecting coupon", "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, err := repoFactory.CartRepo().FindCartByUser(ctx, userID)
		switch {
		case err == nil:
			if err := repoFactory.CartRepo().ClearAppliedCoupon(ctx, cart.ID); err != nil {
				return errors.Wrap(err, "failed to clear applied coupon")
			}
		case errors.Is(err, repository.ErrCartNotFound):
			// No cart means no snapshot; the side record is still cleared below.
		default:
			return errors.Wrap(err, "failed to find cart")
		}

		if err := repoFactory.SelectedCouponRepo().DeleteSelectedCouponByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete selected coupon record")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to unselect coupon")
	}

	return nil
}

// GetSelectedCoupon retrieves the user's current selected-coupon record.
func (srv *couponService) GetSelectedCoupon(ctx context.Context, userID uuid.UUID) (*entity.SelectedCoupon, error) {
	srv.logger.Debug("Getting selected coupon", "userID", userID)

	var selected *entity.SelectedCoupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SelectedCouponRepo().FindSelectedCouponByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrSelectedCouponNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "no coupon selected")
			}

			return errors.Wrap(err, "failed to find selected coupon")
		}
		selected = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get selected coupon")
	}

	return selected, nil
}

// CreateCoupon adds a catalog coupon with a unique, upper-cased code.
func (srv *couponService) CreateCoupon(ctx context.Context, input *usecase.CouponInput) (*entity.Coupon, error) {
	srv.logger.Info("Creating coupon", "code", input.Code)

	if err := validateCouponTerms(input); err != nil {
		return nil, err
	}
	code := entity.NormalizeCouponCode(input.Code)

	var coupon *entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.CouponRepo()

		// 1. Reject duplicate codes up front.
		if _, err := couponRepo.FindCouponByCode(ctx, code); err == nil {
			return errors.Wrap(domainerrors.ErrCouponCodeExists, "code already in use")
		} else if !errors.Is(err, repository.ErrCouponNotFound) {
			return errors.Wrap(err, "failed to check coupon code")
		}

		coupon = &entity.Coupon{
			ID:                   uuid.New(),
			Code:                 code,
			DiscountType:         input.DiscountType,
			DiscountValue:        input.DiscountValue,
			MinOrderValue:        input.MinOrderValue,
			MaxDiscount:          input.MaxDiscount,
			UsageLimit:           input.UsageLimit,
			UsageLimitPerUser:    input.UsageLimitPerUser,
			ExpiryDate:           input.ExpiryDate,
			IsActive:             input.IsActive,
			ApplicableProducts:   input.ApplicableProducts,
			ApplicableCategories: input.ApplicableCategories,
		}

		// 2. The unique index backs up the pre-check under concurrency.
		if err := couponRepo.CreateCoupon(ctx, coupon); err != nil {
			if errors.Is(err, repository.ErrCouponCodeTaken) {
				return errors.Wrap(domainerrors.ErrCouponCodeExists, "code already in use")
			}

			return errors.Wrap(err, "failed to create coupon")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create coupon")
	}

	return coupon, nil
}

// UpdateCoupon edits a catalog coupon; a later applied-coupon snapshot is
// unaffected until the cart re-selects.
func (srv *couponService) UpdateCoupon(ctx context.Context, couponID uuid.UUID, input *usecase.CouponInput) (*entity.Coupon, error) {
	srv.logger.Info("Updating coupon", "couponID", couponID)

	if err := validateCouponTerms(input); err != nil {
		return nil, err
	}
	code := entity.NormalizeCouponCode(input.Code)

	var coupon *entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.CouponRepo()

		found, err := couponRepo.FindCouponByID(ctx, couponID)
		if err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return errors.Wrap(domainerrors.ErrCouponNotFound, "coupon does not exist")
			}

			return errors.Wrap(err, "failed to find coupon")
		}

		// Duplicate check excludes the coupon being edited.
		if other, err := couponRepo.FindCouponByCode(ctx, code); err == nil {
			if other.ID != couponID {
				return errors.Wrap(domainerrors.ErrCouponCodeExists, "code already in use")
			}
		} else if !errors.Is(err, repository.ErrCouponNotFound) {
			return errors.Wrap(err, "failed to check coupon code")
		}

		found.Code = code
		found.DiscountType = input.DiscountType
		found.DiscountValue = input.DiscountValue
		found.MinOrderValue = input.MinOrderValue
		found.MaxDiscount = input.MaxDiscount
		found.UsageLimit = input.UsageLimit
		found.UsageLimitPerUser = input.UsageLimitPerUser
		found.ExpiryDate = input.ExpiryDate
		found.IsActive = input.IsActive
		found.ApplicableProducts = input.ApplicableProducts
		found.ApplicableCategories = input.ApplicableCategories

		if err := couponRepo.UpdateCoupon(ctx, found); err != nil {
			if errors.Is(err, repository.ErrCouponCodeTaken) {
				return errors.Wrap(domainerrors.ErrCouponCodeExists, "code already in use")
			}

			return errors.Wrap(err, "failed to update coupon")
		}
		coupon = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update coupon")
	}

	return coupon, nil
}

// DeleteCoupon soft-deletes a catalog coupon. Applied snapshots keep showing
// the old terms until their cart recomputes against the live catalog.
func (srv *couponService) DeleteCoupon(ctx context.Context, couponID uuid.UUID) error {
	srv.logger.Info("Deleting coupon", "couponID", couponID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CouponRepo().DeleteCoupon(ctx, couponID); err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return errors.Wrap(domainerrors.ErrCouponNotFound, "coupon does not exist")
			}

			return errors.Wrap(err, "failed to delete coupon")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete coupon")
	}

	return nil
}

// GetCoupon retrieves one catalog coupon.
func (srv *couponService) GetCoupon(ctx context.Context, couponID uuid.UUID) (*entity.Coupon, error) {
	srv.logger.Debug("Getting coupon", "couponID", couponID)

	var coupon *entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CouponRepo().FindCouponByID(ctx, couponID)
		if err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return errors.Wrap(domainerrors.ErrCouponNotFound, "coupon does not exist")
			}

			return errors.Wrap(err, "failed to find coupon")
		}
		coupon = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get coupon")
	}

	return coupon, nil
}

// ListCoupons retrieves the non-deleted catalog, newest first.
func (srv *couponService) ListCoupons(ctx context.Context) ([]*entity.Coupon, error) {
	srv.logger.Debug("Listing coupons")

	var coupons []*entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CouponRepo().ListCoupons(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list coupons")
		}
		coupons = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return coupons, nil
}

// validateCouponTerms enforces the catalog invariants: a positive discount
// value and, for percentage coupons, a value of at most 100.
func validateCouponTerms(input *usecase.CouponInput) error {
	if !input.DiscountType.Valid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown discount type")
	}
	if input.DiscountValue <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "discount value must be positive")
	}
	if input.DiscountType == entity.DiscountPercentage && input.DiscountValue > maxPercentageValue {
		return errors.Wrap(domainerrors.ErrValidationFailed, "percentage discount cannot exceed 100")
	}

	return nil
}
