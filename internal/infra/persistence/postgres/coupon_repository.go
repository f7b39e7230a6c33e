package postgres

import (
	"context"

	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	"mart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the domain.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// CreateCoupon persists a new coupon definition.
func (repo *couponRepository) CreateCoupon(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCouponCodeTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// FindCouponByID retrieves a coupon by its identifier.
func (repo *couponRepository) FindCouponByID(ctx context.Context, couponID uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", couponID).
		First(&couponM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by id")
	}

	return toCouponDomain(&couponM), nil
}

// FindCouponByCode retrieves a coupon by its canonical code.
func (repo *couponRepository) FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&couponM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// ResolveCoupon accepts either a coupon ID or a coupon code. A value that
// parses as a UUID is first resolved by ID, then the code lookup runs as a
// fallback so UUID-shaped codes still resolve.
func (repo *couponRepository) ResolveCoupon(ctx context.Context, idOrCode string) (*entity.Coupon, error) {
	if couponID, err := uuid.Parse(idOrCode); err == nil {
		coupon, err := repo.FindCouponByID(ctx, couponID)
		if err == nil {
			return coupon, nil
		}
		if !errors.Is(err, repository.ErrCouponNotFound) {
			return nil, err
		}
	}

	return repo.FindCouponByCode(ctx, entity.NormalizeCouponCode(idOrCode))
}

// ListCoupons returns all coupons ordered by creation time, newest first.
func (repo *couponRepository) ListCoupons(ctx context.Context) ([]*entity.Coupon, error) {
	var couponMs []*model.CouponModel

	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&couponMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponMs))
	for _, couponM := range couponMs {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// UpdateCoupon overwrites the coupon's terms.
func (repo *couponRepository) UpdateCoupon(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	// Select("*") forces zero values through, otherwise deactivating a
	// coupon or clearing its minimum would be silently skipped.
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", coupon.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(couponM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrCouponCodeTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// DeleteCoupon soft deletes the coupon. Carts holding a snapshot of it keep
// their frozen terms.
func (repo *couponRepository) DeleteCoupon(ctx context.Context, couponID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", couponID).
		Delete(&model.CouponModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:                   data.ID,
		Code:                 data.Code,
		DiscountType:         entity.DiscountType(data.DiscountType),
		DiscountValue:        data.DiscountValue,
		MinOrderValue:        data.MinOrderValue,
		MaxDiscount:          data.MaxDiscount,
		UsageLimit:           data.UsageLimit,
		UsageLimitPerUser:    data.UsageLimitPerUser,
		ExpiryDate:           data.ExpiryDate,
		IsActive:             data.IsActive,
		ApplicableProducts:   data.ApplicableProducts,
		ApplicableCategories: data.ApplicableCategories,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:                   data.ID,
		Code:                 data.Code,
		DiscountType:         string(data.DiscountType),
		DiscountValue:        data.DiscountValue,
		MinOrderValue:        data.MinOrderValue,
		MaxDiscount:          data.MaxDiscount,
		UsageLimit:           data.UsageLimit,
		UsageLimitPerUser:    data.UsageLimitPerUser,
		ExpiryDate:           data.ExpiryDate,
		IsActive:             data.IsActive,
		ApplicableProducts:   data.ApplicableProducts,
		ApplicableCategories: data.ApplicableCategories,
	}
}
