// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// CreateCart persists a new empty cart for the user.
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{
		ID:     cart.ID,
		UserID: cart.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Another request created the cart first; one cart per user stands.
			return domainerrors.ErrConflict.WrapMessage("cart already exists for this user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// FindCartByUser retrieves the user's cart with lines and applied snapshot.
func (repo *cartRepository) FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	err := repo.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("added_at ASC")
		}).
		Preload("AppliedCoupon").
		Where("user_id = ?", userID).
		First(&cartM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// CreateLine appends a new line to the cart.
func (repo *cartRepository) CreateLine(ctx context.Context, cartID uuid.UUID, line *entity.CartLine) error {
	lineM := fromCartLineDomain(cartID, line)

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("line already exists for this product and variant")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCartNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart line")
	}

	return nil
}

// UpdateLineQuantity overwrites the quantity of an existing line.
func (repo *cartRepository) UpdateLineQuantity(ctx context.Context, lineID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("id = ?", lineID).
		Update("quantity", quantity)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update line quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteLine removes one line.
func (repo *cartRepository) DeleteLine(ctx context.Context, lineID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", lineID).
		Delete(&model.CartLineModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart line")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteAllLines removes every line of the cart.
func (repo *cartRepository) DeleteAllLines(ctx context.Context, cartID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartLineModel{}).Error

	if err != nil {
		return errors.Wrap(err, "failed to delete cart lines")
	}

	return nil
}

// CountLines returns the number of lines in the cart.
func (repo *cartRepository) CountLines(ctx context.Context, cartID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("cart_id = ?", cartID).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count cart lines")
	}

	return count, nil
}

// SetAppliedCoupon overwrites the cart's applied snapshot. The snapshot row is
// keyed by the cart ID, so the upsert replaces any previous selection.
func (repo *cartRepository) SetAppliedCoupon(ctx context.Context, cartID uuid.UUID, coupon *entity.AppliedCoupon) error {
	couponM := fromAppliedCouponDomain(cartID, coupon)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}},
			UpdateAll: true,
		}).
		Create(couponM).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set applied coupon")
	}

	return nil
}

// ClearAppliedCoupon removes the cart's applied snapshot if any. Clearing a
// cart without a snapshot is a no-op.
func (repo *cartRepository) ClearAppliedCoupon(ctx context.Context, cartID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.AppliedCouponModel{}).Error

	if err != nil {
		return errors.Wrap(err, "failed to clear applied coupon")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	lines := make([]*entity.CartLine, 0, len(data.Lines))
	for _, lineM := range data.Lines {
		lines = append(lines, toCartLineDomain(lineM))
	}

	return &entity.Cart{
		ID:            data.ID,
		UserID:        data.UserID,
		Items:         lines,
		AppliedCoupon: toAppliedCouponDomain(data.AppliedCoupon),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toCartLineDomain converts a GORM CartLineModel to a domain CartLine entity.
func toCartLineDomain(data *model.CartLineModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	var weightOption *string
	if data.WeightOption != "" {
		weight := data.WeightOption
		weightOption = &weight
	}

	return &entity.CartLine{
		ID:           data.ID,
		ProductID:    data.ProductID,
		WeightOption: weightOption,
		Quantity:     data.Quantity,
		Price:        data.Price,
		ProductTitle: data.ProductTitle,
		ProductImage: data.ProductImage,
		AddedAt:      data.AddedAt,
	}
}

// fromCartLineDomain converts a domain CartLine entity to a GORM CartLineModel.
// A nil weight option is stored as the empty string so the composite unique
// index covers the base variant.
func fromCartLineDomain(cartID uuid.UUID, data *entity.CartLine) *model.CartLineModel {
	if data == nil {
		return nil
	}

	weightOption := ""
	if data.WeightOption != nil {
		weightOption = *data.WeightOption
	}

	return &model.CartLineModel{
		ID:           data.ID,
		CartID:       cartID,
		ProductID:    data.ProductID,
		WeightOption: weightOption,
		Quantity:     data.Quantity,
		Price:        data.Price,
		ProductTitle: data.ProductTitle,
		ProductImage: data.ProductImage,
		AddedAt:      data.AddedAt,
	}
}

// toAppliedCouponDomain converts a GORM AppliedCouponModel to a domain AppliedCoupon entity.
func toAppliedCouponDomain(data *model.AppliedCouponModel) *entity.AppliedCoupon {
	if data == nil {
		return nil
	}

	return &entity.AppliedCoupon{
		CouponID:          data.CouponID,
		Code:              data.Code,
		DiscountType:      entity.DiscountType(data.DiscountType),
		DiscountValue:     data.DiscountValue,
		AppliedToProducts: data.AppliedToProducts,
		Discount:          data.Discount,
		AppliedAt:         data.AppliedAt,
	}
}

// fromAppliedCouponDomain converts a domain AppliedCoupon entity to a GORM AppliedCouponModel.
func fromAppliedCouponDomain(cartID uuid.UUID, data *entity.AppliedCoupon) *model.AppliedCouponModel {
	if data == nil {
		return nil
	}

	return &model.AppliedCouponModel{
		CartID:            cartID,
		CouponID:          data.CouponID,
		Code:              data.Code,
		DiscountType:      string(data.DiscountType),
		DiscountValue:     data.DiscountValue,
		AppliedToProducts: data.AppliedToProducts,
		Discount:          data.Discount,
		AppliedAt:         data.AppliedAt,
	}
}
