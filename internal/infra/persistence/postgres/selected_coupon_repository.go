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

// selectedCouponRepository implements the domain.SelectedCouponRepository interface.
type selectedCouponRepository struct {
	db *gorm.DB
}

// NewSelectedCouponRepository is the constructor for selectedCouponRepository.
func NewSelectedCouponRepository(db *gorm.DB) repository.SelectedCouponRepository {
	return &selectedCouponRepository{db: db}
}

// UpsertSelectedCoupon records the user's current selection. The row is keyed
// by the user ID, so a new selection replaces the previous one.
func (repo *selectedCouponRepository) UpsertSelectedCoupon(ctx context.Context, selected *entity.SelectedCoupon) error {
	selectedM := fromSelectedCouponDomain(selected)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(selectedM).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert selected coupon")
	}

	return nil
}

// FindSelectedCouponByUser retrieves the user's current selection.
func (repo *selectedCouponRepository) FindSelectedCouponByUser(ctx context.Context, userID uuid.UUID) (*entity.SelectedCoupon, error) {
	var selectedM model.SelectedCouponModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&selectedM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSelectedCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find selected coupon")
	}

	return toSelectedCouponDomain(&selectedM), nil
}

// DeleteSelectedCouponByUser removes the user's selection. Deleting when no
// selection exists is a no-op.
func (repo *selectedCouponRepository) DeleteSelectedCouponByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SelectedCouponModel{}).Error

	if err != nil {
		return errors.Wrap(err, "failed to delete selected coupon")
	}

	return nil
}

// --- Mapper Functions ---

func toSelectedCouponDomain(data *model.SelectedCouponModel) *entity.SelectedCoupon {
	if data == nil {
		return nil
	}

	return &entity.SelectedCoupon{
		UserID:    data.UserID,
		CouponID:  data.CouponID,
		Code:      data.Code,
		AppliedAt: data.AppliedAt,
	}
}

func fromSelectedCouponDomain(data *entity.SelectedCoupon) *model.SelectedCouponModel {
	if data == nil {
		return nil
	}

	return &model.SelectedCouponModel{
		UserID:    data.UserID,
		CouponID:  data.CouponID,
		Code:      data.Code,
		AppliedAt: data.AppliedAt,
	}
}
