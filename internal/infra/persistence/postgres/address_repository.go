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

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its identifier.
func (repo *addressRepository) FindAddressByID(ctx context.Context, addressID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", addressID).
		First(&addressM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByUser retrieves every address owned by the user, flagged
// addresses first.
func (repo *addressRepository) FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addressMs []*model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, is_primary DESC, created_at ASC").
		Find(&addressMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressMs))
	for _, addressM := range addressMs {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// CountAddressesByUser returns the number of addresses the user owns.
func (repo *addressRepository) CountAddressesByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count addresses")
	}

	return count, nil
}

// UpdateAddress overwrites the address fields.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Select("*").
		Omit("id", "user_id", "created_at", "deleted_at").
		Updates(addressM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress soft deletes the address.
func (repo *addressRepository) DeleteAddress(ctx context.Context, addressID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", addressID).
		Delete(&model.AddressModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// SetExclusiveFlag grants the flag to the target address and revokes it from
// every other address of the same user in one UPDATE. The single statement
// keeps concurrent grants from leaving two rows flagged.
func (repo *addressRepository) SetExclusiveFlag(ctx context.Context, userID, addressID uuid.UUID, flag entity.AddressFlag) error {
	column, err := flagColumn(flag)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ?", userID).
		Update(column, gorm.Expr("id = ?", addressID))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set exclusive flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// UnsetFlag clears the flag on the target address only.
func (repo *addressRepository) UnsetFlag(ctx context.Context, userID, addressID uuid.UUID, flag entity.AddressFlag) error {
	column, err := flagColumn(flag)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ? AND user_id = ?", addressID, userID).
		Update(column, false)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to unset flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// flagColumn maps a flag kind to its column. The closed switch keeps user
// input out of the generated SQL.
func flagColumn(flag entity.AddressFlag) (string, error) {
	switch flag {
	case entity.FlagDefault:
		return "is_default", nil
	case entity.FlagPrimary:
		return "is_primary", nil
	default:
		return "", errors.Errorf("unknown address flag: %s", flag)
	}
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:          data.ID,
		UserID:      data.UserID,
		Label:       data.Label,
		FullAddress: data.FullAddress,
		Phone:       data.Phone,
		Pincode:     data.Pincode,
		IsDefault:   data.IsDefault,
		IsPrimary:   data.IsPrimary,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Label:       data.Label,
		FullAddress: data.FullAddress,
		Phone:       data.Phone,
		Pincode:     data.Pincode,
		IsDefault:   data.IsDefault,
		IsPrimary:   data.IsPrimary,
	}
}
