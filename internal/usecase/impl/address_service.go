package impl

import (
	"context"
	"log/slog"

	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	"mart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateAddress adds an address to the user's book. The first address a user
// creates becomes both the default and the primary one.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.CreateAddressInput) (*entity.Address, error) {
	srv.logger.Info("Creating address", "userID", userID)

	if err := validatePhone(input.Phone); err != nil {
		return nil, err
	}
	if err := validatePincode(input.Pincode); err != nil {
		return nil, err
	}

	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		count, err := addressRepo.CountAddressesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}

		address = &entity.Address{
			ID:          uuid.New(),
			UserID:      userID,
			Label:       input.Label,
			FullAddress: input.FullAddress,
			Phone:       input.Phone,
			Pincode:     input.Pincode,
			IsDefault:   count == 0,
			IsPrimary:   count == 0,
		}
		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// UpdateAddress edits an address the user owns. Nil input fields are left
// unchanged.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	srv.logger.Info("Updating address", "userID", userID, "addressID", addressID)

	if input.Phone != nil {
		if err := validatePhone(*input.Phone); err != nil {
			return nil, err
		}
	}
	if input.Pincode != nil {
		if err := validatePincode(*input.Pincode); err != nil {
			return nil, err
		}
	}

	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		found, err := srv.findOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if input.Label != nil {
			found.Label = *input.Label
		}
		if input.FullAddress != nil {
			found.FullAddress = *input.FullAddress
		}
		if input.Phone != nil {
			found.Phone = *input.Phone
		}
		if input.Pincode != nil {
			found.Pincode = *input.Pincode
		}

		if err := addressRepo.UpdateAddress(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		address = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// DeleteAddress soft-deletes an address the user owns.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	srv.logger.Info("Deleting address", "userID", userID, "addressID", addressID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if _, err := srv.findOwnedAddress(ctx, addressRepo, userID, addressID); err != nil {
			return err
		}

		if err := addressRepo.DeleteAddress(ctx, addressID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// ListAddresses retrieves the user's non-deleted addresses, default first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	srv.logger.Debug("Listing addresses", "userID", userID)

	var addresses []*entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AddressRepo().FindAddressesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find addresses")
		}
		addresses = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// SetAddressFlag makes the target the user's only address carrying the flag.
// The ownership read and the exclusive update run in one transaction, and the
// update itself is a single conditional write, so concurrent calls for the
// same owner cannot leave two (or zero) flagged rows.
func (srv *addressService) SetAddressFlag(ctx context.Context, userID, addressID uuid.UUID, flag entity.AddressFlag) (*entity.Address, error) {
	srv.logger.Info("Setting address flag", "userID", userID, "addressID", addressID, "flag", flag)

	if !flag.Valid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown address flag")
	}

	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		found, err := srv.findOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.SetExclusiveFlag(ctx, userID, addressID, flag); err != nil {
			return errors.Wrap(err, "failed to set exclusive flag")
		}

		switch flag {
		case entity.FlagDefault:
			found.IsDefault = true
		case entity.FlagPrimary:
			found.IsPrimary = true
		}
		address = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to set address flag")
	}

	return address, nil
}

// UnsetAddressFlag clears the flag on the target address; sibling addresses
// are untouched.
func (srv *addressService) UnsetAddressFlag(ctx context.Context, userID, addressID uuid.UUID, flag entity.AddressFlag) (*entity.Address, error) {
	srv.logger.Info("Unsetting address flag", "userID", userID, "addressID", addressID, "flag", flag)

	if !flag.Valid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown address flag")
	}

	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		found, err := srv.findOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.UnsetFlag(ctx, userID, addressID, flag); err != nil {
			return errors.Wrap(err, "failed to unset flag")
		}

		switch flag {
		case entity.FlagDefault:
			found.IsDefault = false
		case entity.FlagPrimary:
			found.IsPrimary = false
		}
		address = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to unset address flag")
	}

	return address, nil
}

// findOwnedAddress resolves the address and verifies the caller owns it.
func (srv *addressService) findOwnedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	found, err := addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address does not exist")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}
	if found.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address belongs to another user")
	}

	return found, nil
}

func validatePhone(phone string) error {
	if len(phone) != 10 || !allDigits(phone) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "phone must be 10 digits")
	}

	return nil
}

func validatePincode(pincode string) error {
	if len(pincode) != 6 || !allDigits(pincode) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "pincode must be 6 digits")
	}

	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
