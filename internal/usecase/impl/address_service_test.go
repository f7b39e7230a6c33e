package impl

import (
	"context"
	"testing"

	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	mockRepo "mart/internal/mocks/repository"
	"mart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service   usecase.AddressUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewAddressService(txManager, newDiscardLogger())

	return addressServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func validCreateAddressInput() *usecase.CreateAddressInput {
	return &usecase.CreateAddressInput{
		Label:       "Home",
		FullAddress: "221B Baker Street, Marylebone",
		Phone:       "9876543210",
		Pincode:     "560001",
	}
}

func TestAddressService_CreateAddress_FirstAddressGetsBothFlags(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().CountAddressesByUser(ctx, userID).Return(0, nil)
			mockAddressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, userID, validCreateAddressInput())

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.True(t, address.IsPrimary)
	assert.Equal(t, userID, address.UserID)
}

func TestAddressService_CreateAddress_SecondAddressUnflagged(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().CountAddressesByUser(ctx, userID).Return(1, nil)
			mockAddressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, userID, validCreateAddressInput())

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
	assert.False(t, address.IsPrimary)
}

func TestAddressService_CreateAddress_InvalidPhone(t *testing.T) {
	fx := createTestAddressService(t)

	input := validCreateAddressInput()
	input.Phone = "12345"

	_, err := fx.service.CreateAddress(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_CreateAddress_InvalidPincode(t *testing.T) {
	fx := createTestAddressService(t)

	input := validCreateAddressInput()
	input.Pincode = "56000a"

	_, err := fx.service.CreateAddress(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_UpdateAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	existing := &entity.Address{
		ID:          addressID,
		UserID:      userID,
		Label:       "Home",
		FullAddress: "Old Street 1",
		Phone:       "9876543210",
		Pincode:     "560001",
	}
	newLabel := "Office"
	input := &usecase.UpdateAddressInput{Label: &newLabel}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(existing, nil)
			mockAddressRepo.EXPECT().UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.UpdateAddress(ctx, userID, addressID, input)

	require.NoError(t, err)
	assert.Equal(t, "Office", address.Label)
	assert.Equal(t, "Old Street 1", address.FullAddress)
}

func TestAddressService_UpdateAddress_OwnershipViolation(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	foreign := &entity.Address{
		ID:     addressID,
		UserID: uuid.New(),
	}
	newLabel := "Office"
	input := &usecase.UpdateAddressInput{Label: &newLabel}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(foreign, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrAddressOwnershipViolation)

	_, err := fx.service.UpdateAddress(ctx, userID, addressID, input)

	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrAddressNotFound)

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_ListAddresses_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	book := []*entity.Address{
		{ID: uuid.New(), UserID: userID, IsDefault: true},
		{ID: uuid.New(), UserID: userID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressesByUser(ctx, userID).Return(book, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	addresses, err := fx.service.ListAddresses(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, addresses, 2)
}

func TestAddressService_SetAddressFlag_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	existing := &entity.Address{
		ID:     addressID,
		UserID: userID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(existing, nil)
			mockAddressRepo.EXPECT().SetExclusiveFlag(ctx, userID, addressID, entity.FlagDefault).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.SetAddressFlag(ctx, userID, addressID, entity.FlagDefault)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.False(t, address.IsPrimary)
}

func TestAddressService_SetAddressFlag_OwnershipViolation(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	foreign := &entity.Address{
		ID:     addressID,
		UserID: uuid.New(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(foreign, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrAddressOwnershipViolation)

	_, err := fx.service.SetAddressFlag(ctx, userID, addressID, entity.FlagPrimary)

	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}

func TestAddressService_SetAddressFlag_UnknownFlag(t *testing.T) {
	fx := createTestAddressService(t)

	_, err := fx.service.SetAddressFlag(context.Background(), uuid.New(), uuid.New(), entity.AddressFlag("favorite"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_UnsetAddressFlag_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	existing := &entity.Address{
		ID:        addressID,
		UserID:    userID,
		IsPrimary: true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(existing, nil)
			mockAddressRepo.EXPECT().UnsetFlag(ctx, userID, addressID, entity.FlagPrimary).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.UnsetAddressFlag(ctx, userID, addressID, entity.FlagPrimary)

	require.NoError(t, err)
	assert.False(t, address.IsPrimary)
}
