package impl

import (
	"context"
	"testing"
	"time"

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

// couponServiceFixtures holds all test dependencies for coupon service tests.
type couponServiceFixtures struct {
	service   usecase.CouponUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCouponService(txManager, newDiscardLogger())

	return couponServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func activeCoupon() *entity.Coupon {
	return &entity.Coupon{
		ID:            uuid.New(),
		Code:          "SAVE10",
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: 10,
		IsActive:      true,
	}
}

func TestCouponService_SelectCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	coupon := activeCoupon()
	input := &usecase.SelectCouponInput{Coupon: "save10"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockSelectedRepo := mockRepo.NewMockSelectedCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().SelectedCouponRepo().Return(mockSelectedRepo)
			mockCouponRepo.EXPECT().ResolveCoupon(ctx, "save10").Return(coupon, nil)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
			mockCartRepo.EXPECT().SetAppliedCoupon(ctx, cartID, mock.AnythingOfType("*entity.AppliedCoupon")).
				Run(func(ctx context.Context, cartID uuid.UUID, applied *entity.AppliedCoupon) {
					assert.Equal(t, coupon.ID, applied.CouponID)
					assert.Equal(t, "SAVE10", applied.Code)
					assert.Equal(t, entity.DiscountPercentage, applied.DiscountType)
					assert.InDelta(t, 10.0, applied.DiscountValue, 0.001)
					assert.Zero(t, applied.Discount)
				}).
				Return(nil)
			mockSelectedRepo.EXPECT().UpsertSelectedCoupon(ctx, mock.AnythingOfType("*entity.SelectedCoupon")).
				Run(func(ctx context.Context, selected *entity.SelectedCoupon) {
					assert.Equal(t, userID, selected.UserID)
					assert.Equal(t, coupon.ID, selected.CouponID)
					assert.Equal(t, "SAVE10", selected.Code)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	snapshot, err := fx.service.SelectCoupon(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, coupon.ID, snapshot.CouponID)
	assert.WithinDuration(t, time.Now(), snapshot.AppliedAt, time.Second)
}

func TestCouponService_SelectCoupon_CreatesCartLazily(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupon := activeCoupon()
	input := &usecase.SelectCouponInput{Coupon: coupon.ID.String()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockSelectedRepo := mockRepo.NewMockSelectedCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().SelectedCouponRepo().Return(mockSelectedRepo)
			mockCouponRepo.EXPECT().ResolveCoupon(ctx, coupon.ID.String()).Return(coupon, nil)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(nil, repository.ErrCartNotFound)
			mockCartRepo.EXPECT().CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
			mockCartRepo.EXPECT().SetAppliedCoupon(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("*entity.AppliedCoupon")).Return(nil)
			mockSelectedRepo.EXPECT().UpsertSelectedCoupon(ctx, mock.AnythingOfType("*entity.SelectedCoupon")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	snapshot, err := fx.service.SelectCoupon(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, coupon.ID, snapshot.CouponID)
}

func TestCouponService_SelectCoupon_NotFound(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SelectCouponInput{Coupon: "NOPE"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().ResolveCoupon(ctx, "NOPE").Return(nil, repository.ErrCouponNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCouponNotFound)

	_, err := fx.service.SelectCoupon(ctx, userID, input)

	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
}

func TestCouponService_SelectCoupon_Inactive(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupon := activeCoupon()
	coupon.IsActive = false
	input := &usecase.SelectCouponInput{Coupon: "SAVE10"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().ResolveCoupon(ctx, "SAVE10").Return(coupon, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCouponInactive)

	_, err := fx.service.SelectCoupon(ctx, userID, input)

	assert.ErrorIs(t, err, domainerrors.ErrCouponInactive)
}

func TestCouponService_SelectCoupon_Expired(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	expired := time.Now().Add(-time.Hour)
	coupon := activeCoupon()
	coupon.ExpiryDate = &expired
	input := &usecase.SelectCouponInput{Coupon: "SAVE10"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().ResolveCoupon(ctx, "SAVE10").Return(coupon, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCouponExpired)

	_, err := fx.service.SelectCoupon(ctx, userID, input)

	assert.ErrorIs(t, err, domainerrors.ErrCouponExpired)
}

func TestCouponService_UnselectCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockSelectedRepo := mockRepo.NewMockSelectedCouponRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().SelectedCouponRepo().Return(mockSelectedRepo)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
			mockCartRepo.EXPECT().ClearAppliedCoupon(ctx, cartID).Return(nil)
			mockSelectedRepo.EXPECT().DeleteSelectedCouponByUser(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.UnselectCoupon(ctx, userID)

	require.NoError(t, err)
}

func TestCouponService_UnselectCoupon_NoCart(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockSelectedRepo := mockRepo.NewMockSelectedCouponRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().SelectedCouponRepo().Return(mockSelectedRepo)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(nil, repository.ErrCartNotFound)
			mockSelectedRepo.EXPECT().DeleteSelectedCouponByUser(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.UnselectCoupon(ctx, userID)

	require.NoError(t, err)
}

func TestCouponService_GetSelectedCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	selected := &entity.SelectedCoupon{
		UserID:    userID,
		CouponID:  uuid.New(),
		Code:      "SAVE10",
		AppliedAt: time.Now(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSelectedRepo := mockRepo.NewMockSelectedCouponRepository(t)

			mockFactory.EXPECT().SelectedCouponRepo().Return(mockSelectedRepo)
			mockSelectedRepo.EXPECT().FindSelectedCouponByUser(ctx, userID).Return(selected, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	got, err := fx.service.GetSelectedCoupon(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, selected, got)
}

func TestCouponService_GetSelectedCoupon_NoneSelected(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSelectedRepo := mockRepo.NewMockSelectedCouponRepository(t)

			mockFactory.EXPECT().SelectedCouponRepo().Return(mockSelectedRepo)
			mockSelectedRepo.EXPECT().FindSelectedCouponByUser(ctx, userID).Return(nil, repository.ErrSelectedCouponNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrNotFound)

	_, err := fx.service.GetSelectedCoupon(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCouponService_CreateCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	input := &usecase.CouponInput{
		Code:          "welcome50",
		DiscountType:  entity.DiscountFixed,
		DiscountValue: 50,
		MinOrderValue: 500,
		IsActive:      true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().FindCouponByCode(ctx, "WELCOME50").Return(nil, repository.ErrCouponNotFound)
			mockCouponRepo.EXPECT().CreateCoupon(ctx, mock.AnythingOfType("*entity.Coupon")).
				Run(func(ctx context.Context, coupon *entity.Coupon) {
					assert.Equal(t, "WELCOME50", coupon.Code)
					assert.Equal(t, entity.DiscountFixed, coupon.DiscountType)
					assert.InDelta(t, 50.0, coupon.DiscountValue, 0.001)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	coupon, err := fx.service.CreateCoupon(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "WELCOME50", coupon.Code)
	assert.True(t, coupon.IsActive)
}

func TestCouponService_CreateCoupon_DuplicateCode(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	existing := activeCoupon()
	input := &usecase.CouponInput{
		Code:          "save10",
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: 10,
		IsActive:      true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().FindCouponByCode(ctx, "SAVE10").Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCouponCodeExists)

	_, err := fx.service.CreateCoupon(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrCouponCodeExists)
}

func TestCouponService_CreateCoupon_PercentageOverHundred(t *testing.T) {
	fx := createTestCouponService(t)

	_, err := fx.service.CreateCoupon(context.Background(), &usecase.CouponInput{
		Code:          "BROKEN",
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: 150,
		IsActive:      true,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCouponService_CreateCoupon_NonPositiveValue(t *testing.T) {
	fx := createTestCouponService(t)

	_, err := fx.service.CreateCoupon(context.Background(), &usecase.CouponInput{
		Code:          "BROKEN",
		DiscountType:  entity.DiscountFixed,
		DiscountValue: 0,
		IsActive:      true,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCouponService_UpdateCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	existing := activeCoupon()
	input := &usecase.CouponInput{
		Code:          "SAVE10",
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: 15,
		IsActive:      false,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().FindCouponByID(ctx, existing.ID).Return(existing, nil)
			mockCouponRepo.EXPECT().FindCouponByCode(ctx, "SAVE10").Return(existing, nil)
			mockCouponRepo.EXPECT().UpdateCoupon(ctx, mock.AnythingOfType("*entity.Coupon")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	coupon, err := fx.service.UpdateCoupon(ctx, existing.ID, input)

	require.NoError(t, err)
	assert.InDelta(t, 15.0, coupon.DiscountValue, 0.001)
	assert.False(t, coupon.IsActive)
}

func TestCouponService_UpdateCoupon_CodeTakenByOther(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	existing := activeCoupon()
	other := activeCoupon()
	other.Code = "OTHER10"
	input := &usecase.CouponInput{
		Code:          "OTHER10",
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: 10,
		IsActive:      true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().FindCouponByID(ctx, existing.ID).Return(existing, nil)
			mockCouponRepo.EXPECT().FindCouponByCode(ctx, "OTHER10").Return(other, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCouponCodeExists)

	_, err := fx.service.UpdateCoupon(ctx, existing.ID, input)

	assert.ErrorIs(t, err, domainerrors.ErrCouponCodeExists)
}

func TestCouponService_DeleteCoupon_NotFound(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().DeleteCoupon(ctx, couponID).Return(repository.ErrCouponNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCouponNotFound)

	err := fx.service.DeleteCoupon(ctx, couponID)

	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
}

func TestCouponService_ListCoupons_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	catalog := []*entity.Coupon{activeCoupon(), activeCoupon()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().ListCoupons(ctx).Return(catalog, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	coupons, err := fx.service.ListCoupons(ctx)

	require.NoError(t, err)
	assert.Len(t, coupons, 2)
}
