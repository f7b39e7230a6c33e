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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCartService(t *testing.T, maxLines, maxLineQuantity int) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCartService(txManager, newTestConfig(maxLines, maxLineQuantity), newDiscardLogger())

	return cartServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func untrackedProduct(id uuid.UUID) *entity.Product {
	return &entity.Product{
		ID:    id,
		Title: "Basmati Rice",
		Image: "https://cdn.example.com/rice.jpg",
	}
}

func TestCartService_GetCart_Success(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	existingCart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartLine{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2, Price: 150},
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, Price: 200},
		},
		AppliedCoupon: &entity.AppliedCoupon{
			CouponID:      uuid.New(),
			Code:          "SAVE10",
			DiscountType:  entity.DiscountPercentage,
			DiscountValue: 10,
			AppliedAt:     time.Now(),
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(existingCart, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, output.Items, 2)
	assert.InDelta(t, 500.0, output.Subtotal, 0.001)
	assert.InDelta(t, 50.0, output.Discount, 0.001)
	assert.InDelta(t, 450.0, output.SubtotalAfterDiscount, 0.001)
	assert.Equal(t, existingCart.AppliedCoupon, output.AppliedCoupon)
}

func TestCartService_GetCart_CreatesCartLazily(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(nil, repository.ErrCartNotFound)
			mockCartRepo.EXPECT().CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, output.Items)
	assert.Zero(t, output.Subtotal)
	assert.Zero(t, output.Discount)
	assert.Nil(t, output.AppliedCoupon)
}

func TestCartService_AddItem_NewLine_Success(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	input := &usecase.AddItemInput{
		ProductID: productID,
		Quantity:  2,
		Price:     99.5,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindProductByID(ctx, productID).Return(untrackedProduct(productID), nil)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
			mockCartRepo.EXPECT().CreateLine(ctx, cartID, mock.AnythingOfType("*entity.CartLine")).
				Run(func(ctx context.Context, cartID uuid.UUID, line *entity.CartLine) {
					assert.Equal(t, productID, line.ProductID)
					assert.Equal(t, 2, line.Quantity)
					assert.InDelta(t, 99.5, line.Price, 0.001)
					assert.Equal(t, "Basmati Rice", line.ProductTitle)
				}).
				Return(nil)
			mockCartRepo.EXPECT().CountLines(ctx, cartID).Return(1, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.AddItem(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.LineCount)
}

func TestCartService_AddItem_AccumulatesExistingLine(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	lineID := uuid.New()
	existingCart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartLine{
			{ID: lineID, ProductID: productID, Quantity: 3, Price: 50},
		},
	}
	input := &usecase.AddItemInput{
		ProductID: productID,
		Quantity:  2,
		Price:     50,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindProductByID(ctx, productID).Return(untrackedProduct(productID), nil)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(existingCart, nil)
			mockCartRepo.EXPECT().UpdateLineQuantity(ctx, lineID, 5).Return(nil)
			mockCartRepo.EXPECT().CountLines(ctx, cartID).Return(1, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.AddItem(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.LineCount)
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	input := &usecase.AddItemInput{
		ProductID: productID,
		Quantity:  1,
		Price:     10,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, userID, input)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_StockExceeded(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	lineID := uuid.New()
	trackedProduct := &entity.Product{
		ID:    productID,
		Title: "Almonds",
		Stocks: []*entity.ProductStock{
			{Weight: "", Quantity: 5},
		},
	}
	existingCart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartLine{
			{ID: lineID, ProductID: productID, Quantity: 3, Price: 80},
		},
	}
	input := &usecase.AddItemInput{
		ProductID: productID,
		Quantity:  5,
		Price:     80,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockProductRepo.EXPECT().FindProductByID(ctx, productID).Return(trackedProduct, nil)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(existingCart, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.NewStockExceededError(5, 2))

	_, err := fx.service.AddItem(ctx, userID, input)

	require.Error(t, err)

	var stockErr *domainerrors.StockExceededError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 5, stockErr.Available)
	assert.Equal(t, 2, stockErr.MaxAdditional)
}

func TestCartService_AddItem_LineQuantityLimit(t *testing.T) {
	fx := createTestCartService(t, 0, 10)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	lineID := uuid.New()
	existingCart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartLine{
			{ID: lineID, ProductID: productID, Quantity: 8, Price: 20},
		},
	}
	input := &usecase.AddItemInput{
		ProductID: productID,
		Quantity:  5,
		Price:     20,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockProductRepo.EXPECT().FindProductByID(ctx, productID).Return(untrackedProduct(productID), nil)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(existingCart, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrValidationFailed)

	_, err := fx.service.AddItem(ctx, userID, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_AddItem_MaxLinesLimit(t *testing.T) {
	fx := createTestCartService(t, 2, 0)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	existingCart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartLine{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, Price: 10},
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, Price: 20},
		},
	}
	input := &usecase.AddItemInput{
		ProductID: productID,
		Quantity:  1,
		Price:     30,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockProductRepo.EXPECT().FindProductByID(ctx, productID).Return(untrackedProduct(productID), nil)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(existingCart, nil)
			mockCartRepo.EXPECT().CountLines(ctx, cartID).Return(2, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrValidationFailed)

	_, err := fx.service.AddItem(ctx, userID, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), &usecase.AddItemInput{
		ProductID: uuid.New(),
		Quantity:  0,
		Price:     10,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_SetQuantity_Success(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	lineID := uuid.New()
	existingCart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartLine{
			{ID: lineID, ProductID: productID, Quantity: 2, Price: 40},
		},
	}
	input := &usecase.SetQuantityInput{
		ProductID: productID,
		Quantity:  5,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(existingCart, nil)
			mockProductRepo.EXPECT().FindProductByID(ctx, productID).Return(untrackedProduct(productID), nil)
			mockCartRepo.EXPECT().UpdateLineQuantity(ctx, lineID, 5).Return(nil)
			mockCartRepo.EXPECT().CountLines(ctx, cartID).Return(1, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.SetQuantity(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.LineCount)
}

func TestCartService_SetQuantity_ZeroRemovesLineAndClearsCoupon(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	lineID := uuid.New()
	existingCart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartLine{
			{ID: lineID, ProductID: productID, Quantity: 2, Price: 40},
		},
		AppliedCoupon: &entity.AppliedCoupon{
			CouponID: uuid.New(),
			Code:     "SAVE10",
		},
	}
	input := &usecase.SetQuantityInput{
		ProductID: productID,
		Quantity:  0,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockSelectedRepo := mockRepo.NewMockSelectedCouponRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().SelectedCouponRepo().Return(mockSelectedRepo)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(existingCart, nil)
			mockCartRepo.EXPECT().DeleteLine(ctx, lineID).Return(nil)
			mockCartRepo.EXPECT().CountLines(ctx, cartID).Return(0, nil)
			mockCartRepo.EXPECT().ClearAppliedCoupon(ctx, cartID).Return(nil)
			mockSelectedRepo.EXPECT().DeleteSelectedCouponByUser(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.SetQuantity(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, int64(0), output.LineCount)
}

func TestCartService_SetQuantity_LineNotFound(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()
	existingCart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
	}
	input := &usecase.SetQuantityInput{
		ProductID: uuid.New(),
		Quantity:  3,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(existingCart, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCartItemNotFound)

	_, err := fx.service.SetQuantity(ctx, userID, input)

	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_SetQuantity_ProductVanishedSkipsStockCheck(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	lineID := uuid.New()
	existingCart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartLine{
			{ID: lineID, ProductID: productID, Quantity: 2, Price: 40},
		},
	}
	input := &usecase.SetQuantityInput{
		ProductID: productID,
		Quantity:  7,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(existingCart, nil)
			mockProductRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
			mockCartRepo.EXPECT().UpdateLineQuantity(ctx, lineID, 7).Return(nil)
			mockCartRepo.EXPECT().CountLines(ctx, cartID).Return(1, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.SetQuantity(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.LineCount)
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	lineID := uuid.New()
	existingCart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartLine{
			{ID: lineID, ProductID: productID, Quantity: 2, Price: 40},
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, Price: 15},
		},
	}
	input := &usecase.RemoveItemInput{
		ProductID: productID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(existingCart, nil)
			mockCartRepo.EXPECT().DeleteLine(ctx, lineID).Return(nil)
			mockCartRepo.EXPECT().CountLines(ctx, cartID).Return(1, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RemoveItem(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.LineCount)
}

func TestCartService_Clear_Success(t *testing.T) {
	fx := createTestCartService(t, 0, 0)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	existingCart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartLine{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2, Price: 40},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockSelectedRepo := mockRepo.NewMockSelectedCouponRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().SelectedCouponRepo().Return(mockSelectedRepo)
			mockCartRepo.EXPECT().FindCartByUser(ctx, userID).Return(existingCart, nil)
			mockCartRepo.EXPECT().DeleteAllLines(ctx, cartID).Return(nil)
			mockCartRepo.EXPECT().ClearAppliedCoupon(ctx, cartID).Return(nil)
			mockSelectedRepo.EXPECT().DeleteSelectedCouponByUser(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Clear(ctx, userID)

	require.NoError(t, err)
}
