// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"mart/config"
	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/pricing"
	"mart/internal/domain/repository"
	"mart/internal/domain/stock"
	"mart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	limits    *config.CartConfig
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CartUsecase {
	limits := cfg.Cart
	if limits == nil {
		limits = &config.CartConfig{}
	}

	return &cartService{
		txManager: txManager,
		limits:    limits,
		logger:    logger,
	}
}

// GetCart returns the user's cart with its pricing quote, creating the empty
// cart lazily on first access.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	srv.logger.Debug("Getting cart", "userID", userID)

	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := getOrCreateCart(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		cart = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	quote := pricing.Compute(cart.Items, cart.AppliedCoupon)

	return &usecase.CartOutput{
		Items:                 cart.Items,
		Subtotal:              quote.Subtotal,
		Discount:              quote.Discount,
		SubtotalAfterDiscount: quote.SubtotalAfterDiscount,
		AppliedCoupon:         cart.AppliedCoupon,
	}, nil
}

// AddItem puts units of a product variant into the cart. An existing line for
// the same (product, weight option) pair accumulates quantity.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddItemInput) (*usecase.CartMutationOutput, error) {
	srv.logger.Info("Adding cart item", "userID", userID, "productID", input.ProductID)

	if input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be at least 1")
	}
	if input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}

	var lineCount int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Resolve the product; it must exist and not be soft-deleted.
		product, err := repoFactory.ProductRepo().FindProductByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 2. Fetch or lazily create the cart.
		cart, err := getOrCreateCart(ctx, repoFactory, userID)
		if err != nil {
			return err
		}

		// 3. Gate the prospective quantity against tracked stock.
		line := cart.FindLine(input.ProductID, input.WeightOption)
		existingQty := 0
		if line != nil {
			existingQty = line.Quantity
		}

		if result := stock.CheckAdd(product, input.WeightOption, existingQty, input.Quantity); !result.Allowed {
			return domainerrors.NewStockExceededError(result.Available, result.MaxAdditional)
		}

		if srv.limits.MaxLineQuantity > 0 && existingQty+input.Quantity > srv.limits.MaxLineQuantity {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "line quantity exceeds limit of %d", srv.limits.MaxLineQuantity)
		}

		// 4. Accumulate onto the existing line or append a new one with
		// snapshot price and display fields.
		cartRepo := repoFactory.CartRepo()
		if line != nil {
			if err := cartRepo.UpdateLineQuantity(ctx, line.ID, existingQty+input.Quantity); err != nil {
				return errors.Wrap(err, "failed to update line quantity")
			}
		} else {
			if srv.limits.MaxLines > 0 {
				count, err := cartRepo.CountLines(ctx, cart.ID)
				if err != nil {
					return errors.Wrap(err, "failed to count cart lines")
				}
				if count >= int64(srv.limits.MaxLines) {
					return errors.Wrapf(domainerrors.ErrValidationFailed, "cart line count exceeds limit of %d", srv.limits.MaxLines)
				}
			}

			newLine := &entity.CartLine{
				ID:           uuid.New(),
				ProductID:    input.ProductID,
				WeightOption: input.WeightOption,
				Quantity:     input.Quantity,
				Price:        input.Price,
				ProductTitle: product.Title,
				ProductImage: product.Image,
				AddedAt:      time.Now(),
			}
			if err := cartRepo.CreateLine(ctx, cart.ID, newLine); err != nil {
				return errors.Wrap(err, "failed to create cart line")
			}
		}

		lineCount, err = cartRepo.CountLines(ctx, cart.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count cart lines")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	return &usecase.CartMutationOutput{LineCount: lineCount}, nil
}

// SetQuantity overwrites a line's quantity; quantity 0 removes the line.
// Repeating the same call leaves the cart unchanged.
func (srv *cartService) SetQuantity(ctx context.Context, userID uuid.UUID, input *usecase.SetQuantityInput) (*usecase.CartMutationOutput, error) {
	srv.logger.Info("Setting cart line quantity", "userID", userID, "productID", input.ProductID, "quantity", input.Quantity)

	if input.Quantity < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must not be negative")
	}

	var lineCount int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		// 1. Find the cart and the target line.
		cart, err := cartRepo.FindCartByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrCartItemNotFound, "cart is empty")
			}

			return errors.Wrap(err, "failed to find cart")
		}

		line := cart.FindLine(input.ProductID, input.WeightOption)
		if line == nil {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "no line for this product")
		}

		// 2. Quantity 0 means remove.
		if input.Quantity == 0 {
			if err := cartRepo.DeleteLine(ctx, line.ID); err != nil {
				return errors.Wrap(err, "failed to delete cart line")
			}
			if err := srv.clearCouponIfEmpty(ctx, repoFactory, cart); err != nil {
				return err
			}

			lineCount, err = cartRepo.CountLines(ctx, cart.ID)
			if err != nil {
				return errors.Wrap(err, "failed to count cart lines")
			}

			return nil
		}

		// 3. Gate the absolute quantity against tracked stock. A product that
		// vanished from the catalog since the add has no stock list left, so
		// the check is skipped.
		product, err := repoFactory.ProductRepo().FindProductByID(ctx, input.ProductID)
		if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(err, "failed to find product")
		}
		if product != nil {
			if result := stock.CheckAbsolute(product, input.WeightOption, line.Quantity, input.Quantity); !result.Allowed {
				return domainerrors.NewStockExceededError(result.Available, result.MaxAdditional)
			}
		}

		if srv.limits.MaxLineQuantity > 0 && input.Quantity > srv.limits.MaxLineQuantity {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "line quantity exceeds limit of %d", srv.limits.MaxLineQuantity)
		}

		if err := cartRepo.UpdateLineQuantity(ctx, line.ID, input.Quantity); err != nil {
			return errors.Wrap(err, "failed to update line quantity")
		}

		lineCount, err = cartRepo.CountLines(ctx, cart.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count cart lines")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to set cart line quantity")
	}

	return &usecase.CartMutationOutput{LineCount: lineCount}, nil
}

// RemoveItem deletes the line for the (product, weight option) pair.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, input *usecase.RemoveItemInput) (*usecase.CartMutationOutput, error) {
	srv.logger.Info("Removing cart item", "userID", userID, "productID", input.ProductID)

	var lineCount int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindCartByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrCartItemNotFound, "cart is empty")
			}

			return errors.Wrap(err, "failed to find cart")
		}

		line := cart.FindLine(input.ProductID, input.WeightOption)
		if line == nil {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "no line for this product")
		}

		if err := cartRepo.DeleteLine(ctx, line.ID); err != nil {
			return errors.Wrap(err, "failed to delete cart line")
		}
		if err := srv.clearCouponIfEmpty(ctx, repoFactory, cart); err != nil {
			return err
		}

		lineCount, err = cartRepo.CountLines(ctx, cart.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count cart lines")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return &usecase.CartMutationOutput{LineCount: lineCount}, nil
}

// Clear empties the cart and unconditionally clears both the applied snapshot
// and the selected-coupon side record.
func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	srv.logger.Info("Clearing cart", "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, err := getOrCreateCart(ctx, repoFactory, userID)
		if err != nil {
			return err
		}

		cartRepo := repoFactory.CartRepo()
		if err := cartRepo.DeleteAllLines(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to delete cart lines")
		}
		if err := cartRepo.ClearAppliedCoupon(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear applied coupon")
		}
		if err := repoFactory.SelectedCouponRepo().DeleteSelectedCouponByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete selected coupon record")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to clear cart", "error", err)

		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// clearCouponIfEmpty is the post-condition shared by the removal paths:
// once the last line is gone, the applied snapshot and the selected-coupon
// side record must not linger.
func (srv *cartService) clearCouponIfEmpty(ctx context.Context, repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
	count, err := repoFactory.CartRepo().CountLines(ctx, cart.ID)
	if err != nil {
		return errors.Wrap(err, "failed to count cart lines")
	}
	if count > 0 {
		return nil
	}

	if err := repoFactory.CartRepo().ClearAppliedCoupon(ctx, cart.ID); err != nil {
		return errors.Wrap(err, "failed to clear applied coupon")
	}
	if err := repoFactory.SelectedCouponRepo().DeleteSelectedCouponByUser(ctx, cart.UserID); err != nil {
		return errors.Wrap(err, "failed to delete selected coupon record")
	}
	srv.logger.Debug("cart emptied, coupon state cleared", "userID", cart.UserID)

	return nil
}

// getOrCreateCart fetches the user's cart, creating an empty one when the
// user has none yet.
func getOrCreateCart(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (*entity.Cart, error) {
	cartRepo := repoFactory.CartRepo()

	cart, err := cartRepo.FindCartByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart = &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
	}
	if err := cartRepo.CreateCart(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}
