package postgres

import (
	"context"

	"mart/internal/domain/entity"
	"mart/internal/domain/repository"
	"mart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface. The
// catalog is read-only from this service's point of view.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindProductByID retrieves a product with its per-variant stock rows.
func (repo *productRepository) FindProductByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Stocks").
		Where("id = ?", productID).
		First(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	stocks := make([]*entity.ProductStock, 0, len(data.Stocks))
	for _, stockM := range data.Stocks {
		stocks = append(stocks, &entity.ProductStock{
			Weight:   stockM.Weight,
			Quantity: stockM.Quantity,
		})
	}

	return &entity.Product{
		ID:     data.ID,
		Title:  data.Title,
		Image:  data.Image,
		Stocks: stocks,
	}
}
