package repository

import (
	"context"

	"mart/internal/domain/entity"
	"mart/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist or is soft-deleted.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the read-only collaborator onto the product catalog.
// Catalog management is outside this core; only lookups are consumed here.
type ProductRepository interface {
	// FindProductByID retrieves a product with its tracked stock list,
	// excluding soft-deleted rows. Returns ErrProductNotFound otherwise.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
