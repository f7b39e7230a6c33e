package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table. The
// catalog is managed elsewhere; this core only reads it.
type ProductModel struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title     string               `gorm:"type:varchar(255);not null"`
	Image     string               `gorm:"type:text;not null;default:''"`
	Stocks    []*ProductStockModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductStockModel is the GORM-specific struct for the 'product_stocks'
// table: available units per weight variant.
type ProductStockModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_stocks_variant"`
	Weight    string    `gorm:"type:varchar(50);not null;default:'';uniqueIndex:idx_product_stocks_variant"`
	Quantity  int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductStockModel) TableName() string {
	return "product_stocks"
}
