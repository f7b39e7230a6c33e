package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CartModel is the GORM-specific struct for the 'carts' table.
type CartModel struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID        uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex"` // One cart per user.
	Lines         []*CartLineModel    `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	AppliedCoupon *AppliedCouponModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartLineModel is the GORM-specific struct for the 'cart_lines' table.
// WeightOption stores the empty string for the base variant so the composite
// unique index can cover nullable variants.
type CartLineModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CartID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_lines_identity"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_lines_identity"`
	WeightOption string    `gorm:"type:varchar(50);not null;default:'';uniqueIndex:idx_cart_lines_identity"`
	Quantity     int       `gorm:"not null"`
	Price        float64   `gorm:"type:decimal(12,2);not null"`
	ProductTitle string    `gorm:"type:varchar(255);not null"`
	ProductImage string    `gorm:"type:text;not null;default:''"`
	AddedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}

// AppliedCouponModel is the GORM-specific struct for the 'cart_applied_coupons'
// table. The cart ID is the primary key, so the storage layer cannot hold two
// snapshots for one cart.
type AppliedCouponModel struct {
	CartID            uuid.UUID                       `gorm:"type:uuid;primary_key"`
	CouponID          uuid.UUID                       `gorm:"type:uuid;not null"`
	Code              string                          `gorm:"type:varchar(64);not null"`
	DiscountType      string                          `gorm:"type:varchar(20);not null"`
	DiscountValue     float64                         `gorm:"type:decimal(12,2);not null"`
	AppliedToProducts datatypes.JSONSlice[uuid.UUID]  `gorm:"type:jsonb"`
	Discount          float64                         `gorm:"type:decimal(12,2);not null;default:0"`
	AppliedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppliedCouponModel) TableName() string {
	return "cart_applied_coupons"
}
