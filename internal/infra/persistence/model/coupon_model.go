package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CouponModel is the GORM-specific struct for the 'coupons' table.
type CouponModel struct {
	ID                   uuid.UUID                      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code                 string                         `gorm:"type:varchar(64);not null;uniqueIndex"`
	DiscountType         string                         `gorm:"type:varchar(20);not null"`
	DiscountValue        float64                        `gorm:"type:decimal(12,2);not null"`
	MinOrderValue        float64                        `gorm:"type:decimal(12,2);not null;default:0"`
	MaxDiscount          float64                        `gorm:"type:decimal(12,2);not null;default:0"`
	UsageLimit           int                            `gorm:"not null;default:0"`
	UsageLimitPerUser    int                            `gorm:"not null;default:0"`
	ExpiryDate           *time.Time
	IsActive             bool                           `gorm:"not null;default:true"`
	ApplicableProducts   datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb"`
	ApplicableCategories datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}

// SelectedCouponModel is the GORM-specific struct for the 'selected_coupons'
// table: the denormalized one-row-per-user pointer consumed by checkout.
type SelectedCouponModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	CouponID  uuid.UUID `gorm:"type:uuid;not null"`
	Code      string    `gorm:"type:varchar(64);not null"`
	AppliedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SelectedCouponModel) TableName() string {
	return "selected_coupons"
}
