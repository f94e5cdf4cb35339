package models

import (
	"time"

	"github.com/marketbay/vendor-ledger-service/internal/domain"
)

type OrderModel struct {
	ID           string             `gorm:"primaryKey;type:uuid"`
	OrderNumber  string             `gorm:"uniqueIndex:idx_order_number"`
	CustomerID   string             `gorm:"index:idx_customer"`
	VendorID     *string            `gorm:"type:uuid;index:idx_vendor"`
	Vendor       *VendorModel       `gorm:"foreignKey:VendorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Status       domain.OrderStatus `gorm:"index:idx_status"`
	Subtotal     float64
	ShippingFee  float64
	Total        float64
	ReturnStatus string
	AcceptedAt   *time.Time
	DeliveredAt  *time.Time `gorm:"index:idx_delivered_at"`
	CreatedAt    time.Time  `gorm:"index:idx_created_at"`
	UpdatedAt    time.Time
}
