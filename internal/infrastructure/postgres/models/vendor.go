package models

import "time"

type VendorModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"index:idx_vendor_name"`
	Phone     string
	CreatedAt time.Time
}
