package models

import "time"

// VendorLedgerPaymentModel keeps one row per vendor, the latest total paid.
type VendorLedgerPaymentModel struct {
	VendorID  string `gorm:"primaryKey;type:uuid"`
	Paid      float64
	Notes     string
	UpdatedAt time.Time
}
