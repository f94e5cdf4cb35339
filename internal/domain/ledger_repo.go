package domain

import "context"

type LedgerRepository interface {
	GetPaymentRecords(ctx context.Context) ([]*VendorLedgerPaymentRecord, error)
	GetPaymentRecord(ctx context.Context, vendorID string) (*VendorLedgerPaymentRecord, error)

	// UpsertPaymentRecord creates or fully overwrites the record for the
	// vendor. Last write wins, no conflict detection.
	UpsertPaymentRecord(ctx context.Context, record *VendorLedgerPaymentRecord) error
}

type VendorRepository interface {
	CreateVendor(ctx context.Context, vendor *Vendor) error
	GetVendorByID(ctx context.Context, vendorID string) (*Vendor, error)
}
