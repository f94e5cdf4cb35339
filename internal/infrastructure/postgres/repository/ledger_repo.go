package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/marketbay/vendor-ledger-service/internal/domain"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultLedgerRepository struct {
	DB *gorm.DB
}

func NewDefaultLedgerRepository(db *gorm.DB) *DefaultLedgerRepository {
	return &DefaultLedgerRepository{DB: db}
}

func (r *DefaultLedgerRepository) GetPaymentRecords(ctx context.Context) ([]*domain.VendorLedgerPaymentRecord, error) {
	var recordModels []models.VendorLedgerPaymentModel
	if err := r.DB.WithContext(ctx).Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("list payment records: %w", err)
	}

	records := make([]*domain.VendorLedgerPaymentRecord, len(recordModels))
	for i, recordModel := range recordModels {
		records[i] = mappers.ToDomainPaymentRecord(&recordModel)
	}

	return records, nil
}

func (r *DefaultLedgerRepository) GetPaymentRecord(ctx context.Context, vendorID string) (*domain.VendorLedgerPaymentRecord, error) {
	var record models.VendorLedgerPaymentModel
	if err := r.DB.WithContext(ctx).First(&record, "vendor_id = ?", vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment record: %w", err)
	}

	return mappers.ToDomainPaymentRecord(&record), nil
}

// UpsertPaymentRecord overwrites paid/notes for the vendor. Last write wins.
func (r *DefaultLedgerRepository) UpsertPaymentRecord(ctx context.Context, record *domain.VendorLedgerPaymentRecord) error {
	recordModel := mappers.ToGORMPaymentRecord(record)
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vendor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"paid", "notes", "updated_at"}),
		}).
		Create(recordModel).Error
	if err != nil {
		return fmt.Errorf("upsert payment record: %w", err)
	}
	return nil
}
