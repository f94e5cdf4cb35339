package mappers

import (
	"github.com/marketbay/vendor-ledger-service/internal/domain"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainPaymentRecord(model *models.VendorLedgerPaymentModel) *domain.VendorLedgerPaymentRecord {
	return &domain.VendorLedgerPaymentRecord{
		VendorID:  model.VendorID,
		Paid:      model.Paid,
		Notes:     model.Notes,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMPaymentRecord(record *domain.VendorLedgerPaymentRecord) *models.VendorLedgerPaymentModel {
	return &models.VendorLedgerPaymentModel{
		VendorID:  record.VendorID,
		Paid:      record.Paid,
		Notes:     record.Notes,
		UpdatedAt: record.UpdatedAt,
	}
}
