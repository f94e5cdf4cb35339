package mappers

import (
	"github.com/marketbay/vendor-ledger-service/internal/domain"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainVendor(model *models.VendorModel) *domain.Vendor {
	return &domain.Vendor{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMVendor(vendor *domain.Vendor) *models.VendorModel {
	return &models.VendorModel{
		ID:        vendor.ID,
		Name:      vendor.Name,
		Phone:     vendor.Phone,
		CreatedAt: vendor.CreatedAt,
	}
}
