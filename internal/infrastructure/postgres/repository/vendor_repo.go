package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/marketbay/vendor-ledger-service/internal/domain"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultVendorRepository struct {
	DB *gorm.DB
}

func NewDefaultVendorRepository(db *gorm.DB) *DefaultVendorRepository {
	return &DefaultVendorRepository{DB: db}
}

func (r *DefaultVendorRepository) CreateVendor(ctx context.Context, vendor *domain.Vendor) error {
	vendorModel := mappers.ToGORMVendor(vendor)
	if err := r.DB.WithContext(ctx).Create(vendorModel).Error; err != nil {
		return fmt.Errorf("create vendor: %w", err)
	}
	return nil
}

func (r *DefaultVendorRepository) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	var vendor models.VendorModel
	if err := r.DB.WithContext(ctx).First(&vendor, "id = ?", vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}

	return mappers.ToDomainVendor(&vendor), nil
}
