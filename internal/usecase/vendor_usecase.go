package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marketbay/vendor-ledger-service/internal/clock"
	"github.com/marketbay/vendor-ledger-service/internal/domain"
)

type CreateVendorInput struct {
	Name  string
	Phone string
}

type VendorUsecase interface {
	CreateVendor(ctx context.Context, input CreateVendorInput) (*domain.Vendor, error)
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
}

type DefaultVendorUsecase struct {
	VendorRepo domain.VendorRepository
	Clock      clock.Clock
}

func NewDefaultVendorUsecase(vendorRepo domain.VendorRepository, clk clock.Clock) *DefaultVendorUsecase {
	return &DefaultVendorUsecase{VendorRepo: vendorRepo, Clock: clk}
}

func (uc *DefaultVendorUsecase) CreateVendor(ctx context.Context, input CreateVendorInput) (*domain.Vendor, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: vendor name is required", domain.ErrInvalidInput)
	}

	vendor := &domain.Vendor{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Phone:     input.Phone,
		CreatedAt: uc.Clock.Now(),
	}
	if err := uc.VendorRepo.CreateVendor(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

func (uc *DefaultVendorUsecase) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return uc.VendorRepo.GetVendorByID(ctx, vendorID)
}
