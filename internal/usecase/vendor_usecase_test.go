package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marketbay/vendor-ledger-service/internal/clock"
	"github.com/marketbay/vendor-ledger-service/internal/domain"
)

func TestVendorUsecase_CreateVendor(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeVendorRepo()
	uc := NewDefaultVendorUsecase(repo, clock.NewFixed(now))

	t.Run("assigns id and creation time", func(t *testing.T) {
		vendor, err := uc.CreateVendor(context.Background(), CreateVendorInput{Name: "Vendor A", Phone: "555-0100"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if vendor.ID == "" {
			t.Fatal("expected a generated vendor id")
		}
		if !vendor.CreatedAt.Equal(now) {
			t.Fatalf("expected created_at %v, got %v", now, vendor.CreatedAt)
		}

		stored, err := uc.GetVendorByID(context.Background(), vendor.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if stored.Name != "Vendor A" || stored.Phone != "555-0100" {
			t.Fatalf("unexpected stored vendor: %+v", stored)
		}
	})

	t.Run("name required", func(t *testing.T) {
		if _, err := uc.CreateVendor(context.Background(), CreateVendorInput{Phone: "555-0100"}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown vendor", func(t *testing.T) {
		if _, err := uc.GetVendorByID(context.Background(), "ghost"); !errors.Is(err, domain.ErrVendorNotFound) {
			t.Fatalf("expected ErrVendorNotFound, got %v", err)
		}
	})
}
