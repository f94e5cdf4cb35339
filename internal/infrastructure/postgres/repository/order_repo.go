package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marketbay/vendor-ledger-service/internal/domain"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.WithContext(ctx).Create(orderModel).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.WithContext(ctx).Preload("Vendor").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) ListUnassignedOrders(ctx context.Context) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.WithContext(ctx).
		Where("vendor_id IS NULL").
		Where("status IN ?", []domain.OrderStatus{domain.StatusPending, domain.StatusConfirmed}).
		Order("created_at ASC").
		Find(&orderModels).Error
	if err != nil {
		return nil, fmt.Errorf("list unassigned orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}

// AssignVendor claims the order with a single conditional UPDATE. The
// vendor_id IS NULL guard is what makes two racing claims resolve to exactly
// one winner regardless of how many service instances run.
func (r *DefaultOrderRepository) AssignVendor(ctx context.Context, orderID, vendorID string, acceptedAt time.Time) (*domain.Order, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND vendor_id IS NULL AND status IN ?",
			orderID, []domain.OrderStatus{domain.StatusPending, domain.StatusConfirmed}).
		Updates(map[string]interface{}{
			"vendor_id":   vendorID,
			"status":      domain.StatusProcessing,
			"accepted_at": acceptedAt,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("assign vendor: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		// Lost the claim or the order was never claimable. Re-read to report
		// which one it was.
		order, err := r.GetOrderByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if order.VendorID != "" {
			return nil, domain.ErrOrderAlreadyAssigned
		}
		return nil, domain.ErrInvalidOrderStatus
	}

	return r.GetOrderByID(ctx, orderID)
}

func (r *DefaultOrderRepository) MarkDelivered(ctx context.Context, orderID string, deliveredAt time.Time) (*domain.Order, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND status IN ?",
			orderID, []domain.OrderStatus{domain.StatusProcessing, domain.StatusShipped}).
		Updates(map[string]interface{}{
			"status":       domain.StatusDelivered,
			"delivered_at": deliveredAt,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("mark delivered: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		if _, err := r.GetOrderByID(ctx, orderID); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidOrderStatus
	}

	return r.GetOrderByID(ctx, orderID)
}

func (r *DefaultOrderRepository) SetReturnStatus(ctx context.Context, orderID string, status domain.ReturnStatus) (*domain.Order, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("return_status", string(status))
	if res.Error != nil {
		return nil, fmt.Errorf("set return status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrOrderNotFound
	}

	return r.GetOrderByID(ctx, orderID)
}

func (r *DefaultOrderRepository) ListDeliveredOrders(ctx context.Context, search string) ([]*domain.Order, error) {
	query := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Preload("Vendor").
		Joins("LEFT JOIN vendor_models ON vendor_models.id = order_models.vendor_id").
		Where("order_models.status = ?", domain.StatusDelivered)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("order_models.order_number ILIKE ? OR vendor_models.name ILIKE ?", pattern, pattern)
	}

	var orderModels []models.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("list delivered orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}
