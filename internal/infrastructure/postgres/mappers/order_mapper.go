package mappers

import (
	"github.com/marketbay/vendor-ledger-service/internal/domain"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:           model.ID,
		OrderNumber:  model.OrderNumber,
		CustomerID:   model.CustomerID,
		Status:       model.Status,
		Subtotal:     model.Subtotal,
		ShippingFee:  model.ShippingFee,
		Total:        model.Total,
		ReturnStatus: domain.ReturnStatus(model.ReturnStatus),
		AcceptedAt:   model.AcceptedAt,
		DeliveredAt:  model.DeliveredAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	if model.VendorID != nil {
		order.VendorID = *model.VendorID
	}
	if model.Vendor != nil {
		order.Vendor = ToDomainVendor(model.Vendor)
	}
	return order
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	model := &models.OrderModel{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		CustomerID:   order.CustomerID,
		Status:       order.Status,
		Subtotal:     order.Subtotal,
		ShippingFee:  order.ShippingFee,
		Total:        order.Total,
		ReturnStatus: string(order.ReturnStatus),
		AcceptedAt:   order.AcceptedAt,
		DeliveredAt:  order.DeliveredAt,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
	if order.VendorID != "" {
		vendorID := order.VendorID
		model.VendorID = &vendorID
	}
	return model
}
