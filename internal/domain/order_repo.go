package domain

import (
	"context"
	"time"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)

	// ListUnassignedOrders returns vendor-less orders in pending or confirmed
	// status, oldest first.
	ListUnassignedOrders(ctx context.Context) ([]*Order, error)

	// AssignVendor atomically claims an unassigned order for a vendor. The
	// conditional update must be a single statement against the store so that
	// concurrent claims from different service instances serialize correctly.
	// Returns ErrOrderNotFound, ErrOrderAlreadyAssigned or ErrInvalidOrderStatus
	// when the claim cannot be made; the order is not mutated on failure.
	AssignVendor(ctx context.Context, orderID, vendorID string, acceptedAt time.Time) (*Order, error)

	// MarkDelivered transitions a processing or shipped order to delivered and
	// stamps the delivery time.
	MarkDelivered(ctx context.Context, orderID string, deliveredAt time.Time) (*Order, error)

	SetReturnStatus(ctx context.Context, orderID string, status ReturnStatus) (*Order, error)

	// ListDeliveredOrders returns delivered orders with their vendor preloaded.
	// A non-empty search narrows by order number or vendor name.
	ListDeliveredOrders(ctx context.Context, search string) ([]*Order, error)
}
