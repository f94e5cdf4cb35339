package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

type ReturnStatus string

const (
	ReturnNone      ReturnStatus = ""
	ReturnPending   ReturnStatus = "pending"
	ReturnAccepted  ReturnStatus = "accepted"
	ReturnDenied    ReturnStatus = "denied"
	ReturnCompleted ReturnStatus = "completed"
)

// ValidReturnStatus reports whether s is a value a return request may carry.
func ValidReturnStatus(s ReturnStatus) bool {
	switch s {
	case ReturnPending, ReturnAccepted, ReturnDenied, ReturnCompleted:
		return true
	}
	return false
}

type Order struct {
	ID           string
	OrderNumber  string
	CustomerID   string
	VendorID     string // empty means unassigned
	Vendor       *Vendor
	Status       OrderStatus
	Subtotal     float64
	ShippingFee  float64
	Total        float64
	ReturnStatus ReturnStatus
	AcceptedAt   *time.Time
	DeliveredAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DeliveredAtOrFallback returns the delivery timestamp, falling back to the
// last-modified time for delivered orders that never had one stamped.
func (o *Order) DeliveredAtOrFallback() time.Time {
	if o.DeliveredAt != nil {
		return *o.DeliveredAt
	}
	return o.UpdatedAt
}

// Acceptable reports whether the order is in a state a vendor may still claim.
func (o *Order) Acceptable() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}
