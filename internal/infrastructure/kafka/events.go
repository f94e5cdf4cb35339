package publisher

type OrderEvent struct {
	OrderID     string  `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	VendorID    string  `json:"vendor_id,omitempty"`
	Status      string  `json:"status"`
	Subtotal    float64 `json:"subtotal"`
	Total       float64 `json:"total"`
}

type PaymentEvent struct {
	VendorID string  `json:"vendor_id"`
	Paid     float64 `json:"paid"`
	Notes    string  `json:"notes"`
}
