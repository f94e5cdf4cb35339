package domain

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrVendorNotFound       = errors.New("vendor not found")
	ErrOrderAlreadyAssigned = errors.New("order already assigned to a vendor")
	ErrInvalidOrderStatus   = errors.New("order status does not allow this operation")
	ErrInvalidPaymentAmount = errors.New("payment amount must be non-negative")
	ErrInvalidInput         = errors.New("invalid input")
)
