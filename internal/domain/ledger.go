package domain

import "time"

// VendorLedgerPaymentRecord stores the cumulative amount already paid out to a
// vendor. Edits overwrite the previous value, no history is kept.
type VendorLedgerPaymentRecord struct {
	VendorID  string
	Paid      float64
	Notes     string
	UpdatedAt time.Time
}

// PayoutRow is the derived payout breakdown for a single eligible order.
// All monetary fields are computed at read time, never stored.
type PayoutRow struct {
	OrderID             string
	OrderNumber         string
	VendorID            string
	VendorName          string
	VendorPhone         string
	Subtotal            float64
	PlatformCommission  float64
	PayoutBeforeGateway float64
	GatewayCharges      float64
	NetPayout           float64
	DeliveredAt         time.Time
	ReturnDeadline      time.Time
}

type VendorAggregate struct {
	VendorID       string
	VendorName     string
	VendorPhone    string
	OrderCount     int
	ProductTotal   float64
	GatewayCharges float64
	NetPayout      float64
	Paid           float64
	Notes          string
	Balance        float64
}

type LedgerTotals struct {
	ProductTotal   float64
	GatewayCharges float64
	NetPayout      float64
}

type Ledger struct {
	Rows             []PayoutRow
	VendorAggregates []VendorAggregate
	Totals           LedgerTotals
}
