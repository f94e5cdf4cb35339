package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LedgerMetrics holds the service counters and gauges.
type LedgerMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec

	OrdersAcceptedTotal       prometheus.CounterVec
	OrderAcceptConflictsTotal prometheus.CounterVec

	OrdersDeliveredTotal prometheus.CounterVec

	VendorPaymentsRecordedTotal prometheus.CounterVec
	VendorPaymentAmountTotal    prometheus.CounterVec

	LedgerComputeDuration prometheus.HistogramVec

	// Refreshed by the background task, exposes the admin-facing balance.
	VendorOutstandingBalance prometheus.GaugeVec

	ErrorsTotal prometheus.CounterVec
}

func NewLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total number of orders created through intake",
			},
			[]string{"status"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total subtotal amount of created orders",
			},
			[]string{"status"},
		),

		OrdersAcceptedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_accepted_total",
				Help: "Total number of orders claimed by vendors",
			},
			[]string{"vendor_id"},
		),

		OrderAcceptConflictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_accept_conflicts_total",
				Help: "Rejected claim attempts by reason (already_assigned, invalid_status, not_found)",
			},
			[]string{"reason"},
		),

		OrdersDeliveredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_delivered_total",
				Help: "Total number of orders marked delivered",
			},
			[]string{"vendor_id"},
		),

		VendorPaymentsRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vendor_payments_recorded_total",
				Help: "Total number of ledger payment record updates",
			},
			[]string{"vendor_id"},
		),

		VendorPaymentAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vendor_payment_amount_total",
				Help: "Latest recorded paid-to-date amounts, accumulated per update",
			},
			[]string{"vendor_id"},
		),

		LedgerComputeDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_compute_duration_seconds",
				Help:    "Time to build the payout ledger in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"ready_only"},
		),

		VendorOutstandingBalance: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vendor_outstanding_balance",
				Help: "Net payout owed to a vendor after recorded payments",
			},
			[]string{"vendor_id"},
		),

		ErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_errors_total",
				Help: "Total number of operation errors by type",
			},
			[]string{"operation", "error_type"},
		),
	}
}

func (m *LedgerMetrics) RecordOrderCreated(status string, subtotal float64) {
	m.OrdersCreatedTotal.WithLabelValues(status).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(status).Add(subtotal)
}

func (m *LedgerMetrics) RecordOrderAccepted(vendorID string) {
	m.OrdersAcceptedTotal.WithLabelValues(vendorID).Inc()
}

func (m *LedgerMetrics) RecordAcceptConflict(reason string) {
	m.OrderAcceptConflictsTotal.WithLabelValues(reason).Inc()
}

func (m *LedgerMetrics) RecordOrderDelivered(vendorID string) {
	m.OrdersDeliveredTotal.WithLabelValues(vendorID).Inc()
}

func (m *LedgerMetrics) RecordVendorPayment(vendorID string, paid float64) {
	m.VendorPaymentsRecordedTotal.WithLabelValues(vendorID).Inc()
	m.VendorPaymentAmountTotal.WithLabelValues(vendorID).Add(paid)
}

func (m *LedgerMetrics) RecordLedgerComputeDuration(readyOnly bool, seconds float64) {
	label := "false"
	if readyOnly {
		label = "true"
	}
	m.LedgerComputeDuration.WithLabelValues(label).Observe(seconds)
}

func (m *LedgerMetrics) SetVendorOutstandingBalance(vendorID string, balance float64) {
	m.VendorOutstandingBalance.WithLabelValues(vendorID).Set(balance)
}

func (m *LedgerMetrics) RecordError(operation, errorType string) {
	m.ErrorsTotal.WithLabelValues(operation, errorType).Inc()
}
