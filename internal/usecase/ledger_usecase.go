package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/marketbay/vendor-ledger-service/internal/clock"
	"github.com/marketbay/vendor-ledger-service/internal/domain"
	publisher "github.com/marketbay/vendor-ledger-service/internal/infrastructure/kafka"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/metrics"
)

const ledgerEventsTopic = "ledger-events"

// LedgerParams are the payout derivation knobs. Defaults come from config.
type LedgerParams struct {
	ReturnWindowDays int
	CommissionRate   float64
	GatewayRate      float64
	ReadyOnly        bool
}

type LedgerUsecase interface {
	GetLedger(ctx context.Context, readyOnly bool, search string) (*domain.Ledger, error)
	RecordVendorPayment(ctx context.Context, vendorID string, paid float64, notes string) (*domain.VendorLedgerPaymentRecord, error)
}

type DefaultLedgerUsecase struct {
	OrderRepo  domain.OrderRepository
	LedgerRepo domain.LedgerRepository
	VendorRepo domain.VendorRepository
	Publisher  EventPublisher
	Metrics    *metrics.LedgerMetrics
	Clock      clock.Clock
	Logger     *zap.Logger
	Params     LedgerParams
}

func NewDefaultLedgerUsecase(
	orderRepo domain.OrderRepository,
	ledgerRepo domain.LedgerRepository,
	vendorRepo domain.VendorRepository,
	eventPublisher EventPublisher,
	ledgerMetrics *metrics.LedgerMetrics,
	clk clock.Clock,
	log *zap.Logger,
	params LedgerParams) *DefaultLedgerUsecase {

	return &DefaultLedgerUsecase{
		OrderRepo:  orderRepo,
		LedgerRepo: ledgerRepo,
		VendorRepo: vendorRepo,
		Publisher:  eventPublisher,
		Metrics:    ledgerMetrics,
		Clock:      clk,
		Logger:     log,
		Params:     params,
	}
}

func (uc *DefaultLedgerUsecase) GetLedger(ctx context.Context, readyOnly bool, search string) (*domain.Ledger, error) {
	start := time.Now()

	orders, err := uc.OrderRepo.ListDeliveredOrders(ctx, search)
	if err != nil {
		return nil, err
	}
	records, err := uc.LedgerRepo.GetPaymentRecords(ctx)
	if err != nil {
		return nil, err
	}

	params := uc.Params
	params.ReadyOnly = readyOnly
	ledger := ComputeLedger(orders, records, uc.Clock.Now(), params)

	if uc.Metrics != nil {
		uc.Metrics.RecordLedgerComputeDuration(readyOnly, time.Since(start).Seconds())
	}

	return ledger, nil
}

func (uc *DefaultLedgerUsecase) RecordVendorPayment(ctx context.Context, vendorID string, paid float64, notes string) (*domain.VendorLedgerPaymentRecord, error) {
	if paid < 0 {
		return nil, fmt.Errorf("%w: got %v", domain.ErrInvalidPaymentAmount, paid)
	}
	if _, err := uc.VendorRepo.GetVendorByID(ctx, vendorID); err != nil {
		return nil, err
	}

	record := &domain.VendorLedgerPaymentRecord{
		VendorID:  vendorID,
		Paid:      paid,
		Notes:     notes,
		UpdatedAt: uc.Clock.Now(),
	}
	if err := uc.LedgerRepo.UpsertPaymentRecord(ctx, record); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordVendorPayment(vendorID, paid)
	}
	if uc.Publisher != nil {
		event := publisher.PaymentEvent{VendorID: vendorID, Paid: paid, Notes: notes}
		if err := uc.Publisher.PublishPaymentEvent(ledgerEventsTopic, event); err != nil {
			uc.Logger.Warn("failed to publish payment event",
				zap.String("vendor_id", vendorID),
				zap.Error(err),
			)
		}
	}

	return record, nil
}

// ComputeLedger derives the payout ledger from a snapshot of delivered orders
// and the per-vendor payment records. Pure, safe to recompute at will.
func ComputeLedger(orders []*domain.Order, records []*domain.VendorLedgerPaymentRecord, now time.Time, params LedgerParams) *domain.Ledger {
	window := time.Duration(params.ReturnWindowDays) * 24 * time.Hour

	rows := make([]domain.PayoutRow, 0, len(orders))
	for _, order := range orders {
		if !eligible(order, now, window, params.ReadyOnly) {
			continue
		}
		rows = append(rows, deriveRow(order, window, params))
	}

	// Most recently delivered first.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DeliveredAt.After(rows[j].DeliveredAt)
	})

	var totals domain.LedgerTotals
	byVendor := make(map[string]*domain.VendorAggregate)
	vendorOrder := make([]string, 0)

	for _, row := range rows {
		totals.ProductTotal += row.Subtotal
		totals.GatewayCharges += row.GatewayCharges
		totals.NetPayout += row.NetPayout

		agg, ok := byVendor[row.VendorID]
		if !ok {
			agg = &domain.VendorAggregate{
				VendorID:    row.VendorID,
				VendorName:  row.VendorName,
				VendorPhone: row.VendorPhone,
			}
			byVendor[row.VendorID] = agg
			vendorOrder = append(vendorOrder, row.VendorID)
		}
		agg.OrderCount++
		agg.ProductTotal += row.Subtotal
		agg.GatewayCharges += row.GatewayCharges
		agg.NetPayout += row.NetPayout
	}

	paidByVendor := make(map[string]*domain.VendorLedgerPaymentRecord, len(records))
	for _, record := range records {
		paidByVendor[record.VendorID] = record
	}

	aggregates := make([]domain.VendorAggregate, 0, len(byVendor))
	for _, vendorID := range vendorOrder {
		agg := byVendor[vendorID]
		if record, ok := paidByVendor[vendorID]; ok {
			agg.Paid = record.Paid
			agg.Notes = record.Notes
		}
		// May go negative when the admin over-records a payment; shown as an
		// alert state, not rejected.
		agg.Balance = agg.NetPayout - agg.Paid
		aggregates = append(aggregates, *agg)
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		if aggregates[i].NetPayout != aggregates[j].NetPayout {
			return aggregates[i].NetPayout > aggregates[j].NetPayout
		}
		return aggregates[i].VendorID < aggregates[j].VendorID
	})

	return &domain.Ledger{
		Rows:             rows,
		VendorAggregates: aggregates,
		Totals:           totals,
	}
}

func eligible(order *domain.Order, now time.Time, window time.Duration, readyOnly bool) bool {
	if order.VendorID == "" {
		return false
	}
	if order.Status != domain.StatusDelivered {
		return false
	}
	if order.ReturnStatus != domain.ReturnNone && order.ReturnStatus != domain.ReturnDenied {
		return false
	}
	if readyOnly {
		deadline := order.DeliveredAtOrFallback().Add(window)
		if !now.After(deadline) {
			return false
		}
	}
	return true
}

// deriveRow computes the payout breakdown for one order. The gateway charge is
// taken on the post-commission amount, not on the subtotal; the steps below
// depend on each other in this exact order.
func deriveRow(order *domain.Order, window time.Duration, params LedgerParams) domain.PayoutRow {
	deliveredAt := order.DeliveredAtOrFallback()

	platformCommission := order.Subtotal * params.CommissionRate
	payoutBeforeGateway := order.Subtotal * (1 - params.CommissionRate)
	gatewayCharges := payoutBeforeGateway * params.GatewayRate
	netPayout := payoutBeforeGateway - gatewayCharges

	row := domain.PayoutRow{
		OrderID:             order.ID,
		OrderNumber:         order.OrderNumber,
		VendorID:            order.VendorID,
		Subtotal:            order.Subtotal,
		PlatformCommission:  platformCommission,
		PayoutBeforeGateway: payoutBeforeGateway,
		GatewayCharges:      gatewayCharges,
		NetPayout:           netPayout,
		DeliveredAt:         deliveredAt,
		ReturnDeadline:      deliveredAt.Add(window),
	}
	if order.Vendor != nil {
		row.VendorName = order.Vendor.Name
		row.VendorPhone = order.Vendor.Phone
	}
	return row
}
