package background

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/metrics"
	"github.com/marketbay/vendor-ledger-service/internal/usecase"
)

type BackgroundTasks struct {
	LedgerUsecase usecase.LedgerUsecase
	Metrics       *metrics.LedgerMetrics
	Logger        *zap.Logger
}

func NewBackgroundTasks(ledgerUC usecase.LedgerUsecase, ledgerMetrics *metrics.LedgerMetrics, log *zap.Logger) *BackgroundTasks {
	return &BackgroundTasks{
		LedgerUsecase: ledgerUC,
		Metrics:       ledgerMetrics,
		Logger:        log,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startOutstandingBalanceRefresh(ctx)
}

// startOutstandingBalanceRefresh periodically recomputes the ready-for-payout
// ledger and mirrors each vendor's outstanding balance into a gauge.
func (bt *BackgroundTasks) startOutstandingBalanceRefresh(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ledger, err := bt.LedgerUsecase.GetLedger(ctx, true, "")
			if err != nil {
				bt.Logger.Warn("outstanding balance refresh failed", zap.Error(err))
				continue
			}
			for _, agg := range ledger.VendorAggregates {
				bt.Metrics.SetVendorOutstandingBalance(agg.VendorID, agg.Balance)
			}
		}
	}
}
