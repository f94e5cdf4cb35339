package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marketbay/vendor-ledger-service/internal/domain"
	"github.com/marketbay/vendor-ledger-service/internal/usecase"
)

type LedgerHandler struct {
	ledgerUsecase usecase.LedgerUsecase
}

func NewLedgerHandler(ledgerUsecase usecase.LedgerUsecase) *LedgerHandler {
	return &LedgerHandler{ledgerUsecase: ledgerUsecase}
}

type payoutRowResponse struct {
	OrderID             string    `json:"order_id"`
	OrderNumber         string    `json:"order_number"`
	VendorID            string    `json:"vendor_id"`
	VendorName          string    `json:"vendor_name"`
	VendorPhone         string    `json:"vendor_phone"`
	Subtotal            float64   `json:"subtotal"`
	PlatformCommission  float64   `json:"platform_commission"`
	PayoutBeforeGateway float64   `json:"payout_before_gateway"`
	GatewayCharges      float64   `json:"gateway_charges"`
	NetPayout           float64   `json:"net_payout"`
	DeliveredAt         time.Time `json:"delivered_at"`
	ReturnDeadline      time.Time `json:"return_deadline"`
}

type vendorAggregateResponse struct {
	VendorID       string  `json:"vendor_id"`
	VendorName     string  `json:"vendor_name"`
	VendorPhone    string  `json:"vendor_phone"`
	OrderCount     int     `json:"order_count"`
	ProductTotal   float64 `json:"product_total"`
	GatewayCharges float64 `json:"gateway_charges"`
	NetPayout      float64 `json:"net_payout"`
	Paid           float64 `json:"paid"`
	Notes          string  `json:"notes"`
	Balance        float64 `json:"balance"`
}

type ledgerTotalsResponse struct {
	ProductTotal   float64 `json:"product_total"`
	GatewayCharges float64 `json:"gateway_charges"`
	NetPayout      float64 `json:"net_payout"`
}

type ledgerResponse struct {
	Rows             []payoutRowResponse       `json:"rows"`
	VendorAggregates []vendorAggregateResponse `json:"vendor_aggregates"`
	Totals           ledgerTotalsResponse      `json:"totals"`
}

type recordPaymentRequest struct {
	Paid  *float64 `json:"paid" binding:"required"`
	Notes string   `json:"notes"`
}

type paymentRecordResponse struct {
	VendorID  string    `json:"vendor_id"`
	Paid      float64   `json:"paid"`
	Notes     string    `json:"notes"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetLedger handles GET /vendor-ledger?readyOnly={bool}&search={string}.
// readyOnly defaults to true: only orders whose return window has elapsed.
func (h *LedgerHandler) GetLedger(c *gin.Context) {
	readyOnly := true
	if raw := c.Query("readyOnly"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "readyOnly must be a boolean", Code: "invalid_input"})
			return
		}
		readyOnly = parsed
	}

	ledger, err := h.ledgerUsecase.GetLedger(c.Request.Context(), readyOnly, c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toLedgerResponse(ledger))
}

// RecordPayment handles PUT /vendor-ledger/:vendorId.
func (h *LedgerHandler) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_input"})
		return
	}

	record, err := h.ledgerUsecase.RecordVendorPayment(c.Request.Context(), c.Param("vendorId"), *req.Paid, req.Notes)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, paymentRecordResponse{
		VendorID:  record.VendorID,
		Paid:      record.Paid,
		Notes:     record.Notes,
		UpdatedAt: record.UpdatedAt,
	})
}

func toLedgerResponse(ledger *domain.Ledger) ledgerResponse {
	rows := make([]payoutRowResponse, len(ledger.Rows))
	for i, row := range ledger.Rows {
		rows[i] = payoutRowResponse{
			OrderID:             row.OrderID,
			OrderNumber:         row.OrderNumber,
			VendorID:            row.VendorID,
			VendorName:          row.VendorName,
			VendorPhone:         row.VendorPhone,
			Subtotal:            row.Subtotal,
			PlatformCommission:  row.PlatformCommission,
			PayoutBeforeGateway: row.PayoutBeforeGateway,
			GatewayCharges:      row.GatewayCharges,
			NetPayout:           row.NetPayout,
			DeliveredAt:         row.DeliveredAt,
			ReturnDeadline:      row.ReturnDeadline,
		}
	}

	aggregates := make([]vendorAggregateResponse, len(ledger.VendorAggregates))
	for i, agg := range ledger.VendorAggregates {
		aggregates[i] = vendorAggregateResponse{
			VendorID:       agg.VendorID,
			VendorName:     agg.VendorName,
			VendorPhone:    agg.VendorPhone,
			OrderCount:     agg.OrderCount,
			ProductTotal:   agg.ProductTotal,
			GatewayCharges: agg.GatewayCharges,
			NetPayout:      agg.NetPayout,
			Paid:           agg.Paid,
			Notes:          agg.Notes,
			Balance:        agg.Balance,
		}
	}

	return ledgerResponse{
		Rows:             rows,
		VendorAggregates: aggregates,
		Totals: ledgerTotalsResponse{
			ProductTotal:   ledger.Totals.ProductTotal,
			GatewayCharges: ledger.Totals.GatewayCharges,
			NetPayout:      ledger.Totals.NetPayout,
		},
	}
}
