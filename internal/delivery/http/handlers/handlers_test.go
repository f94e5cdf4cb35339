package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marketbay/vendor-ledger-service/internal/domain"
	"github.com/marketbay/vendor-ledger-service/internal/usecase"
)

type stubOrderUsecase struct {
	createFn func(ctx context.Context, input usecase.CreateOrderInput) (*domain.Order, error)
	acceptFn func(ctx context.Context, orderID, vendorID string) (*domain.Order, error)
	listFn   func(ctx context.Context) ([]*domain.Order, error)
}

func (s *stubOrderUsecase) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*domain.Order, error) {
	return s.createFn(ctx, input)
}

func (s *stubOrderUsecase) AcceptOrder(ctx context.Context, orderID, vendorID string) (*domain.Order, error) {
	return s.acceptFn(ctx, orderID, vendorID)
}

func (s *stubOrderUsecase) ListUnassignedOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.listFn(ctx)
}

func (s *stubOrderUsecase) MarkDelivered(_ context.Context, _ string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func (s *stubOrderUsecase) SetReturnStatus(_ context.Context, _ string, _ domain.ReturnStatus) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func (s *stubOrderUsecase) GetOrderByID(_ context.Context, _ string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

type stubLedgerUsecase struct {
	getFn    func(ctx context.Context, readyOnly bool, search string) (*domain.Ledger, error)
	recordFn func(ctx context.Context, vendorID string, paid float64, notes string) (*domain.VendorLedgerPaymentRecord, error)
}

func (s *stubLedgerUsecase) GetLedger(ctx context.Context, readyOnly bool, search string) (*domain.Ledger, error) {
	return s.getFn(ctx, readyOnly, search)
}

func (s *stubLedgerUsecase) RecordVendorPayment(ctx context.Context, vendorID string, paid float64, notes string) (*domain.VendorLedgerPaymentRecord, error) {
	return s.recordFn(ctx, vendorID, paid, notes)
}

type stubVendorUsecase struct{}

func (s *stubVendorUsecase) CreateVendor(_ context.Context, input usecase.CreateVendorInput) (*domain.Vendor, error) {
	return &domain.Vendor{ID: "vendor-a", Name: input.Name, Phone: input.Phone}, nil
}

func (s *stubVendorUsecase) GetVendorByID(_ context.Context, vendorID string) (*domain.Vendor, error) {
	if vendorID != "vendor-a" {
		return nil, domain.ErrVendorNotFound
	}
	return &domain.Vendor{ID: "vendor-a", Name: "Vendor A"}, nil
}

func newTestRouter(orderUC usecase.OrderUsecase, ledgerUC usecase.LedgerUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(
		NewOrderHandler(orderUC),
		NewLedgerHandler(ledgerUC),
		NewVendorHandler(&stubVendorUsecase{}),
		zap.NewNop(),
	)
}

func emptyLedgerUsecase() *stubLedgerUsecase {
	return &stubLedgerUsecase{
		getFn: func(context.Context, bool, string) (*domain.Ledger, error) {
			return &domain.Ledger{}, nil
		},
		recordFn: func(context.Context, string, float64, string) (*domain.VendorLedgerPaymentRecord, error) {
			return &domain.VendorLedgerPaymentRecord{}, nil
		},
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAcceptOrderHandler(t *testing.T) {
	pendingOrder := &domain.Order{
		ID:          "order-1",
		OrderNumber: "ORD-0000000001",
		VendorID:    "vendor-a",
		Status:      domain.StatusProcessing,
	}

	cases := []struct {
		name       string
		err        error
		header     string
		wantStatus int
		wantCode   string
	}{
		{"winner gets the order", nil, "vendor-a", http.StatusOK, ""},
		{"already assigned", domain.ErrOrderAlreadyAssigned, "vendor-b", http.StatusConflict, "already_assigned"},
		{"order not found", domain.ErrOrderNotFound, "vendor-a", http.StatusNotFound, "not_found"},
		{"wrong status", domain.ErrInvalidOrderStatus, "vendor-a", http.StatusBadRequest, "invalid_status"},
		{"vendor not found", domain.ErrVendorNotFound, "ghost", http.StatusNotFound, "not_found"},
		{"missing identity header", nil, "", http.StatusUnauthorized, "unauthorized"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orderUC := &stubOrderUsecase{
				acceptFn: func(_ context.Context, orderID, vendorID string) (*domain.Order, error) {
					if tc.err != nil {
						return nil, tc.err
					}
					return pendingOrder, nil
				},
			}
			router := newTestRouter(orderUC, emptyLedgerUsecase())

			headers := map[string]string{}
			if tc.header != "" {
				headers[VendorIDHeader] = tc.header
			}
			rec := doJSON(t, router, http.MethodPost, "/orders/order-1/accept", nil, headers)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d (body %s)", tc.wantStatus, rec.Code, rec.Body.String())
			}
			if tc.wantCode != "" {
				var resp errorResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decode error body: %v", err)
				}
				if resp.Code != tc.wantCode {
					t.Fatalf("expected code %q, got %q", tc.wantCode, resp.Code)
				}
			}
		})
	}
}

func TestCreateOrderHandler(t *testing.T) {
	orderUC := &stubOrderUsecase{
		createFn: func(_ context.Context, input usecase.CreateOrderInput) (*domain.Order, error) {
			return &domain.Order{
				ID:          "order-1",
				OrderNumber: "ORD-0000000001",
				CustomerID:  input.CustomerID,
				Status:      domain.StatusPending,
				Subtotal:    input.Subtotal,
				ShippingFee: input.ShippingFee,
				Total:       input.Subtotal + input.ShippingFee,
			}, nil
		},
	}
	router := newTestRouter(orderUC, emptyLedgerUsecase())

	t.Run("creates pending order", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/orders", gin.H{
			"customer_id": "customer-1",
			"subtotal":    10000,
			"shipping_fee": 500,
		}, nil)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %s)", rec.Code, rec.Body.String())
		}
		var resp orderResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if resp.Status != string(domain.StatusPending) || resp.Total != 10500 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("missing customer id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/orders", gin.H{"subtotal": 10000}, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestListUnassignedOrdersHandler(t *testing.T) {
	orderUC := &stubOrderUsecase{
		listFn: func(context.Context) ([]*domain.Order, error) {
			return []*domain.Order{
				{ID: "order-1", Status: domain.StatusPending},
				{ID: "order-2", Status: domain.StatusConfirmed},
			}, nil
		},
	}
	router := newTestRouter(orderUC, emptyLedgerUsecase())

	rec := doJSON(t, router, http.MethodGet, "/orders/unassigned", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Orders []orderResponse `json:"orders"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(resp.Orders) != 2 || resp.Orders[0].ID != "order-1" {
		t.Fatalf("unexpected orders: %+v", resp.Orders)
	}
}

func TestGetLedgerHandler(t *testing.T) {
	deliveredAt := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC)
	ledger := &domain.Ledger{
		Rows: []domain.PayoutRow{{
			OrderID:             "order-1",
			OrderNumber:         "ORD-0000000001",
			VendorID:            "vendor-a",
			VendorName:          "Vendor A",
			Subtotal:            10000,
			PlatformCommission:  2000,
			PayoutBeforeGateway: 8000,
			GatewayCharges:      160,
			NetPayout:           7840,
			DeliveredAt:         deliveredAt,
			ReturnDeadline:      deliveredAt.Add(72 * time.Hour),
		}},
		VendorAggregates: []domain.VendorAggregate{{
			VendorID:   "vendor-a",
			VendorName: "Vendor A",
			OrderCount: 1,
			NetPayout:  7840,
			Paid:       5000,
			Balance:    2840,
		}},
		Totals: domain.LedgerTotals{ProductTotal: 10000, GatewayCharges: 160, NetPayout: 7840},
	}

	t.Run("default readyOnly true", func(t *testing.T) {
		var gotReadyOnly bool
		ledgerUC := &stubLedgerUsecase{
			getFn: func(_ context.Context, readyOnly bool, _ string) (*domain.Ledger, error) {
				gotReadyOnly = readyOnly
				return ledger, nil
			},
		}
		router := newTestRouter(&stubOrderUsecase{}, ledgerUC)

		rec := doJSON(t, router, http.MethodGet, "/vendor-ledger", nil, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !gotReadyOnly {
			t.Fatal("expected readyOnly to default to true")
		}

		var resp ledgerResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(resp.Rows) != 1 || resp.Rows[0].NetPayout != 7840 {
			t.Fatalf("unexpected rows: %+v", resp.Rows)
		}
		if len(resp.VendorAggregates) != 1 || resp.VendorAggregates[0].Balance != 2840 {
			t.Fatalf("unexpected aggregates: %+v", resp.VendorAggregates)
		}
		if resp.Totals.NetPayout != 7840 {
			t.Fatalf("unexpected totals: %+v", resp.Totals)
		}
	})

	t.Run("readyOnly false passes through", func(t *testing.T) {
		var gotReadyOnly bool
		ledgerUC := &stubLedgerUsecase{
			getFn: func(_ context.Context, readyOnly bool, _ string) (*domain.Ledger, error) {
				gotReadyOnly = readyOnly
				return ledger, nil
			},
		}
		router := newTestRouter(&stubOrderUsecase{}, ledgerUC)

		rec := doJSON(t, router, http.MethodGet, "/vendor-ledger?readyOnly=false", nil, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotReadyOnly {
			t.Fatal("expected readyOnly false")
		}
	})

	t.Run("invalid readyOnly", func(t *testing.T) {
		router := newTestRouter(&stubOrderUsecase{}, emptyLedgerUsecase())
		rec := doJSON(t, router, http.MethodGet, "/vendor-ledger?readyOnly=maybe", nil, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("search forwarded", func(t *testing.T) {
		var gotSearch string
		ledgerUC := &stubLedgerUsecase{
			getFn: func(_ context.Context, _ bool, search string) (*domain.Ledger, error) {
				gotSearch = search
				return ledger, nil
			},
		}
		router := newTestRouter(&stubOrderUsecase{}, ledgerUC)

		doJSON(t, router, http.MethodGet, "/vendor-ledger?search=acme", nil, nil)
		if gotSearch != "acme" {
			t.Fatalf("expected search %q, got %q", "acme", gotSearch)
		}
	})
}

func TestRecordPaymentHandler(t *testing.T) {
	t.Run("records payment", func(t *testing.T) {
		updatedAt := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
		ledgerUC := &stubLedgerUsecase{
			recordFn: func(_ context.Context, vendorID string, paid float64, notes string) (*domain.VendorLedgerPaymentRecord, error) {
				return &domain.VendorLedgerPaymentRecord{
					VendorID:  vendorID,
					Paid:      paid,
					Notes:     notes,
					UpdatedAt: updatedAt,
				}, nil
			},
		}
		router := newTestRouter(&stubOrderUsecase{}, ledgerUC)

		rec := doJSON(t, router, http.MethodPut, "/vendor-ledger/vendor-a", gin.H{
			"paid":  7000,
			"notes": "june batch",
		}, nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
		}
		var resp paymentRecordResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if resp.VendorID != "vendor-a" || resp.Paid != 7000 || resp.Notes != "june batch" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("zero is a valid amount", func(t *testing.T) {
		var gotPaid = -1.0
		ledgerUC := &stubLedgerUsecase{
			recordFn: func(_ context.Context, _ string, paid float64, _ string) (*domain.VendorLedgerPaymentRecord, error) {
				gotPaid = paid
				return &domain.VendorLedgerPaymentRecord{}, nil
			},
		}
		router := newTestRouter(&stubOrderUsecase{}, ledgerUC)

		rec := doJSON(t, router, http.MethodPut, "/vendor-ledger/vendor-a", gin.H{"paid": 0}, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
		}
		if gotPaid != 0 {
			t.Fatalf("expected paid 0 forwarded, got %v", gotPaid)
		}
	})

	t.Run("missing paid field", func(t *testing.T) {
		router := newTestRouter(&stubOrderUsecase{}, emptyLedgerUsecase())
		rec := doJSON(t, router, http.MethodPut, "/vendor-ledger/vendor-a", gin.H{"notes": "no amount"}, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("negative amount rejected by usecase", func(t *testing.T) {
		ledgerUC := &stubLedgerUsecase{
			recordFn: func(context.Context, string, float64, string) (*domain.VendorLedgerPaymentRecord, error) {
				return nil, domain.ErrInvalidPaymentAmount
			},
		}
		router := newTestRouter(&stubOrderUsecase{}, ledgerUC)

		rec := doJSON(t, router, http.MethodPut, "/vendor-ledger/vendor-a", gin.H{"paid": -100}, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown vendor", func(t *testing.T) {
		ledgerUC := &stubLedgerUsecase{
			recordFn: func(context.Context, string, float64, string) (*domain.VendorLedgerPaymentRecord, error) {
				return nil, domain.ErrVendorNotFound
			},
		}
		router := newTestRouter(&stubOrderUsecase{}, ledgerUC)

		rec := doJSON(t, router, http.MethodPut, "/vendor-ledger/ghost", gin.H{"paid": 100}, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestVendorHandlers(t *testing.T) {
	router := newTestRouter(&stubOrderUsecase{}, emptyLedgerUsecase())

	t.Run("create vendor", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/vendors", gin.H{"name": "Vendor A", "phone": "555-0100"}, nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
	})

	t.Run("name required", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/vendors", gin.H{"phone": "555-0100"}, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("get vendor not found", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/vendors/ghost", nil, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(&stubOrderUsecase{}, emptyLedgerUsecase())
	rec := doJSON(t, router, http.MethodGet, "/healthz", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
