package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/marketbay/vendor-ledger-service/internal/domain"
	publisher "github.com/marketbay/vendor-ledger-service/internal/infrastructure/kafka"
)

// fakeOrderRepo serializes AssignVendor behind a mutex the way the database
// serializes the conditional update, so races resolve to a single winner.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[string]*domain.Order)}
	for _, order := range orders {
		cp := *order
		repo.orders[order.ID] = &cp
	}
	return repo
}

func (r *fakeOrderRepo) CreateOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(_ context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) ListUnassignedOrders(_ context.Context) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.Order
	for _, order := range r.orders {
		if order.VendorID == "" && order.Acceptable() {
			cp := *order
			result = append(result, &cp)
		}
	}
	sortByCreatedAtAsc(result)
	return result, nil
}

func (r *fakeOrderRepo) AssignVendor(_ context.Context, orderID, vendorID string, acceptedAt time.Time) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if order.VendorID != "" {
		return nil, domain.ErrOrderAlreadyAssigned
	}
	if !order.Acceptable() {
		return nil, domain.ErrInvalidOrderStatus
	}
	order.VendorID = vendorID
	order.Status = domain.StatusProcessing
	order.AcceptedAt = &acceptedAt
	order.UpdatedAt = acceptedAt
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) MarkDelivered(_ context.Context, orderID string, deliveredAt time.Time) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if order.Status != domain.StatusProcessing && order.Status != domain.StatusShipped {
		return nil, domain.ErrInvalidOrderStatus
	}
	order.Status = domain.StatusDelivered
	order.DeliveredAt = &deliveredAt
	order.UpdatedAt = deliveredAt
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) SetReturnStatus(_ context.Context, orderID string, status domain.ReturnStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	order.ReturnStatus = status
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) ListDeliveredOrders(_ context.Context, search string) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.Order
	for _, order := range r.orders {
		if order.Status != domain.StatusDelivered {
			continue
		}
		cp := *order
		result = append(result, &cp)
	}
	return result, nil
}

func sortByCreatedAtAsc(orders []*domain.Order) {
	for i := 1; i < len(orders); i++ {
		for j := i; j > 0 && orders[j].CreatedAt.Before(orders[j-1].CreatedAt); j-- {
			orders[j], orders[j-1] = orders[j-1], orders[j]
		}
	}
}

type fakeVendorRepo struct {
	mu      sync.Mutex
	vendors map[string]*domain.Vendor
}

func newFakeVendorRepo(vendors ...*domain.Vendor) *fakeVendorRepo {
	repo := &fakeVendorRepo{vendors: make(map[string]*domain.Vendor)}
	for _, vendor := range vendors {
		cp := *vendor
		repo.vendors[vendor.ID] = &cp
	}
	return repo
}

func (r *fakeVendorRepo) CreateVendor(_ context.Context, vendor *domain.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *vendor
	r.vendors[vendor.ID] = &cp
	return nil
}

func (r *fakeVendorRepo) GetVendorByID(_ context.Context, vendorID string) (*domain.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vendor, ok := r.vendors[vendorID]
	if !ok {
		return nil, domain.ErrVendorNotFound
	}
	cp := *vendor
	return &cp, nil
}

type fakeLedgerRepo struct {
	mu      sync.Mutex
	records map[string]*domain.VendorLedgerPaymentRecord
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{records: make(map[string]*domain.VendorLedgerPaymentRecord)}
}

func (r *fakeLedgerRepo) GetPaymentRecords(_ context.Context) ([]*domain.VendorLedgerPaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.VendorLedgerPaymentRecord
	for _, record := range r.records {
		cp := *record
		result = append(result, &cp)
	}
	return result, nil
}

func (r *fakeLedgerRepo) GetPaymentRecord(_ context.Context, vendorID string) (*domain.VendorLedgerPaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[vendorID]
	if !ok {
		return nil, nil
	}
	cp := *record
	return &cp, nil
}

func (r *fakeLedgerRepo) UpsertPaymentRecord(_ context.Context, record *domain.VendorLedgerPaymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *record
	r.records[record.VendorID] = &cp
	return nil
}

type fakePublisher struct {
	mu            sync.Mutex
	orderEvents   []publisher.OrderEvent
	paymentEvents []publisher.PaymentEvent
}

func (p *fakePublisher) PublishOrderEvent(_ string, event publisher.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orderEvents = append(p.orderEvents, event)
	return nil
}

func (p *fakePublisher) PublishPaymentEvent(_ string, event publisher.PaymentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paymentEvents = append(p.paymentEvents, event)
	return nil
}
