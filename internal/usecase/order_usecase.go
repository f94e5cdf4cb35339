package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"

	"github.com/marketbay/vendor-ledger-service/internal/clock"
	"github.com/marketbay/vendor-ledger-service/internal/domain"
	publisher "github.com/marketbay/vendor-ledger-service/internal/infrastructure/kafka"
	"github.com/marketbay/vendor-ledger-service/internal/infrastructure/metrics"
)

const orderEventsTopic = "order-events"

// EventPublisher is the slice of the kafka publisher the usecases need.
type EventPublisher interface {
	PublishOrderEvent(topic string, event publisher.OrderEvent) error
	PublishPaymentEvent(topic string, event publisher.PaymentEvent) error
}

type CreateOrderInput struct {
	CustomerID  string
	Subtotal    float64
	ShippingFee float64
}

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	AcceptOrder(ctx context.Context, orderID, vendorID string) (*domain.Order, error)
	ListUnassignedOrders(ctx context.Context) ([]*domain.Order, error)
	MarkDelivered(ctx context.Context, orderID string) (*domain.Order, error)
	SetReturnStatus(ctx context.Context, orderID string, status domain.ReturnStatus) (*domain.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
}

type DefaultOrderUsecase struct {
	OrderRepo  domain.OrderRepository
	VendorRepo domain.VendorRepository
	Publisher  EventPublisher
	Metrics    *metrics.LedgerMetrics
	Clock      clock.Clock
	Logger     *zap.Logger

	orderNumber func() string
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	vendorRepo domain.VendorRepository,
	eventPublisher EventPublisher,
	ledgerMetrics *metrics.LedgerMetrics,
	clk clock.Clock,
	log *zap.Logger) *DefaultOrderUsecase {

	numberGen, err := nanoid.CustomASCII("0123456789", 10)
	if err != nil {
		panic(err)
	}

	return &DefaultOrderUsecase{
		OrderRepo:   orderRepo,
		VendorRepo:  vendorRepo,
		Publisher:   eventPublisher,
		Metrics:     ledgerMetrics,
		Clock:       clk,
		Logger:      log,
		orderNumber: func() string { return "ORD-" + numberGen() },
	}
}

func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if input.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", domain.ErrInvalidInput)
	}
	if input.Subtotal < 0 || input.ShippingFee < 0 {
		return nil, fmt.Errorf("%w: amounts must be non-negative", domain.ErrInvalidInput)
	}

	now := uc.Clock.Now()
	order := &domain.Order{
		ID:          uuid.New().String(),
		OrderNumber: uc.orderNumber(),
		CustomerID:  input.CustomerID,
		Status:      domain.StatusPending,
		Subtotal:    input.Subtotal,
		ShippingFee: input.ShippingFee,
		Total:       input.Subtotal + input.ShippingFee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.OrderRepo.CreateOrder(ctx, order); err != nil {
		uc.recordError("create_order", "repo")
		return nil, err
	}

	uc.recordOrderCreated(order)
	uc.publishOrderEvent(order)

	return order, nil
}

// AcceptOrder claims an unassigned order for a vendor. The winner of a race
// is decided by the repository's conditional update, not here.
func (uc *DefaultOrderUsecase) AcceptOrder(ctx context.Context, orderID, vendorID string) (*domain.Order, error) {
	if _, err := uc.VendorRepo.GetVendorByID(ctx, vendorID); err != nil {
		uc.recordAcceptConflict(err)
		return nil, err
	}

	order, err := uc.OrderRepo.AssignVendor(ctx, orderID, vendorID, uc.Clock.Now())
	if err != nil {
		uc.recordAcceptConflict(err)
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderAccepted(vendorID)
	}
	uc.publishOrderEvent(order)

	uc.Logger.Info("order accepted",
		zap.String("order_id", order.ID),
		zap.String("vendor_id", vendorID),
	)

	return order, nil
}

func (uc *DefaultOrderUsecase) ListUnassignedOrders(ctx context.Context) ([]*domain.Order, error) {
	return uc.OrderRepo.ListUnassignedOrders(ctx)
}

func (uc *DefaultOrderUsecase) MarkDelivered(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.MarkDelivered(ctx, orderID, uc.Clock.Now())
	if err != nil {
		uc.recordError("mark_delivered", errorType(err))
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderDelivered(order.VendorID)
	}
	uc.publishOrderEvent(order)

	return order, nil
}

func (uc *DefaultOrderUsecase) SetReturnStatus(ctx context.Context, orderID string, status domain.ReturnStatus) (*domain.Order, error) {
	if !domain.ValidReturnStatus(status) {
		return nil, fmt.Errorf("%w: unknown return status %q", domain.ErrInvalidInput, status)
	}

	order, err := uc.OrderRepo.SetReturnStatus(ctx, orderID, status)
	if err != nil {
		uc.recordError("set_return_status", errorType(err))
		return nil, err
	}

	return order, nil
}

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(ctx, orderID)
}

func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order) {
	if uc.Publisher == nil {
		return
	}

	event := publisher.OrderEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		VendorID:    order.VendorID,
		Status:      string(order.Status),
		Subtotal:    order.Subtotal,
		Total:       order.Total,
	}
	if err := uc.Publisher.PublishOrderEvent(orderEventsTopic, event); err != nil {
		uc.Logger.Warn("failed to publish order event",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}
}

func (uc *DefaultOrderUsecase) recordOrderCreated(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderCreated(string(order.Status), order.Subtotal)
}

func (uc *DefaultOrderUsecase) recordAcceptConflict(err error) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordAcceptConflict(errorType(err))
}

func (uc *DefaultOrderUsecase) recordError(operation, errType string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordError(operation, errType)
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrOrderAlreadyAssigned):
		return "already_assigned"
	case errors.Is(err, domain.ErrInvalidOrderStatus):
		return "invalid_status"
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrVendorNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPaymentAmount):
		return "invalid_input"
	default:
		return "internal"
	}
}
