package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marketbay/vendor-ledger-service/internal/domain"
	"github.com/marketbay/vendor-ledger-service/internal/usecase"
)

// VendorIDHeader carries the authenticated vendor identity. Token validation
// happens upstream at the gateway; by the time a request lands here the header
// is trusted.
const VendorIDHeader = "X-Vendor-ID"

type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

type createOrderRequest struct {
	CustomerID  string  `json:"customer_id" binding:"required"`
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shipping_fee"`
}

type returnRequest struct {
	Type string `json:"type" binding:"required"`
}

type orderResponse struct {
	ID           string     `json:"id"`
	OrderNumber  string     `json:"order_number"`
	CustomerID   string     `json:"customer_id"`
	VendorID     string     `json:"vendor_id,omitempty"`
	Status       string     `json:"status"`
	Subtotal     float64    `json:"subtotal"`
	ShippingFee  float64    `json:"shipping_fee"`
	Total        float64    `json:"total"`
	ReturnStatus string     `json:"return_status,omitempty"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toOrderResponse(order *domain.Order) orderResponse {
	return orderResponse{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		CustomerID:   order.CustomerID,
		VendorID:     order.VendorID,
		Status:       string(order.Status),
		Subtotal:     order.Subtotal,
		ShippingFee:  order.ShippingFee,
		Total:        order.Total,
		ReturnStatus: string(order.ReturnStatus),
		AcceptedAt:   order.AcceptedAt,
		DeliveredAt:  order.DeliveredAt,
		CreatedAt:    order.CreatedAt,
	}
}

// CreateOrder handles POST /orders.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_input"})
		return
	}

	order, err := h.orderUsecase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		CustomerID:  req.CustomerID,
		Subtotal:    req.Subtotal,
		ShippingFee: req.ShippingFee,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// AcceptOrder handles POST /orders/:id/accept.
func (h *OrderHandler) AcceptOrder(c *gin.Context) {
	vendorID := c.GetHeader(VendorIDHeader)
	if vendorID == "" {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing vendor identity", Code: "unauthorized"})
		return
	}

	order, err := h.orderUsecase.AcceptOrder(c.Request.Context(), c.Param("id"), vendorID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ListUnassignedOrders handles GET /orders/unassigned, oldest first.
func (h *OrderHandler) ListUnassignedOrders(c *gin.Context) {
	orders, err := h.orderUsecase.ListUnassignedOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]orderResponse, len(orders))
	for i, order := range orders {
		response[i] = toOrderResponse(order)
	}

	c.JSON(http.StatusOK, gin.H{"orders": response})
}

// MarkDelivered handles POST /orders/:id/delivered.
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	order, err := h.orderUsecase.MarkDelivered(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// SetReturnStatus handles PUT /orders/:id/return.
func (h *OrderHandler) SetReturnStatus(c *gin.Context) {
	var req returnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_input"})
		return
	}

	order, err := h.orderUsecase.SetReturnStatus(c.Request.Context(), c.Param("id"), domain.ReturnStatus(req.Type))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// GetOrder handles GET /orders/:id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderUsecase.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}
