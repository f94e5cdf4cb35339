package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marketbay/vendor-ledger-service/internal/usecase"
)

type VendorHandler struct {
	vendorUsecase usecase.VendorUsecase
}

func NewVendorHandler(vendorUsecase usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{vendorUsecase: vendorUsecase}
}

type createVendorRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type vendorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateVendor handles POST /vendors.
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req createVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_input"})
		return
	}

	vendor, err := h.vendorUsecase.CreateVendor(c.Request.Context(), usecase.CreateVendorInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vendorResponse{
		ID:        vendor.ID,
		Name:      vendor.Name,
		Phone:     vendor.Phone,
		CreatedAt: vendor.CreatedAt,
	})
}

// GetVendor handles GET /vendors/:id.
func (h *VendorHandler) GetVendor(c *gin.Context) {
	vendor, err := h.vendorUsecase.GetVendorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendorResponse{
		ID:        vendor.ID,
		Name:      vendor.Name,
		Phone:     vendor.Phone,
		CreatedAt: vendor.CreatedAt,
	})
}
