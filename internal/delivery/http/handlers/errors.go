package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketbay/vendor-ledger-service/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError maps domain errors to HTTP statuses. AlreadyAssigned gets its own
// code so a vendor client can refresh its unassigned list rather than show a
// generic failure.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrVendorNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error(), Code: "not_found"})
	case errors.Is(err, domain.ErrOrderAlreadyAssigned):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error(), Code: "already_assigned"})
	case errors.Is(err, domain.ErrInvalidOrderStatus):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_status"})
	case errors.Is(err, domain.ErrInvalidPaymentAmount):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_amount"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_input"})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
