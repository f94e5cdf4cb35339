package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires all routes. The /metrics endpoint serves the Prometheus
// registry the metrics package writes into.
func NewRouter(
	orderHandler *OrderHandler,
	ledgerHandler *LedgerHandler,
	vendorHandler *VendorHandler,
	log *zap.Logger) *gin.Engine {

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	orders := router.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/unassigned", orderHandler.ListUnassignedOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("/:id/accept", orderHandler.AcceptOrder)
		orders.POST("/:id/delivered", orderHandler.MarkDelivered)
		orders.PUT("/:id/return", orderHandler.SetReturnStatus)
	}

	router.GET("/vendor-ledger", ledgerHandler.GetLedger)
	router.PUT("/vendor-ledger/:vendorId", ledgerHandler.RecordPayment)

	vendors := router.Group("/vendors")
	{
		vendors.POST("", vendorHandler.CreateVendor)
		vendors.GET("/:id", vendorHandler.GetVendor)
	}

	return router
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
