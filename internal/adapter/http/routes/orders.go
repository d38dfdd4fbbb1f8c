package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, paymentHandler *handlers.OrderPaymentHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		// Dry-run composition check: validates and prices without persisting.
		orders.POST("/estimate", orderHandler.Estimate)
		orders.GET("/:id", orderHandler.GetByID)
		orders.PUT("/:id", orderHandler.Update)
		// Status accepts a bare JSON status string, kept for older clients.
		orders.PUT("/:id/status", orderHandler.UpdateStatus)
		orders.DELETE("/:id", orderHandler.Delete)

		orders.POST("/:id/payments", paymentHandler.CreateForOrder)
		orders.GET("/:id/payments", paymentHandler.ListForOrder)
	}
}
