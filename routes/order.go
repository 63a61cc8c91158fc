package routes

import (
	"github.com/gin-gonic/gin"
	customerControllers "github.com/pixelrevive/pixelrevive-api/controllers/customer"
	orderControllers "github.com/pixelrevive/pixelrevive-api/controllers/order"
	"github.com/pixelrevive/pixelrevive-api/store"
)

func SetupOrderRoutes(r *gin.Engine, mgr *store.Manager) {
	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderFeedHandler)

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrderByID(mgr))
	}

	// Fetch orders for a specific customer
	r.GET("/customers/:customerID/orders", customerControllers.GetCustomerOrders(mgr))
}
