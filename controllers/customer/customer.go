package customerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelrevive/pixelrevive-api/models"
	"github.com/pixelrevive/pixelrevive-api/store"
)

// GetCustomerOrders filters the cached order list down to one customer.
func GetCustomerOrders(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := c.Param("customerID")
		if customerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "customerID is required"})
			return
		}

		orders := []models.Order{}
		for _, o := range mgr.Orders() {
			if o.CustomerID == customerID {
				orders = append(orders, o)
			}
		}
		c.JSON(http.StatusOK, orders)
	}
}
