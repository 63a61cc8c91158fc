package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelrevive/pixelrevive-api/store"
)

// GetOrderByID fetches one order from the cached list.
func GetOrderByID(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, ok := mgr.OrderByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
