package adminController

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pixelrevive/pixelrevive-api/models"
	"github.com/pixelrevive/pixelrevive-api/store"
	"github.com/tealeg/xlsx"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"` // "pending", "completed", "refunded"
}

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusRefunded):
		return models.OrderStatusRefunded, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ListOrders returns the current order list, most recent first.
func ListOrders(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"orders":       mgr.Orders(),
			"ledger_state": mgr.State(),
		})
	}
}

// UpdateOrderStatus changes one order's status. The write is best-effort:
// while the order database is reachable it is patched there and the visible
// list reconciles via the live feed; otherwise the cached copy changes.
func UpdateOrderStatus(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mgr.UpdateOrder(orderID, newStatus)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DeleteOrder removes an order by explicit admin action.
func DeleteOrder(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		mgr.DeleteOrder(orderID)
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

// ExportOrdersToExcel downloads the current order list as an xlsx file.
func ExportOrdersToExcel(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := mgr.Orders()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "CustomerName", "CustomerEmail", "CustomerID",
			"Date", "Amount", "Status", "PaymentMethod", "Items",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerEmail)
			row.AddCell().SetValue(o.CustomerID)
			row.AddCell().SetValue(o.Date.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.Amount)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.Items)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
