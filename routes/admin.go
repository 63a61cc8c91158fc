package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/pixelrevive/pixelrevive-api/controllers/admin"
	"github.com/pixelrevive/pixelrevive-api/middleware"
	"github.com/pixelrevive/pixelrevive-api/store"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires JWT middleware.
func SetupAdminRoutes(r *gin.Engine, mgr *store.Manager) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminToken)
	{
		// ─────────── Storefront Configuration ───────────
		configAdmin := adminGroup.Group("/config")
		{
			configAdmin.GET("", adminController.GetConfig(mgr))
			configAdmin.PUT("", adminController.UpdateConfig(mgr))
			configAdmin.PUT("/menus", adminController.UpdateMenus(mgr))
			configAdmin.PUT("/payment-methods", adminController.UpdatePaymentMethods(mgr))
			configAdmin.PUT("/bundles", adminController.UpdateBundles(mgr))
			configAdmin.PUT("/api-keys", adminController.UpdateAPIKeys(mgr))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminController.ListOrders(mgr))
			orderAdmin.PUT("/:orderID/status", adminController.UpdateOrderStatus(mgr))
			orderAdmin.DELETE("/:orderID", adminController.DeleteOrder(mgr))
			orderAdmin.GET("/export-excel", adminController.ExportOrdersToExcel(mgr))
		}
	}
}
