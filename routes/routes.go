package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pixelrevive/pixelrevive-api/store"
)

// SetupRoutes is the single entry‐point that wires up all route groups.
func SetupRoutes(r *gin.Engine, mgr *store.Manager) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, mgr)

	// Admin routes (JWT‐protected)
	SetupAdminRoutes(r, mgr)

	// order routes
	SetupOrderRoutes(r, mgr)

	// restoration routes
	SetupRestoreRoutes(r, mgr)

	// payment routes
	SetupPaymentRoutes(r, mgr)
}
