package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pixelrevive/pixelrevive-api/auth"
	"github.com/pixelrevive/pixelrevive-api/store"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, mgr *store.Manager) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/admin-login", auth.AdminLoginHandler(mgr))
		authGroup.POST("/admin-logout", auth.AdminLogoutHandler(mgr))

		authGroup.POST("/customer", auth.CreateCustomerHandler())
	}
}
