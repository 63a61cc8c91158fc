package routes

import (
	"github.com/gin-gonic/gin"
	restoreControllers "github.com/pixelrevive/pixelrevive-api/controllers/restore"
	"github.com/pixelrevive/pixelrevive-api/store"
)

func SetupRestoreRoutes(r *gin.Engine, mgr *store.Manager) {
	r.POST("/restore", restoreControllers.RestoreHandler(mgr))
}
