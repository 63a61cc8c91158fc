package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelrevive/pixelrevive-api/models"
	"github.com/pixelrevive/pixelrevive-api/store"
)

// GetConfig returns the full merged storefront configuration.
func GetConfig(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, mgr.Config())
	}
}

// UpdateConfig applies a partial configuration update. Omitted fields keep
// their current value; supplied slices replace the current slice wholesale.
func UpdateConfig(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.ConfigPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cfg := mgr.UpdateConfig(patch)
		c.JSON(http.StatusOK, gin.H{"message": "Config updated", "config": cfg})
	}
}

// UpdateMenus replaces the navigation menus.
func UpdateMenus(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			MainMenu   []models.MenuItem `json:"main_menu"`
			FooterMenu []models.MenuItem `json:"footer_menu"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cfg := mgr.UpdateConfig(models.ConfigPatch{
			MainMenu:   req.MainMenu,
			FooterMenu: req.FooterMenu,
		})
		c.JSON(http.StatusOK, gin.H{"message": "Menus updated", "config": cfg})
	}
}

// UpdatePaymentMethods replaces the payment method toggles.
func UpdatePaymentMethods(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			PaymentMethods []models.PaymentMethod `json:"payment_methods" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cfg := mgr.UpdateConfig(models.ConfigPatch{PaymentMethods: req.PaymentMethods})
		c.JSON(http.StatusOK, gin.H{"message": "Payment methods updated", "config": cfg})
	}
}

// UpdateBundles replaces the pricing bundles.
func UpdateBundles(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Bundles []models.Bundle `json:"bundles" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cfg := mgr.UpdateConfig(models.ConfigPatch{Bundles: req.Bundles})
		c.JSON(http.StatusOK, gin.H{"message": "Bundles updated", "config": cfg})
	}
}

// UpdateAPIKeys replaces the provider credential map. An empty string keeps a
// provider in simulated mode.
func UpdateAPIKeys(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			APIKeys map[string]string `json:"api_keys" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cfg := mgr.UpdateConfig(models.ConfigPatch{APIKeys: req.APIKeys})
		c.JSON(http.StatusOK, gin.H{"message": "API keys updated", "config": cfg})
	}
}
