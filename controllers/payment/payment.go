package paymentControllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pixelrevive/pixelrevive-api/models"
	"github.com/pixelrevive/pixelrevive-api/store"
)

// simulatedDelay mimics a card terminal round-trip in demo mode. Tests zero
// it out.
var simulatedDelay = 2 * time.Second

const currency = "EUR"

// -------- Request Structs --------

type CheckoutRequest struct {
	Method        string `json:"method" binding:"required"` // payment method id, e.g. "card", "mbway", "paypal"
	BundleID      string `json:"bundle_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	CustomerID    string `json:"customer_id"`
	ImageURL      string `json:"image_url"`
}

type CaptureRequest struct {
	PayPalOrderID string `json:"paypal_order_id" binding:"required"`
	BundleID      string `json:"bundle_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	CustomerID    string `json:"customer_id"`
	ImageURL      string `json:"image_url"`
}

// -------- Helpers --------

// methodLabel is what a resolved payment flow reports back.
var methodLabel = map[models.PaymentMethodType]string{
	models.PaymentTypeCard:   "Card",
	models.PaymentTypeMBWay:  "MB WAY",
	models.PaymentTypePayPal: "PayPal",
}

// generateOrderID builds the client-assigned id used when the order database
// has to assign no identity of its own.
// Example: 20250908130500-<uuid4>
func generateOrderID() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func findMethod(cfg models.StoreConfig, id string) (models.PaymentMethod, bool) {
	for _, pm := range cfg.PaymentMethods {
		if pm.ID == id {
			return pm, true
		}
	}
	return models.PaymentMethod{}, false
}

func findBundle(cfg models.StoreConfig, id string) (models.Bundle, bool) {
	for _, b := range cfg.Bundles {
		if b.ID == id {
			return b, true
		}
	}
	return models.Bundle{}, false
}

func buildOrder(bundle models.Bundle, label, name, email, customerID, imageURL string) models.Order {
	return models.Order{
		ID:            generateOrderID(),
		CustomerName:  name,
		CustomerEmail: email,
		CustomerID:    customerID,
		Date:          time.Now().UTC(),
		Amount:        bundle.Price,
		Status:        models.OrderStatusCompleted,
		ImageURL:      imageURL,
		PaymentMethod: label,
		Items:         fmt.Sprintf("%s (%d restorations)", bundle.Name, bundle.Restorations),
	}
}

// -------- Handlers --------

// CheckoutHandler runs the selected payment flow. Card and MB WAY are
// simulated multi-second flows that always succeed. PayPal hands off to the
// hosted checkout when credentials are configured, else it is simulated too.
// A resolved flow records the order through the state manager.
func CheckoutHandler(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}

		cfg := mgr.Config()

		method, ok := findMethod(cfg, req.Method)
		if !ok || !method.Enabled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment method not available"})
			return
		}

		bundle, ok := findBundle(cfg, req.BundleID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown bundle"})
			return
		}

		// Real hosted checkout only for PayPal with configured credentials.
		if method.Type == models.PaymentTypePayPal && cfg.APIKeys["paypal"] != "" {
			orderID, approvalURL, err := CreatePayPalOrder(
				cfg.APIKeys["paypal"],
				cfg.APIKeys["paypal_secret"],
				currency,
				bundle.Price,
				bundle.Name,
			)
			if err != nil {
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"paypal_order_id": orderID,
				"approval_url":    approvalURL,
			})
			return
		}

		// Simulated flow: always succeeds after a short delay.
		time.Sleep(simulatedDelay)

		label := methodLabel[method.Type]
		order := buildOrder(bundle, label, req.CustomerName, req.CustomerEmail, req.CustomerID, req.ImageURL)
		mgr.AddOrder(order)

		c.JSON(http.StatusOK, gin.H{
			"message":        "Payment successful",
			"payment_method": label,
			"amount":         bundle.Price,
		})
	}
}

// PayPalCaptureHandler finalizes an approved hosted checkout order and
// records the purchase.
func PayPalCaptureHandler(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CaptureRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}

		cfg := mgr.Config()

		bundle, ok := findBundle(cfg, req.BundleID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown bundle"})
			return
		}

		if err := CapturePayPalOrder(cfg.APIKeys["paypal"], cfg.APIKeys["paypal_secret"], req.PayPalOrderID); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		label := methodLabel[models.PaymentTypePayPal]
		order := buildOrder(bundle, label, req.CustomerName, req.CustomerEmail, req.CustomerID, req.ImageURL)
		mgr.AddOrder(order)

		c.JSON(http.StatusOK, gin.H{
			"message":        "Payment successful",
			"payment_method": label,
			"amount":         bundle.Price,
		})
	}
}
