package routes

import (
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/pixelrevive/pixelrevive-api/controllers/payment"
	"github.com/pixelrevive/pixelrevive-api/store"
)

func SetupPaymentRoutes(r *gin.Engine, mgr *store.Manager) {
	payment := r.Group("/payment")
	{
		// Runs the selected flow; simulated methods resolve inline
		payment.POST("/checkout", paymentControllers.CheckoutHandler(mgr))

		// Finalizes an approved hosted PayPal checkout
		payment.POST("/paypal/capture", paymentControllers.PayPalCaptureHandler(mgr))
	}
}
