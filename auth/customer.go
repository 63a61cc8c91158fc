package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pixelrevive/pixelrevive-api/models"
)

// POST /auth/customer
//
// Creates a lightweight customer profile so a visitor can find their orders
// again. No password, no persistence beyond the orders that reference the id.
func CreateCustomerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name  string `json:"name" binding:"required"`
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		customer := models.Customer{
			ID:        "cust_" + generateRandomString(16),
			Name:      req.Name,
			Email:     req.Email,
			CreatedAt: time.Now().UTC(),
		}

		c.JSON(http.StatusOK, customer)
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_customer"
	}
	return hex.EncodeToString(bytes)
}
