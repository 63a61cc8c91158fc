package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pixelrevive/pixelrevive-api/store"
)

// POST /auth/admin-login
//
// The admin surface is gated by a single shared secret, not a real account
// system. A correct password flips the process-wide admin flag and issues a
// JWT for the /admin routes.
func AdminLoginHandler(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Password != os.Getenv("ADMIN_PASSWORD") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}

		mgr.Login()

		token, err := issueAdminToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// POST /auth/admin-logout
func AdminLogoutHandler(mgr *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		mgr.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func issueAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
