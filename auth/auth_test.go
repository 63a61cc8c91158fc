package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pixelrevive/pixelrevive-api/configstore"
	"github.com/pixelrevive/pixelrevive-api/middleware"
	"github.com/pixelrevive/pixelrevive-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestManager(t *testing.T) *store.Manager {
	t.Helper()
	configs := configstore.New(filepath.Join(t.TempDir(), "store-config.json"))
	return store.NewManager(configs, nil)
}

func loginWith(t *testing.T, r *gin.Engine, password string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(gin.H{"password": password})
	req := httptest.NewRequest("POST", "/auth/admin-login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLoginSetsFlagAndIssuesToken(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "letmein")
	t.Setenv("JWT_SECRET", "test-secret")

	mgr := newTestManager(t)
	r := gin.New()
	r.POST("/auth/admin-login", AdminLoginHandler(mgr))

	w := loginWith(t, r, "letmein")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, mgr.IsAdmin())
}

func TestAdminLoginWrongPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "letmein")
	t.Setenv("JWT_SECRET", "test-secret")

	mgr := newTestManager(t)
	r := gin.New()
	r.POST("/auth/admin-login", AdminLoginHandler(mgr))

	w := loginWith(t, r, "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, mgr.IsAdmin())
}

func TestAdminLogoutIdempotent(t *testing.T) {
	mgr := newTestManager(t)
	r := gin.New()
	r.POST("/auth/admin-logout", AdminLogoutHandler(mgr))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/auth/admin-logout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.False(t, mgr.IsAdmin())
}

func TestIssuedTokenPassesAdminMiddleware(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "letmein")
	t.Setenv("JWT_SECRET", "test-secret")

	mgr := newTestManager(t)
	r := gin.New()
	r.POST("/auth/admin-login", AdminLoginHandler(mgr))

	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAdminToken)
	admin.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := loginWith(t, r, "letmein")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// With the issued token
	req := httptest.NewRequest("GET", "/admin/probe", nil)
	req.Header.Set("Authorization", resp.Token)
	probe := httptest.NewRecorder()
	r.ServeHTTP(probe, req)
	assert.Equal(t, http.StatusOK, probe.Code)

	// Without a token
	req = httptest.NewRequest("GET", "/admin/probe", nil)
	probe = httptest.NewRecorder()
	r.ServeHTTP(probe, req)
	assert.Equal(t, http.StatusUnauthorized, probe.Code)
}

func TestCreateCustomerAssignsID(t *testing.T) {
	r := gin.New()
	r.POST("/auth/customer", CreateCustomerHandler())

	payload, _ := json.Marshal(gin.H{"name": "Alice", "email": "alice@example.com"})
	req := httptest.NewRequest("POST", "/auth/customer", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.ID, "cust_")
	assert.Equal(t, "Alice", resp.Name)
}
