package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"shophub/config"
	"shophub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
	os.Exit(m.Run())
}

func newProtectedRouter(called *bool, gotUserID *int) *gin.Engine {
	router := gin.New()
	router.GET("/cart", AuthMiddleware(), func(c *gin.Context) {
		*called = true
		if id, ok := UserID(c); ok {
			*gotUserID = id
		}
		c.Status(http.StatusOK)
	})
	return router
}

func TestMissingAuthorizationHeader(t *testing.T) {
	var called bool
	var userID int
	router := newProtectedRouter(&called, &userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called, "handler must not run without a credential")
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestMalformedAuthorizationHeader(t *testing.T) {
	var called bool
	var userID int
	router := newProtectedRouter(&called, &userID)

	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	var called bool
	var userID int
	router := newProtectedRouter(&called, &userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestValidTokenSetsIdentity(t *testing.T) {
	token, err := utils.GenerateToken(42, "user@example.com")
	assert.NoError(t, err)

	var called bool
	var userID int
	router := newProtectedRouter(&called, &userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
	assert.Equal(t, 42, userID)
}
