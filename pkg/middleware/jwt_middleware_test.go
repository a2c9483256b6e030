package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatboywest/elearningbackend/pkg/encryption"
)

func protectedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", IsAuthorized(secret), func(c *gin.Context) {
		userID := c.MustGet("userID").(uint64)
		c.JSON(200, gin.H{"user_id": userID})
	})
	return r
}

func TestIsAuthorized(t *testing.T) {
	r := protectedRouter("secret")

	token, err := encryption.GenerateJwtToken("secret", 42, time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: 401},
		{name: "not a bearer token", header: token, wantStatus: 401},
		{name: "garbage token", header: "Bearer nope", wantStatus: 401},
		{name: "valid token", header: "Bearer " + token, wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == 200 {
				assert.Contains(t, w.Body.String(), "42")
			} else {
				assert.Contains(t, w.Body.String(), "error")
			}
		})
	}
}

func TestIsAuthorizedExpiredToken(t *testing.T) {
	r := protectedRouter("secret")

	token, err := encryption.GenerateJwtToken("secret", 42, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
}
