package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)

	token, err := m.GenerateAccessToken("7c7d1f4e-8a38-4d55-9a8e-0d6f3f2c1b11", "player@courts.test")
	require.NoError(t, err)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "7c7d1f4e-8a38-4d55-9a8e-0d6f3f2c1b11", claims.UserID)
	assert.Equal(t, "player@courts.test", claims.Email)
}

func TestJWTRejects(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)

	other, err := NewJWTManager("other", time.Minute).GenerateAccessToken("u1", "")
	require.NoError(t, err)
	_, err = m.ParseAndValidate(other)
	assert.Error(t, err, "wrong secret")

	expired, err := NewJWTManager("secret", -time.Minute).GenerateAccessToken("u1", "")
	require.NoError(t, err)
	_, err = m.ParseAndValidate(expired)
	assert.Error(t, err, "expired")

	noSubject, err := m.GenerateAccessToken("", "")
	require.NoError(t, err)
	_, err = m.ParseAndValidate(noSubject)
	assert.Error(t, err, "missing subject")
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewJWTManager("secret", time.Minute)

	r := gin.New()
	r.GET("/me", AuthRequired(m), func(c *gin.Context) {
		c.String(http.StatusOK, GetUserID(c))
	})

	token, err := m.GenerateAccessToken("u1", "u1@courts.test")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{name: "valid", header: "Bearer " + token, code: http.StatusOK},
		{name: "missing", header: "", code: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, code: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer nope", code: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, "u1", w.Body.String())
			}
		})
	}
}
