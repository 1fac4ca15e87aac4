package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-platform-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(req *http.Request) (string, *httptest.ResponseRecorder) {
		var stored string
		r := gin.New()
		r.Use(RequestID())
		r.GET("/", func(c *gin.Context) {
			stored = c.GetString(string(domain.KeyRequestID))
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return stored, w
	}

	t.Run("generates an id under the shared context key", func(t *testing.T) {
		stored, w := serve(httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, stored)
		assert.Equal(t, stored, w.Header().Get("X-Request-ID"))
	})

	t.Run("honors an upstream request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "upstream-trace-1")

		stored, w := serve(req)

		assert.Equal(t, "upstream-trace-1", stored)
		assert.Equal(t, "upstream-trace-1", w.Header().Get("X-Request-ID"))
	})
}
