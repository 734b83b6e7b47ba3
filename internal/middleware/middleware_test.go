package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(next)

	t.Run("Allows reads within burst", func(t *testing.T) {
		for i := 0; i < burstGeneral; i++ {
			req := httptest.NewRequest("GET", "/api/orders", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Rejects writes beyond strict burst", func(t *testing.T) {
		var last int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/api/orders", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			last = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("Write quota does not consume read quota", func(t *testing.T) {
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("PATCH", "/api/orders/x", nil)
			req.RemoteAddr = "10.0.0.3:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
		}

		req := httptest.NewRequest("GET", "/api/orders", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Different IPs have independent quotas", func(t *testing.T) {
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/api/orders", nil)
			req.RemoteAddr = "10.0.0.4:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
		}

		req := httptest.NewRequest("POST", "/api/orders", nil)
		req.RemoteAddr = "10.0.0.5:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestResolveRateTier(t *testing.T) {
	post := httptest.NewRequest("POST", "/api/orders", nil)
	_, _, tier := resolveRateTier(post)
	assert.Equal(t, "strict", tier)

	get := httptest.NewRequest("GET", "/api/orders", nil)
	_, _, tier = resolveRateTier(get)
	assert.Equal(t, "general", tier)
}
