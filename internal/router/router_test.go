package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locodhaasu-be/internal/config"
	"locodhaasu-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService satisfies order.Service with empty results so routing can
// be exercised without a store.
type stubService struct{}

func (stubService) Create(ctx context.Context, input order.CreateOrderInput) (*order.Order, error) {
	return &order.Order{OrderID: "ORDER_1_abcdefghi"}, nil
}

func (stubService) List(ctx context.Context, q order.ListQuery) (*order.ListResult, error) {
	return &order.ListResult{Orders: []*order.Order{}, Limit: q.Limit, Offset: q.Offset}, nil
}

func (stubService) Get(ctx context.Context, orderID string) (*order.Order, error) {
	return nil, order.ErrOrderNotFound
}

func (stubService) UpdateStatus(ctx context.Context, orderID string, status order.Status) error {
	return nil
}

func (stubService) Stats(ctx context.Context) (*order.DashboardStats, error) {
	return &order.DashboardStats{TotalRevenue: "0.00"}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)

	Health(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])

	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err, "timestamp should be RFC3339")
}

func TestRoutes(t *testing.T) {
	r := New(testConfig(), order.NewHandler(stubService{}))

	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{"Health", "GET", "/health", http.StatusOK},
		{"List orders", "GET", "/api/orders", http.StatusOK},
		{"Get unknown order", "GET", "/api/orders/ORDER_missing", http.StatusNotFound},
		{"Dashboard stats", "GET", "/api/dashboard/stats", http.StatusOK},
		{"Unknown route", "GET", "/api/nope", http.StatusNotFound},
		{"Wrong method", "DELETE", "/api/orders", http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.target, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestCORSHeaders(t *testing.T) {
	r := New(testConfig(), order.NewHandler(stubService{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/api/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	t.Run("Disallowed origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("OPTIONS", "/api/orders", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		r.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
