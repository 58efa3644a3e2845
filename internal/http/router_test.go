//go:build !integration

package http

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/multilingual/internal/messages"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		cfg  RouterConfig
	}{
		{name: "default config", cfg: DefaultRouterConfig()},
		{name: "rate limiting disabled", cfg: RouterConfig{}},
		{name: "custom cors origins", cfg: RouterConfig{CORSOrigins: []string{"https://example.com"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(newTestHandler(t), NewHealthHandler(), tt.cfg)
			assert.NotNil(t, router)
		})
	}
}

func TestRouter_InfrastructureEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	health := NewHealthHandler()
	health.RegisterChecker("messages", messages.NewStore(testMessages()))
	router := NewRouter(newTestHandler(t), health, DefaultRouterConfig())

	tests := []struct {
		path           string
		expectedStatus int
		contains       string
	}{
		{path: "/healthz", expectedStatus: http.StatusOK, contains: `"status":"ok"`},
		{path: "/readyz", expectedStatus: http.StatusOK, contains: `"messages":"ok"`},
		{path: "/metrics", expectedStatus: http.StatusOK, contains: "http_requests_total"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(router, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestRouter_CommonHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(newTestHandler(t), NewHealthHandler(), DefaultRouterConfig())

	w := serve(router, httptest.NewRequest(http.MethodGet, "/en/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, strconv.Itoa(DefaultRouterConfig().RateLimit), w.Header().Get("X-RateLimit-Limit"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const origin = "https://app.example.org"
	router := NewRouter(newTestHandler(t), NewHealthHandler(), RouterConfig{CORSOrigins: []string{origin}})

	for _, path := range []string{"/api/messages/en", "/en/about", "/healthz"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, path, nil)
			req.Header.Set("Origin", origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			w := serve(router, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	t.Run("same-origin request is not treated as CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/messages/en", nil)
		req.Header.Set("Origin", "http://"+req.Host)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(newTestHandler(t), NewHealthHandler(), RouterConfig{RateLimit: 2, RateWindow: time.Minute})

	for i := 0; i < 2; i++ {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/messages/en", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/messages/en", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}
