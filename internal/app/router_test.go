//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/multilingual/config"
)

func TestInitializeRouter(t *testing.T) {
	components, err := InitializeSite(siteConfig(filepath.Join(t.TempDir(), "absent")))
	require.NoError(t, err)

	cfg := config.Config{
		Server: config.ServerConfig{
			RateLimit:   42,
			RateWindow:  time.Second,
			CORSOrigins: []string{"https://example.com"},
		},
	}

	rc := InitializeRouter(components, cfg)

	require.NotNil(t, rc.Handler)
	require.NotNil(t, rc.HealthHandler)
	assert.Equal(t, 42, rc.Config.RateLimit)
	assert.Equal(t, time.Second, rc.Config.RateWindow)
	assert.Equal(t, []string{"https://example.com"}, rc.Config.CORSOrigins)

	// The messages directory is registered as a readiness dependency.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rc.HealthHandler.Readiness(ginContext(w, req))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"messages"`)
}
