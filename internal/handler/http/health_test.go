package http

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-family-tree/internal/app"
	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/models"
)

func TestHealthz(t *testing.T) {
	tests := []struct {
		name       string
		health     error
		wantStatus int
	}{
		{"database answers", nil, http.StatusOK},
		{"database down", errors.New("dial tcp: refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &fakeAppInfoService{version: "1.2.3", health: tt.health}
			router := newTestRouter(&service.Services{AppInfoService: info}, config.StructuredConfig{})

			rr := doRequest(t, router, http.MethodGet, "/healthz", "", nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.health != nil {
				assert.Equal(t, app.MsgServiceUnavailable, decodeEnvelope(t, rr, nil).Error)
				return
			}
			var data models.HealthResponse
			decodeEnvelope(t, rr, &data)
			assert.Equal(t, models.HealthResponse{Status: "ok", Version: "1.2.3"}, data)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(&service.Services{}, config.StructuredConfig{})

	// One request through the router so the HTTP counter has a sample.
	doRequest(t, router, http.MethodGet, "/api/projects", "", nil)

	rr := doRequest(t, router, http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "familytree_http_requests_total")
}

func TestStatic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app shell</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	cfg := config.StructuredConfig{Server: config.Server{StaticDir: dir}}
	router := newTestRouter(&service.Services{}, cfg)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{"asset without session", http.MethodGet, "/assets/app.js", "", http.StatusOK, "console.log(1)"},
		{"home page is public", http.MethodGet, "/", "", http.StatusOK, "app shell"},
		{"deep link falls back to index", http.MethodGet, "/dashboard/projects/p1", clientToken, http.StatusOK, "app shell"},
		{"deep link without session redirects", http.MethodGet, "/dashboard", "", http.StatusFound, ""},
		{"non GET is rejected", http.MethodPost, "/dashboard", clientToken, http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.path, tt.token, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.True(t, strings.Contains(rr.Body.String(), tt.wantBody), rr.Body.String())
			}
		})
	}
}
