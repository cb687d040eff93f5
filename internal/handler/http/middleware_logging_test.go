package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-family-tree/internal/logger"
)

// makeRequest creates a request whose context logger writes to buf, the
// way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/api/projects",
			status: http.StatusOK,
			body:   "OK",
			wantContains: []string{
				`"method":"GET"`, `"uri":"/api/projects"`, `"status":200`, `"duration":`, `"size":2`,
			},
		},
		{
			name:         "POST 201",
			method:       http.MethodPost,
			path:         "/api/projects",
			status:       http.StatusCreated,
			wantContains: []string{`"method":"POST"`, `"status":201`, `"size":0`},
		},
		{
			name:         "no status written defaults to 200",
			method:       http.MethodDelete,
			path:         "/api/projects/p1",
			wantContains: []string{`"status":200`, `"level":"info"`},
		},
		{
			name:         "client error is a warning",
			method:       http.MethodGet,
			path:         "/api/projects/missing",
			status:       http.StatusNotFound,
			wantContains: []string{`"status":404`, `"level":"warn"`},
		},
		{
			name:         "server error is an error",
			method:       http.MethodGet,
			path:         "/api/admin/stats",
			status:       http.StatusInternalServerError,
			wantContains: []string{`"status":500`, `"level":"error"`},
		},
	}

	h := &Handler{logger: logger.Nop()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	var buf bytes.Buffer
	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))
	})
}
