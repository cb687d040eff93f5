package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		wantStatus int
	}{
		{"single call", []int{http.StatusCreated}, http.StatusCreated},
		{"second call ignored", []int{http.StatusNotFound, http.StatusOK}, http.StatusNotFound},
		{"server error", []int{http.StatusBadGateway}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, s := range tt.statuses {
				w.WriteHeader(s)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Zero(t, w.status)

	n, err := w.Write([]byte("hello "))
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	_, _ = w.Write([]byte("tree"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 10, w.size)
	assert.Equal(t, "hello tree", rr.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
}
