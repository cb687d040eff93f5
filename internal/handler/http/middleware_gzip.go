package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-family-tree/internal/app"
)

var (
	gzipWriterPool = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaderPool = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip decodes gzip request bodies and compresses responses for
// clients that accept gzip. Prometheus scrapes negotiate their own
// encoding, so /metrics is left alone.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if err := inflateRequestBody(req); err != nil {
			writeFailure(w, req, http.StatusBadRequest, app.MsgMalformedJSON, "Invalid gzip data", nil)
			return
		}

		if !shouldCompress(req) {
			next.ServeHTTP(w, req)
			return
		}

		gz := gzipWriterPool.Get().(*gzip.Writer)
		gz.Reset(w)
		gzw := &gzipResponseWriter{ResponseWriter: w, gzipWriter: gz}
		defer func() {
			// no gzip trailer without a compressed body
			if gzw.compressing {
				_ = gz.Close()
			}
			gzipWriterPool.Put(gz)
		}()

		next.ServeHTTP(gzw, req)
	})
}

// inflateRequestBody swaps a gzip encoded body for its decoded stream.
func inflateRequestBody(req *http.Request) error {
	if req.Body == nil || !strings.Contains(req.Header.Get("Content-Encoding"), "gzip") {
		return nil
	}

	gr := gzipReaderPool.Get().(*gzip.Reader)
	if err := gr.Reset(req.Body); err != nil {
		gzipReaderPool.Put(gr)
		return err
	}

	req.Body = &wrappedReadCloser{
		Reader: gr,
		OnClose: func() {
			_ = gr.Close()
			gzipReaderPool.Put(gr)
		},
	}
	req.Header.Del("Content-Encoding")
	return nil
}

func shouldCompress(req *http.Request) bool {
	switch {
	case !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip"):
		return false
	case req.Method == http.MethodHead, req.URL.Path == "/metrics":
		return false
	default:
		return true
	}
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
	compressing bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	if statusCode >= 100 && statusCode <= 199 {
		// informational, the final status follows
		w.ResponseWriter.WriteHeader(statusCode)
		return
	}
	w.wroteHeader = true
	if !statusAllowsBody(statusCode) {
		w.ResponseWriter.WriteHeader(statusCode)
		return
	}
	w.compressing = true
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Add("Vary", "Accept-Encoding")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(data))
		}
		w.WriteHeader(http.StatusOK)
	}
	if !w.compressing {
		return w.ResponseWriter.Write(data)
	}
	return w.gzipWriter.Write(data)
}

// statusAllowsBody mirrors net/http: 1xx, 204 and 304 carry no body.
func statusAllowsBody(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	default:
		return true
	}
}
