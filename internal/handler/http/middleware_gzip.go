package http

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
)

const encodingGzip = "gzip"

var (
	compressors   = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	decompressors = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasEncoding(r.Header.Get("Content-Encoding")) && r.Body != nil {
			body, err := inflate(r.Body)
			if err != nil {
				http.Error(w, "invalid gzip body", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !hasEncoding(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		zw := compressors.Get().(*gzip.Writer)
		zw.Reset(w)
		cw := &compressWriter{ResponseWriter: w, zw: zw}
		defer cw.release()

		next.ServeHTTP(cw, r)
	})
}

func hasEncoding(header string) bool {
	return strings.Contains(header, encodingGzip)
}

// inflatedBody returns its gzip reader to the pool on Close.
type inflatedBody struct {
	*gzip.Reader
	src io.ReadCloser
}

func inflate(src io.ReadCloser) (*inflatedBody, error) {
	zr := decompressors.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		decompressors.Put(zr)
		return nil, err
	}
	return &inflatedBody{Reader: zr, src: src}, nil
}

func (b *inflatedBody) Close() error {
	_ = b.Reader.Close()
	decompressors.Put(b.Reader)
	return b.src.Close()
}

// compressWriter compresses every response that carries a body. 204 and
// 304 are passed through untouched.
type compressWriter struct {
	http.ResponseWriter
	zw      *gzip.Writer
	status  int
	enabled bool
}

func (w *compressWriter) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}
	w.status = statusCode
	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		w.enabled = true
		w.Header().Set("Content-Encoding", encodingGzip)
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressWriter) Write(data []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	if w.enabled {
		return w.zw.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

func (w *compressWriter) release() {
	if w.enabled {
		_ = w.zw.Close()
	}
	w.zw.Reset(io.Discard)
	compressors.Put(w.zw)
}
