package compress

import (
	"compress/gzip"
	"net/http"
	"strings"

	"clipshare/internal/http/httputils"
)

// MiddlewareCompressing unpacks gzip request bodies and gzips text responses
// for clients that accept it.
func MiddlewareCompressing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := decompressRequest(r); err != nil {
				httputils.WriteJSONError(w, http.StatusBadRequest, "invalid gzip data")
				return
			}

			if !acceptsGzip(r) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add(httputils.HeaderVary, httputils.HeaderAcceptEncoding)
			gw := &gzipResponseWriter{ResponseWriter: w}
			defer gw.Close()

			next.ServeHTTP(gw, r)
		})
	}
}

func decompressRequest(r *http.Request) error {
	if !strings.Contains(r.Header.Get(httputils.HeaderContentEncoding), httputils.EncodingGzip) {
		return nil
	}

	gz, err := gzip.NewReader(r.Body)
	if err != nil {
		return err
	}
	r.Body = gz
	r.Header.Del(httputils.HeaderContentEncoding)
	r.Header.Del(httputils.HeaderContentLength)
	r.ContentLength = -1
	return nil
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get(httputils.HeaderAcceptEncoding), httputils.EncodingGzip)
}

func isCompressible(contentType string) bool {
	return strings.HasPrefix(contentType, httputils.MIMEApplicationJSON) ||
		strings.HasPrefix(contentType, httputils.MIMETextHTML) ||
		strings.HasPrefix(contentType, httputils.MIMETextPlain)
}

// gzipResponseWriter decides on compression at the first header write,
// once the handler has set the response content type.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if isCompressible(w.Header().Get(httputils.HeaderContentType)) && status != http.StatusNoContent {
		w.Header().Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
		w.Header().Del(httputils.HeaderContentLength)
		w.gz = gzip.NewWriter(w.ResponseWriter)
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		if w.Header().Get(httputils.HeaderContentType) == "" {
			w.Header().Set(httputils.HeaderContentType, http.DetectContentType(b))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.gz == nil {
		return w.ResponseWriter.Write(b)
	}
	return w.gz.Write(b)
}

func (w *gzipResponseWriter) Close() error {
	if w.gz == nil {
		return nil
	}
	return w.gz.Close()
}
