// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httpapi

import (
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"pkt.systems/pslog"
)

// RequestIDHeader carries the request id. A caller-supplied UUID is kept so
// a client can correlate its own logs; anything else is replaced.
const RequestIDHeader = "X-Request-ID"

// statusWriter records the status and body size a handler produced.
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int64
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.size += int64(n)
	return n, err
}

func (w *statusWriter) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func requestID(r *http.Request) string {
	if id := r.Header.Get(RequestIDHeader); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	return uuid.NewString()
}

// withRequestLogging tags each request with an id, echoes it in the
// response, and hands handlers a logger carrying it. Server errors log at
// error, client errors at warn, the rest at info.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := requestID(r)
		w.Header().Set(RequestIDHeader, id)

		log := pslog.Ctx(r.Context()).With("http_request", id)
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r.WithContext(pslog.ContextWithLogger(r.Context(), log)))

		status := sw.code()
		kv := []any{
			"method", r.Method,
			"route", r.URL.Path,
			"status", status,
			"bytes", sw.size,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote", remoteHost(r),
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("api request failed", kv...)
		case status >= http.StatusBadRequest:
			log.Warn("api request rejected", kv...)
		default:
			log.Info("api request", kv...)
		}
	})
}

// remoteHost strips the port from the peer address. The API listens on a
// local address, so forwarding headers are not trusted.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
