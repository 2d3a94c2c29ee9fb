package server

import "time"
import "context"
import "net/http"

import "github.com/go-chi/chi/v5/middleware"
import "github.com/oklog/ulid/v2"
import "github.com/sirupsen/logrus"

const requestIDHeader = "X-Request-Id"
const warningsHeader  = "X-Meme-Warnings"

type contextKey string
const requestIDKey = contextKey("request-id")

// Assigns a ULID to each request, exposed in the X-Request-Id header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ulid.Make().String()
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Returns the request id assigned by the requestID middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (self *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(wrapped, r)
		self.logger.WithFields(logrus.Fields{
			"request_id": RequestID(r.Context()),
			"method": r.Method,
			"path": r.URL.Path,
			"status": wrapped.Status(),
			"bytes": wrapped.BytesWritten(),
			"elapsed": time.Since(start).String(),
		}).Debug("request served")
	})
}
