// Package middleware holds cross-cutting net/http middleware shared by
// bioflow-server's routes.
package middleware

import (
	"log"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Logger logs method, path, status, duration, and a request correlation ID
// for every request. It runs after chi's RequestID middleware when present,
// but falls back to generating its own ID so it works standalone too.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := chimiddleware.GetReqID(r.Context())
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log.Printf("%s %s %s %d %s %s",
			reqID, r.Method, r.URL.Path, ww.Status(), time.Since(start), r.RemoteAddr)
	})
}
