package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/partsyard/platform/logger"
)

// RequestFields attaches the request id to every log line written while
// serving the request. It must run after chi's RequestID.
func RequestFields(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := chimw.GetReqID(ctx); id != "" {
			ctx = logger.ContextWithFields(ctx, logger.String("request_id", id))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
