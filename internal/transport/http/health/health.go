package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/partsyard/platform/logger"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a backing store answers.
type Pinger func(ctx context.Context) error

func Live(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("SERVING")); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}

// Ready answers 503 while any dependency is down.
func Ready(checks map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		for name, ping := range checks {
			if err := ping(ctx); err != nil {
				logger.Warn(ctx, "readiness check failed", logger.String("dependency", name), logger.ErrorF(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_SERVING: " + name))
				return
			}
		}

		Live(w, r)
	}
}
