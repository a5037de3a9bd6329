package server

import (
	"context"
	"net/http"
	"seichi-game-api/internal/constants"

	"github.com/rs/zerolog"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the source database is reachable.
func HealthHandler(db Pinger, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), constants.HealthCheckTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Warn().Err(err).Msg("health check failed")
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
