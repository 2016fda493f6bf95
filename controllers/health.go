package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/jobify-dev/jobs-api/utils"
	"github.com/rs/zerolog/log"
)

// Pinger is satisfied by every store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the store is reachable.
func HealthHandler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("health check failed")
			utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]bool{"ok": false})
			return
		}
		utils.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
