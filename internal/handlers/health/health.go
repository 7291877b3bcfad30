package health

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"NeonSkills/internal/middleware"
)

// New returns the liveness handler. A failed body write is logged; the status
// line has already gone out by then.
func New(log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
			log.Error().
				Err(err).
				Str("request_id", middleware.RequestIDFrom(r.Context())).
				Msg("write health response")
		}
	}
}
