package middleware

import (
	"fmt"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/jobify-dev/jobs-api/utils"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs one line per request with status and latency. The client
// address is resolved the same way as for rate limiting.
func RequestLogger(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)

			event := log.Info()
			if m.Code >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("query", r.URL.RawQuery).
				Int("status", m.Code).
				Dur("latency", m.Duration).
				Str("ip", ClientIP(r, trustProxy)).
				Str("user-agent", r.UserAgent()).
				Msg("Request processed")
		})
	}
}

// Recoverer turns a panic in a handler into a 500 response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				utils.WriteError(w, fmt.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
