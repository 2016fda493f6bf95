package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jobify-dev/jobs-api/models"
	"github.com/jobify-dev/jobs-api/token"
	"github.com/jobify-dev/jobs-api/utils"
	"github.com/rs/zerolog/log"
)

// Define a key type for context values to avoid collisions
type contextKey string

// identityKey is the key used to store the caller identity in the request context
const identityKey contextKey = "identity"

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity attached by Authenticate.
func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*models.Identity)
	return id, ok && id != nil
}

// Authenticate verifies the bearer token from the Authorization header and
// attaches the caller identity to the request context.
func Authenticate(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				utils.WriteError(w, utils.Unauthenticated(utils.MsgAuthInvalid))
				return
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("token validation failed")
				utils.WriteError(w, utils.Unauthenticated(utils.MsgAuthInvalid))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}
