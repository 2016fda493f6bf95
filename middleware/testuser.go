package middleware

import (
	"net/http"

	"github.com/jobify-dev/jobs-api/utils"
)

// RejectTestUser blocks mutating requests made by the read-only demo account.
// It must run after Authenticate.
func RejectTestUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			utils.WriteError(w, utils.Unauthenticated(utils.MsgAuthInvalid))
			return
		}
		if identity.TestUser {
			utils.WriteError(w, utils.BadRequest(utils.MsgTestUserReadOnly))
			return
		}
		next.ServeHTTP(w, r)
	})
}
