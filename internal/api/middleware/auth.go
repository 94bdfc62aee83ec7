package middleware

import (
	"net/http"

	"github.com/mcoot/gameportal/internal/api/apierr"
	"github.com/mcoot/gameportal/internal/model"
)

// IdentitySource reports who is signed in
type IdentitySource interface {
	CurrentIdentity() *model.Session
}

// RequireSession rejects requests while nobody is signed in. Handlers behind
// it act on the portal's current identity.
func RequireSession(source IdentitySource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if source.CurrentIdentity() == nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
