package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/yup/pkg/jwtx"
	"github.com/aussiebroadwan/yup/pkg/slogx"
)

// SessionCookieName is the cookie browsers carry the session token in.
const SessionCookieName = "yup_session"

// AuthnMiddleware rejects requests without a valid session token. The token
// is read from a Bearer Authorization header or the session cookie.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return authn(v, true)
}

// OptionalAuthn attaches claims when a valid token is present and otherwise
// lets the request through anonymously.
func OptionalAuthn(v jwtx.Verifier) Middleware {
	return authn(v, false)
}

func authn(v jwtx.Verifier, required bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := tokenFromRequest(r)
			if raw == "" {
				if required {
					writeBearerError(w, "missing session token")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session verify failed", "err", err)
				if required {
					writeBearerError(w, "session verification failed")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx = ContextWithClaims(ctx, claims)
			ctx = slogx.WithUserID(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthorized",
		"error_description": desc,
	})
}
