package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/yup/pkg/slogx"
)

// AccessCheck reports whether userID may use the wrapped handler.
type AccessCheck func(ctx context.Context, userID string) (bool, error)

// RequireOrRedirect gates browser-facing pages. Anonymous callers are sent
// to loginURL and authenticated callers failing check are sent to denyURL,
// both with 303 See Other. It must run after OptionalAuthn or
// AuthnMiddleware.
func RequireOrRedirect(check AccessCheck, loginURL, denyURL string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := UserIDFromContext(r.Context())
			if uid == "" {
				Redirect(w, r, loginURL)
				return
			}

			ok, err := check(r.Context(), uid)
			if err != nil {
				slogx.FromContext(r.Context()).Error("access check failed", "err", err)
				writeServerError(w)
				return
			}
			if !ok {
				Redirect(w, r, denyURL)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireOrForbid gates API routes, answering 403 with a JSON error body
// when check fails. It must run after AuthnMiddleware.
func RequireOrForbid(check AccessCheck) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := UserIDFromContext(r.Context())
			if uid == "" {
				writeBearerError(w, "missing session token")
				return
			}

			ok, err := check(r.Context(), uid)
			if err != nil {
				slogx.FromContext(r.Context()).Error("access check failed", "err", err)
				writeServerError(w)
				return
			}
			if !ok {
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":             "forbidden",
					"error_description": "You do not have access to this resource.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeServerError(w http.ResponseWriter) {
	WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"error":             "server_error",
		"error_description": "An internal error occurred.",
	})
}
