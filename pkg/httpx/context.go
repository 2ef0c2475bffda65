package httpx

import (
	"context"

	"github.com/aussiebroadwan/yup/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeySessionID ctxKey = "session_id"
	CtxKeyClaims    ctxKey = "claims"
)

// UserIDFromContext returns the authenticated user ID, or "" for anonymous
// requests.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// ClaimsFromContext returns the session claims attached by the authn
// middleware.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

// ContextWithClaims attaches verified session claims to ctx.
func ContextWithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeySessionID, c.SID)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
