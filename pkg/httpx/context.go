package httpx

import "context"

type ctxKey string

const CtxKeyBearerToken ctxKey = "bearer_token"

// WithBearerToken stores the raw bearer token on ctx.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyBearerToken, token)
}

// BearerToken returns the raw bearer token stored by BearerMiddleware.
func BearerToken(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeyBearerToken).(string)
	return v
}
