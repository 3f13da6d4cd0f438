package remote

import "context"

type tokenKey struct{}

// WithToken makes outbound calls made with ctx carry the caller's bearer token
// instead of the service token.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context, fallback string) string {
	if t, ok := ctx.Value(tokenKey{}).(string); ok && t != "" {
		return t
	}
	return fallback
}
