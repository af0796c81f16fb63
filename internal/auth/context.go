package auth

import "context"

type contextKey string

const tokenContextKey contextKey = "upstream_token"

// WithToken returns a context carrying the session's bearer token. The token
// is opaque to this service; it is only replayed on upstream requests.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext extracts the bearer token, if any, from the context.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
