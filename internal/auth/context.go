package auth

import "context"

type identityKey struct{}

// WithIdentity returns a context carrying the verified claims.
func WithIdentity(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, identityKey{}, claims)
}

// IdentityFrom extracts the verified claims placed by the auth middleware.
func IdentityFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(identityKey{}).(*Claims)
	return claims, ok
}
