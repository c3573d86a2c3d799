package context

import (
	"context"
)

// Principal contains the authenticated dealer identity.
type Principal struct {
	Username string
}

type principalKey struct{}

// WithPrincipal adds Principal to context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// GetPrincipal returns Principal from context.
func GetPrincipal(ctx context.Context) *Principal {
	if v, ok := ctx.Value(principalKey{}).(*Principal); ok {
		return v
	}
	return nil
}

// GetUsername returns the authenticated username or empty string.
func GetUsername(ctx context.Context) string {
	if p := GetPrincipal(ctx); p != nil {
		return p.Username
	}
	return ""
}
