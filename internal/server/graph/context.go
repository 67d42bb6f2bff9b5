package graph

import (
	"context"

	"github.com/dmitrijs2005/phonebook/internal/server/services"
)

type ctxKey string

const identityKey ctxKey = "identity"

// WithIdentity attaches the resolved request identity to the context.
func WithIdentity(ctx context.Context, identity *services.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the request identity, or an anonymous one if
// none was attached. It never returns nil.
func IdentityFromContext(ctx context.Context) *services.Identity {
	if identity, ok := ctx.Value(identityKey).(*services.Identity); ok && identity != nil {
		return identity
	}
	return &services.Identity{Status: services.TokenAbsent}
}
