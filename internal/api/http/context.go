package http

import (
	"context"

	"surfjobs-backend/internal/domain"
)

type identityKey struct{}

func withIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the caller resolved by the auth middleware. The
// zero Identity means the request is anonymous.
func IdentityFromContext(ctx context.Context) domain.Identity {
	identity, _ := ctx.Value(identityKey{}).(domain.Identity)
	return identity
}
