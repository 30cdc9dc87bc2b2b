package services

import (
	"context"

	"github.com/google/uuid"
)

// Principal is the authenticated caller attached to a request context
// by the identity middleware.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
