package permissions

import (
	"context"

	"github.com/RCOSDP/weko-itemtype/internal/domain/user"
	"github.com/RCOSDP/weko-itemtype/internal/services"
)

// Permission is a single authorization decision.
type Permission interface {
	Can() bool
}

// Factory yields a permission decision for the caller identified by
// the request context.
type Factory func(ctx context.Context) Permission

// PermissionFunc adapts a plain function to the Permission interface.
type PermissionFunc func() bool

func (f PermissionFunc) Can() bool {
	return f()
}

// ItemTypeEditor is the default factory guarding the item type
// screens: only authenticated admins may manage definitions.
func ItemTypeEditor() Factory {
	return func(ctx context.Context) Permission {
		return PermissionFunc(func() bool {
			p, ok := services.PrincipalFromContext(ctx)
			return ok && p.Role == user.RoleAdmin
		})
	}
}

// AllowAll grants everything. Used in tests and open deployments.
func AllowAll() Factory {
	return func(ctx context.Context) Permission {
		return PermissionFunc(func() bool { return true })
	}
}
