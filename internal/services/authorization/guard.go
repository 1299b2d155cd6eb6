package authorization

import (
	"context"
	"fmt"

	"github.com/asakaida/banken/internal/entities"
)

// GuardInterface defines the interface for caller authorization
type GuardInterface interface {
	AuthorizeSelfOrAdmin(ctx context.Context, caller, target entities.UserID) error
	AuthorizeAdmin(ctx context.Context, caller entities.UserID) error
}

// Guard decides whether a caller may act on a target principal's
// associations. The admin role IDs come from configuration.
type Guard struct {
	resolver   ResolverInterface
	adminRoles []entities.RoleID
}

// NewGuard creates a new Guard using resolver for admin-role checks
func NewGuard(resolver ResolverInterface, adminRoles []entities.RoleID) *Guard {
	return &Guard{
		resolver:   resolver,
		adminRoles: adminRoles,
	}
}

// AuthorizeSelfOrAdmin returns nil if caller is the target principal or
// holds an admin role, ErrForbidden otherwise
// The self check never touches the store
func (g *Guard) AuthorizeSelfOrAdmin(ctx context.Context, caller, target entities.UserID) error {
	if caller == "" {
		return ErrForbidden
	}
	if caller == target {
		return nil
	}
	return g.AuthorizeAdmin(ctx, caller)
}

// AuthorizeAdmin returns nil if caller holds one of the configured admin
// roles, ErrForbidden otherwise
func (g *Guard) AuthorizeAdmin(ctx context.Context, caller entities.UserID) error {
	if caller == "" {
		return ErrForbidden
	}
	for _, role := range g.adminRoles {
		ok, err := g.resolver.HasRole(ctx, caller, role)
		if err != nil {
			return fmt.Errorf("failed to check admin role: %w", err)
		}
		if ok {
			return nil
		}
	}
	return ErrForbidden
}
