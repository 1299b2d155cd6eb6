package authorization

import (
	"context"
	"fmt"
	"sort"

	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/internal/repositories"
)

// ResolverInterface defines the interface for derived authorization queries
type ResolverInterface interface {
	UserRoles(ctx context.Context, user entities.UserID) ([]entities.RoleID, error)
	HasRole(ctx context.Context, user entities.UserID, role entities.RoleID) (bool, error)
	RolePermissions(ctx context.Context, role entities.RoleID) ([]entities.PermissionID, error)
	UserPermissions(ctx context.Context, user entities.UserID) ([]entities.PermissionID, error)
	HasPermission(ctx context.Context, user entities.UserID, perm entities.PermissionID) (bool, error)
}

// Resolver answers role and permission questions by composing the
// user-role and role-permission stores
// Unknown users are indistinguishable from users with no associations:
// every query answers false or empty, never an error
type Resolver struct {
	userRoles       repositories.UserRoleStore
	rolePermissions repositories.RolePermissionStore
}

// NewResolver creates a new Resolver over the two stores
func NewResolver(userRoles repositories.UserRoleStore, rolePermissions repositories.RolePermissionStore) *Resolver {
	return &Resolver{
		userRoles:       userRoles,
		rolePermissions: rolePermissions,
	}
}

// UserRoles returns the roles held by user
func (r *Resolver) UserRoles(ctx context.Context, user entities.UserID) ([]entities.RoleID, error) {
	roles, err := r.userRoles.ListRight(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}
	return roles, nil
}

// HasRole reports whether user holds role
func (r *Resolver) HasRole(ctx context.Context, user entities.UserID, role entities.RoleID) (bool, error) {
	ok, err := r.userRoles.Exists(ctx, user, role)
	if err != nil {
		return false, fmt.Errorf("failed to check user role: %w", err)
	}
	return ok, nil
}

// RolePermissions returns the permissions granted by role
func (r *Resolver) RolePermissions(ctx context.Context, role entities.RoleID) ([]entities.PermissionID, error) {
	perms, err := r.rolePermissions.ListRight(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list role permissions: %w", err)
	}
	return perms, nil
}

// UserPermissions returns the union of the permissions of all roles held
// by user, deduplicated and sorted
func (r *Resolver) UserPermissions(ctx context.Context, user entities.UserID) ([]entities.PermissionID, error) {
	roles, err := r.userRoles.ListRight(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}
	if len(roles) == 0 {
		return nil, nil
	}

	pairs, err := r.rolePermissions.ListRightByLefts(ctx, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to list role permissions: %w", err)
	}

	seen := make(map[entities.PermissionID]bool, len(pairs))
	var perms []entities.PermissionID
	for _, pair := range pairs {
		if seen[pair.Right] {
			continue
		}
		seen[pair.Right] = true
		perms = append(perms, pair.Right)
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })

	return perms, nil
}

// HasPermission reports whether any role held by user grants perm
func (r *Resolver) HasPermission(ctx context.Context, user entities.UserID, perm entities.PermissionID) (bool, error) {
	roles, err := r.userRoles.ListRight(ctx, user)
	if err != nil {
		return false, fmt.Errorf("failed to list user roles: %w", err)
	}
	if len(roles) == 0 {
		return false, nil
	}

	pairs, err := r.rolePermissions.ListRightByLefts(ctx, roles)
	if err != nil {
		return false, fmt.Errorf("failed to list role permissions: %w", err)
	}
	for _, pair := range pairs {
		if pair.Right == perm {
			return true, nil
		}
	}

	return false, nil
}
