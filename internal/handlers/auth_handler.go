package handlers

import (
	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/internal/repositories"
	"github.com/asakaida/banken/internal/services/authorization"
	"github.com/asakaida/banken/internal/services/relation"
)

// AuthHandler implements the AuthService gRPC surface for trusted internal
// callers. There is no per-principal gate here: access control for this
// facade is deployment topology, not application logic.
type AuthHandler struct {
	userRoles    repositories.UserRoleStore
	rolePerms    repositories.RolePermissionStore
	serviceRoles repositories.ServiceRoleStore

	roleReplacer        relation.ReplacerInterface[entities.UserID, entities.RoleID]
	permReplacer        relation.ReplacerInterface[entities.RoleID, entities.PermissionID]
	serviceRoleReplacer relation.ReplacerInterface[entities.ServiceID, entities.RoleID]

	resolver authorization.ResolverInterface
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(
	userRoles repositories.UserRoleStore,
	rolePerms repositories.RolePermissionStore,
	serviceRoles repositories.ServiceRoleStore,
	roleReplacer relation.ReplacerInterface[entities.UserID, entities.RoleID],
	permReplacer relation.ReplacerInterface[entities.RoleID, entities.PermissionID],
	serviceRoleReplacer relation.ReplacerInterface[entities.ServiceID, entities.RoleID],
	resolver authorization.ResolverInterface,
) *AuthHandler {
	return &AuthHandler{
		userRoles:           userRoles,
		rolePerms:           rolePerms,
		serviceRoles:        serviceRoles,
		roleReplacer:        roleReplacer,
		permReplacer:        permReplacer,
		serviceRoleReplacer: serviceRoleReplacer,
		resolver:            resolver,
	}
}
