package handlers

import (
	"context"

	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/pkg/authrpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FindRolesByUser handles the FindRolesByUser RPC
func (h *AuthHandler) FindRolesByUser(ctx context.Context, req *authrpc.FindRolesByUserRequest) (*authrpc.RolesResponse, error) {
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user ID is required")
	}

	roles, err := h.resolver.UserRoles(ctx, entities.UserID(req.UserID))
	if err != nil {
		return nil, storeError("failed to list user roles", err)
	}

	return &authrpc.RolesResponse{Roles: toStrings(roles)}, nil
}

// FindUsersByRole handles the FindUsersByRole RPC
func (h *AuthHandler) FindUsersByRole(ctx context.Context, req *authrpc.FindUsersByRoleRequest) (*authrpc.UsersResponse, error) {
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}

	users, err := h.userRoles.ListLeft(ctx, entities.RoleID(req.RoleID))
	if err != nil {
		return nil, storeError("failed to list users by role", err)
	}

	return &authrpc.UsersResponse{Users: toStrings(users)}, nil
}

// UserHasRole handles the UserHasRole RPC
func (h *AuthHandler) UserHasRole(ctx context.Context, req *authrpc.UserHasRoleRequest) (*authrpc.HasResponse, error) {
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user ID is required")
	}
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}

	has, err := h.resolver.HasRole(ctx, entities.UserID(req.UserID), entities.RoleID(req.RoleID))
	if err != nil {
		return nil, storeError("failed to check user role", err)
	}

	return &authrpc.HasResponse{Has: has}, nil
}

// AssignRole handles the AssignRole RPC
// Assigning an already held role succeeds silently
func (h *AuthHandler) AssignRole(ctx context.Context, req *authrpc.AssignRoleRequest) (*authrpc.EmptyResponse, error) {
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user ID is required")
	}
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}

	if err := h.userRoles.Insert(ctx, entities.UserID(req.UserID), entities.RoleID(req.RoleID)); err != nil {
		return nil, storeError("failed to assign role", err)
	}

	return &authrpc.EmptyResponse{}, nil
}

// AssignRoles handles the AssignRoles RPC
func (h *AuthHandler) AssignRoles(ctx context.Context, req *authrpc.AssignRolesRequest) (*authrpc.BulkInsertResponse, error) {
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user ID is required")
	}
	for i, id := range req.RoleIDs {
		if id == "" {
			return nil, status.Errorf(codes.InvalidArgument, "role ID at index %d is empty", i)
		}
	}

	result, err := h.userRoles.BulkInsert(ctx, entities.UserID(req.UserID), toIDs[entities.RoleID](req.RoleIDs))
	if err != nil {
		return nil, storeError("failed to assign roles", err)
	}

	return &authrpc.BulkInsertResponse{
		Inserted:       result.Inserted,
		AlreadyPresent: result.AlreadyPresent,
	}, nil
}

// RevokeRole handles the RevokeRole RPC
// Revoking an unheld role succeeds silently
func (h *AuthHandler) RevokeRole(ctx context.Context, req *authrpc.RevokeRoleRequest) (*authrpc.EmptyResponse, error) {
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user ID is required")
	}
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}

	if err := h.userRoles.Delete(ctx, entities.UserID(req.UserID), entities.RoleID(req.RoleID)); err != nil {
		return nil, storeError("failed to revoke role", err)
	}

	return &authrpc.EmptyResponse{}, nil
}

// RevokeRoles handles the RevokeRoles RPC
func (h *AuthHandler) RevokeRoles(ctx context.Context, req *authrpc.RevokeRolesRequest) (*authrpc.BulkDeleteResponse, error) {
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user ID is required")
	}
	for i, id := range req.RoleIDs {
		if id == "" {
			return nil, status.Errorf(codes.InvalidArgument, "role ID at index %d is empty", i)
		}
	}

	result, err := h.userRoles.BulkDelete(ctx, entities.UserID(req.UserID), toIDs[entities.RoleID](req.RoleIDs))
	if err != nil {
		return nil, storeError("failed to revoke roles", err)
	}

	return &authrpc.BulkDeleteResponse{Removed: result.Removed}, nil
}

// ReplaceRoles handles the ReplaceRoles RPC
// An empty role list removes every role of the user
func (h *AuthHandler) ReplaceRoles(ctx context.Context, req *authrpc.ReplaceRolesRequest) (*authrpc.ReplaceResponse, error) {
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user ID is required")
	}
	for i, id := range req.RoleIDs {
		if id == "" {
			return nil, status.Errorf(codes.InvalidArgument, "role ID at index %d is empty", i)
		}
	}

	result, err := h.roleReplacer.Replace(ctx, entities.UserID(req.UserID), toIDs[entities.RoleID](req.RoleIDs))
	if err != nil {
		return nil, storeError("failed to replace roles", err)
	}

	return &authrpc.ReplaceResponse{
		Added:     toStrings(result.Added),
		Removed:   toStrings(result.Removed),
		Unchanged: toStrings(result.Unchanged),
	}, nil
}

// FindPermissionsByUser handles the FindPermissionsByUser RPC
// The result is the union of the permissions of all roles the user holds
func (h *AuthHandler) FindPermissionsByUser(ctx context.Context, req *authrpc.FindPermissionsByUserRequest) (*authrpc.PermissionsResponse, error) {
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user ID is required")
	}

	perms, err := h.resolver.UserPermissions(ctx, entities.UserID(req.UserID))
	if err != nil {
		return nil, storeError("failed to list user permissions", err)
	}

	return &authrpc.PermissionsResponse{Permissions: toStrings(perms)}, nil
}

// UserHasPermission handles the UserHasPermission RPC
func (h *AuthHandler) UserHasPermission(ctx context.Context, req *authrpc.UserHasPermissionRequest) (*authrpc.HasResponse, error) {
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user ID is required")
	}
	if req.PermissionID == "" {
		return nil, status.Error(codes.InvalidArgument, "permission ID is required")
	}

	has, err := h.resolver.HasPermission(ctx, entities.UserID(req.UserID), entities.PermissionID(req.PermissionID))
	if err != nil {
		return nil, storeError("failed to check user permission", err)
	}

	return &authrpc.HasResponse{Has: has}, nil
}
