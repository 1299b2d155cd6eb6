package handlers

import (
	"context"

	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/pkg/authrpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FindPermissionsByRole handles the FindPermissionsByRole RPC
func (h *AuthHandler) FindPermissionsByRole(ctx context.Context, req *authrpc.FindPermissionsByRoleRequest) (*authrpc.PermissionsResponse, error) {
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}

	perms, err := h.resolver.RolePermissions(ctx, entities.RoleID(req.RoleID))
	if err != nil {
		return nil, storeError("failed to list role permissions", err)
	}

	return &authrpc.PermissionsResponse{Permissions: toStrings(perms)}, nil
}

// FindRolesByPermission handles the FindRolesByPermission RPC
func (h *AuthHandler) FindRolesByPermission(ctx context.Context, req *authrpc.FindRolesByPermissionRequest) (*authrpc.RolesResponse, error) {
	if req.PermissionID == "" {
		return nil, status.Error(codes.InvalidArgument, "permission ID is required")
	}

	roles, err := h.rolePerms.ListLeft(ctx, entities.PermissionID(req.PermissionID))
	if err != nil {
		return nil, storeError("failed to list roles by permission", err)
	}

	return &authrpc.RolesResponse{Roles: toStrings(roles)}, nil
}

// RoleHasPermission handles the RoleHasPermission RPC
func (h *AuthHandler) RoleHasPermission(ctx context.Context, req *authrpc.RoleHasPermissionRequest) (*authrpc.HasResponse, error) {
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}
	if req.PermissionID == "" {
		return nil, status.Error(codes.InvalidArgument, "permission ID is required")
	}

	has, err := h.rolePerms.Exists(ctx, entities.RoleID(req.RoleID), entities.PermissionID(req.PermissionID))
	if err != nil {
		return nil, storeError("failed to check role permission", err)
	}

	return &authrpc.HasResponse{Has: has}, nil
}

// GrantPermission handles the GrantPermission RPC
// Granting an already granted permission succeeds silently
func (h *AuthHandler) GrantPermission(ctx context.Context, req *authrpc.GrantPermissionRequest) (*authrpc.EmptyResponse, error) {
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}
	if req.PermissionID == "" {
		return nil, status.Error(codes.InvalidArgument, "permission ID is required")
	}

	if err := h.rolePerms.Insert(ctx, entities.RoleID(req.RoleID), entities.PermissionID(req.PermissionID)); err != nil {
		return nil, storeError("failed to grant permission", err)
	}

	return &authrpc.EmptyResponse{}, nil
}

// GrantPermissions handles the GrantPermissions RPC
func (h *AuthHandler) GrantPermissions(ctx context.Context, req *authrpc.GrantPermissionsRequest) (*authrpc.BulkInsertResponse, error) {
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}
	for i, id := range req.PermissionIDs {
		if id == "" {
			return nil, status.Errorf(codes.InvalidArgument, "permission ID at index %d is empty", i)
		}
	}

	result, err := h.rolePerms.BulkInsert(ctx, entities.RoleID(req.RoleID), toIDs[entities.PermissionID](req.PermissionIDs))
	if err != nil {
		return nil, storeError("failed to grant permissions", err)
	}

	return &authrpc.BulkInsertResponse{
		Inserted:       result.Inserted,
		AlreadyPresent: result.AlreadyPresent,
	}, nil
}

// RevokePermission handles the RevokePermission RPC
// Revoking an ungranted permission succeeds silently
func (h *AuthHandler) RevokePermission(ctx context.Context, req *authrpc.RevokePermissionRequest) (*authrpc.EmptyResponse, error) {
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}
	if req.PermissionID == "" {
		return nil, status.Error(codes.InvalidArgument, "permission ID is required")
	}

	if err := h.rolePerms.Delete(ctx, entities.RoleID(req.RoleID), entities.PermissionID(req.PermissionID)); err != nil {
		return nil, storeError("failed to revoke permission", err)
	}

	return &authrpc.EmptyResponse{}, nil
}

// RevokePermissions handles the RevokePermissions RPC
func (h *AuthHandler) RevokePermissions(ctx context.Context, req *authrpc.RevokePermissionsRequest) (*authrpc.BulkDeleteResponse, error) {
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}
	for i, id := range req.PermissionIDs {
		if id == "" {
			return nil, status.Errorf(codes.InvalidArgument, "permission ID at index %d is empty", i)
		}
	}

	result, err := h.rolePerms.BulkDelete(ctx, entities.RoleID(req.RoleID), toIDs[entities.PermissionID](req.PermissionIDs))
	if err != nil {
		return nil, storeError("failed to revoke permissions", err)
	}

	return &authrpc.BulkDeleteResponse{Removed: result.Removed}, nil
}

// ReplacePermissions handles the ReplacePermissions RPC
// An empty permission list removes every permission of the role
func (h *AuthHandler) ReplacePermissions(ctx context.Context, req *authrpc.ReplacePermissionsRequest) (*authrpc.ReplaceResponse, error) {
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}
	for i, id := range req.PermissionIDs {
		if id == "" {
			return nil, status.Errorf(codes.InvalidArgument, "permission ID at index %d is empty", i)
		}
	}

	result, err := h.permReplacer.Replace(ctx, entities.RoleID(req.RoleID), toIDs[entities.PermissionID](req.PermissionIDs))
	if err != nil {
		return nil, storeError("failed to replace permissions", err)
	}

	return &authrpc.ReplaceResponse{
		Added:     toStrings(result.Added),
		Removed:   toStrings(result.Removed),
		Unchanged: toStrings(result.Unchanged),
	}, nil
}
