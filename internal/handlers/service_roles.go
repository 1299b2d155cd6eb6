package handlers

import (
	"context"

	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/pkg/authrpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FindRolesByService handles the FindRolesByService RPC
func (h *AuthHandler) FindRolesByService(ctx context.Context, req *authrpc.FindRolesByServiceRequest) (*authrpc.RolesResponse, error) {
	if req.ServiceID == "" {
		return nil, status.Error(codes.InvalidArgument, "service ID is required")
	}

	roles, err := h.serviceRoles.ListRight(ctx, entities.ServiceID(req.ServiceID))
	if err != nil {
		return nil, storeError("failed to list service roles", err)
	}

	return &authrpc.RolesResponse{Roles: toStrings(roles)}, nil
}

// FindServicesByRole handles the FindServicesByRole RPC
func (h *AuthHandler) FindServicesByRole(ctx context.Context, req *authrpc.FindServicesByRoleRequest) (*authrpc.ServicesResponse, error) {
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}

	services, err := h.serviceRoles.ListLeft(ctx, entities.RoleID(req.RoleID))
	if err != nil {
		return nil, storeError("failed to list services by role", err)
	}

	return &authrpc.ServicesResponse{Services: toStrings(services)}, nil
}

// ServiceHasRole handles the ServiceHasRole RPC
func (h *AuthHandler) ServiceHasRole(ctx context.Context, req *authrpc.ServiceHasRoleRequest) (*authrpc.HasResponse, error) {
	if req.ServiceID == "" {
		return nil, status.Error(codes.InvalidArgument, "service ID is required")
	}
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}

	has, err := h.serviceRoles.Exists(ctx, entities.ServiceID(req.ServiceID), entities.RoleID(req.RoleID))
	if err != nil {
		return nil, storeError("failed to check service role", err)
	}

	return &authrpc.HasResponse{Has: has}, nil
}

// GrantServiceRole handles the GrantServiceRole RPC
// Granting an already held role succeeds silently
func (h *AuthHandler) GrantServiceRole(ctx context.Context, req *authrpc.GrantServiceRoleRequest) (*authrpc.EmptyResponse, error) {
	if req.ServiceID == "" {
		return nil, status.Error(codes.InvalidArgument, "service ID is required")
	}
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}

	if err := h.serviceRoles.Insert(ctx, entities.ServiceID(req.ServiceID), entities.RoleID(req.RoleID)); err != nil {
		return nil, storeError("failed to grant service role", err)
	}

	return &authrpc.EmptyResponse{}, nil
}

// GrantServiceRoles handles the GrantServiceRoles RPC
func (h *AuthHandler) GrantServiceRoles(ctx context.Context, req *authrpc.GrantServiceRolesRequest) (*authrpc.BulkInsertResponse, error) {
	if req.ServiceID == "" {
		return nil, status.Error(codes.InvalidArgument, "service ID is required")
	}
	for i, id := range req.RoleIDs {
		if id == "" {
			return nil, status.Errorf(codes.InvalidArgument, "role ID at index %d is empty", i)
		}
	}

	result, err := h.serviceRoles.BulkInsert(ctx, entities.ServiceID(req.ServiceID), toIDs[entities.RoleID](req.RoleIDs))
	if err != nil {
		return nil, storeError("failed to grant service roles", err)
	}

	return &authrpc.BulkInsertResponse{
		Inserted:       result.Inserted,
		AlreadyPresent: result.AlreadyPresent,
	}, nil
}

// RevokeServiceRole handles the RevokeServiceRole RPC
// Revoking an unheld role succeeds silently
func (h *AuthHandler) RevokeServiceRole(ctx context.Context, req *authrpc.RevokeServiceRoleRequest) (*authrpc.EmptyResponse, error) {
	if req.ServiceID == "" {
		return nil, status.Error(codes.InvalidArgument, "service ID is required")
	}
	if req.RoleID == "" {
		return nil, status.Error(codes.InvalidArgument, "role ID is required")
	}

	if err := h.serviceRoles.Delete(ctx, entities.ServiceID(req.ServiceID), entities.RoleID(req.RoleID)); err != nil {
		return nil, storeError("failed to revoke service role", err)
	}

	return &authrpc.EmptyResponse{}, nil
}

// RevokeServiceRoles handles the RevokeServiceRoles RPC
func (h *AuthHandler) RevokeServiceRoles(ctx context.Context, req *authrpc.RevokeServiceRolesRequest) (*authrpc.BulkDeleteResponse, error) {
	if req.ServiceID == "" {
		return nil, status.Error(codes.InvalidArgument, "service ID is required")
	}
	for i, id := range req.RoleIDs {
		if id == "" {
			return nil, status.Errorf(codes.InvalidArgument, "role ID at index %d is empty", i)
		}
	}

	result, err := h.serviceRoles.BulkDelete(ctx, entities.ServiceID(req.ServiceID), toIDs[entities.RoleID](req.RoleIDs))
	if err != nil {
		return nil, storeError("failed to revoke service roles", err)
	}

	return &authrpc.BulkDeleteResponse{Removed: result.Removed}, nil
}

// ReplaceServiceRoles handles the ReplaceServiceRoles RPC
// An empty role list removes every role of the service
func (h *AuthHandler) ReplaceServiceRoles(ctx context.Context, req *authrpc.ReplaceServiceRolesRequest) (*authrpc.ReplaceResponse, error) {
	if req.ServiceID == "" {
		return nil, status.Error(codes.InvalidArgument, "service ID is required")
	}
	for i, id := range req.RoleIDs {
		if id == "" {
			return nil, status.Errorf(codes.InvalidArgument, "role ID at index %d is empty", i)
		}
	}

	result, err := h.serviceRoleReplacer.Replace(ctx, entities.ServiceID(req.ServiceID), toIDs[entities.RoleID](req.RoleIDs))
	if err != nil {
		return nil, storeError("failed to replace service roles", err)
	}

	return &authrpc.ReplaceResponse{
		Added:     toStrings(result.Added),
		Removed:   toStrings(result.Removed),
		Unchanged: toStrings(result.Unchanged),
	}, nil
}
