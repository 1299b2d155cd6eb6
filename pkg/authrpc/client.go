package authrpc

import (
	"context"

	"google.golang.org/grpc"
)

// AuthServiceClient is the client contract of the AuthService
// Every call selects the JSON codec, so callers only need a plain
// grpc.ClientConn
type AuthServiceClient interface {
	FindRolesByUser(ctx context.Context, req *FindRolesByUserRequest, opts ...grpc.CallOption) (*RolesResponse, error)
	FindUsersByRole(ctx context.Context, req *FindUsersByRoleRequest, opts ...grpc.CallOption) (*UsersResponse, error)
	UserHasRole(ctx context.Context, req *UserHasRoleRequest, opts ...grpc.CallOption) (*HasResponse, error)
	AssignRole(ctx context.Context, req *AssignRoleRequest, opts ...grpc.CallOption) (*EmptyResponse, error)
	AssignRoles(ctx context.Context, req *AssignRolesRequest, opts ...grpc.CallOption) (*BulkInsertResponse, error)
	RevokeRole(ctx context.Context, req *RevokeRoleRequest, opts ...grpc.CallOption) (*EmptyResponse, error)
	RevokeRoles(ctx context.Context, req *RevokeRolesRequest, opts ...grpc.CallOption) (*BulkDeleteResponse, error)
	ReplaceRoles(ctx context.Context, req *ReplaceRolesRequest, opts ...grpc.CallOption) (*ReplaceResponse, error)

	FindPermissionsByRole(ctx context.Context, req *FindPermissionsByRoleRequest, opts ...grpc.CallOption) (*PermissionsResponse, error)
	FindRolesByPermission(ctx context.Context, req *FindRolesByPermissionRequest, opts ...grpc.CallOption) (*RolesResponse, error)
	RoleHasPermission(ctx context.Context, req *RoleHasPermissionRequest, opts ...grpc.CallOption) (*HasResponse, error)
	GrantPermission(ctx context.Context, req *GrantPermissionRequest, opts ...grpc.CallOption) (*EmptyResponse, error)
	GrantPermissions(ctx context.Context, req *GrantPermissionsRequest, opts ...grpc.CallOption) (*BulkInsertResponse, error)
	RevokePermission(ctx context.Context, req *RevokePermissionRequest, opts ...grpc.CallOption) (*EmptyResponse, error)
	RevokePermissions(ctx context.Context, req *RevokePermissionsRequest, opts ...grpc.CallOption) (*BulkDeleteResponse, error)
	ReplacePermissions(ctx context.Context, req *ReplacePermissionsRequest, opts ...grpc.CallOption) (*ReplaceResponse, error)

	FindRolesByService(ctx context.Context, req *FindRolesByServiceRequest, opts ...grpc.CallOption) (*RolesResponse, error)
	FindServicesByRole(ctx context.Context, req *FindServicesByRoleRequest, opts ...grpc.CallOption) (*ServicesResponse, error)
	ServiceHasRole(ctx context.Context, req *ServiceHasRoleRequest, opts ...grpc.CallOption) (*HasResponse, error)
	GrantServiceRole(ctx context.Context, req *GrantServiceRoleRequest, opts ...grpc.CallOption) (*EmptyResponse, error)
	GrantServiceRoles(ctx context.Context, req *GrantServiceRolesRequest, opts ...grpc.CallOption) (*BulkInsertResponse, error)
	RevokeServiceRole(ctx context.Context, req *RevokeServiceRoleRequest, opts ...grpc.CallOption) (*EmptyResponse, error)
	RevokeServiceRoles(ctx context.Context, req *RevokeServiceRolesRequest, opts ...grpc.CallOption) (*BulkDeleteResponse, error)
	ReplaceServiceRoles(ctx context.Context, req *ReplaceServiceRolesRequest, opts ...grpc.CallOption) (*ReplaceResponse, error)

	FindPermissionsByUser(ctx context.Context, req *FindPermissionsByUserRequest, opts ...grpc.CallOption) (*PermissionsResponse, error)
	UserHasPermission(ctx context.Context, req *UserHasPermissionRequest, opts ...grpc.CallOption) (*HasResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAuthServiceClient creates an AuthService client over cc
func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc: cc}
}

// invoke performs one unary call with the JSON codec selected
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, req interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, req, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) FindRolesByUser(ctx context.Context, req *FindRolesByUserRequest, opts ...grpc.CallOption) (*RolesResponse, error) {
	return invoke[RolesResponse](ctx, c.cc, MethodFindRolesByUser, req, opts)
}

func (c *authServiceClient) FindUsersByRole(ctx context.Context, req *FindUsersByRoleRequest, opts ...grpc.CallOption) (*UsersResponse, error) {
	return invoke[UsersResponse](ctx, c.cc, MethodFindUsersByRole, req, opts)
}

func (c *authServiceClient) UserHasRole(ctx context.Context, req *UserHasRoleRequest, opts ...grpc.CallOption) (*HasResponse, error) {
	return invoke[HasResponse](ctx, c.cc, MethodUserHasRole, req, opts)
}

func (c *authServiceClient) AssignRole(ctx context.Context, req *AssignRoleRequest, opts ...grpc.CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, c.cc, MethodAssignRole, req, opts)
}

func (c *authServiceClient) AssignRoles(ctx context.Context, req *AssignRolesRequest, opts ...grpc.CallOption) (*BulkInsertResponse, error) {
	return invoke[BulkInsertResponse](ctx, c.cc, MethodAssignRoles, req, opts)
}

func (c *authServiceClient) RevokeRole(ctx context.Context, req *RevokeRoleRequest, opts ...grpc.CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, c.cc, MethodRevokeRole, req, opts)
}

func (c *authServiceClient) RevokeRoles(ctx context.Context, req *RevokeRolesRequest, opts ...grpc.CallOption) (*BulkDeleteResponse, error) {
	return invoke[BulkDeleteResponse](ctx, c.cc, MethodRevokeRoles, req, opts)
}

func (c *authServiceClient) ReplaceRoles(ctx context.Context, req *ReplaceRolesRequest, opts ...grpc.CallOption) (*ReplaceResponse, error) {
	return invoke[ReplaceResponse](ctx, c.cc, MethodReplaceRoles, req, opts)
}

func (c *authServiceClient) FindPermissionsByRole(ctx context.Context, req *FindPermissionsByRoleRequest, opts ...grpc.CallOption) (*PermissionsResponse, error) {
	return invoke[PermissionsResponse](ctx, c.cc, MethodFindPermissionsByRole, req, opts)
}

func (c *authServiceClient) FindRolesByPermission(ctx context.Context, req *FindRolesByPermissionRequest, opts ...grpc.CallOption) (*RolesResponse, error) {
	return invoke[RolesResponse](ctx, c.cc, MethodFindRolesByPermission, req, opts)
}

func (c *authServiceClient) RoleHasPermission(ctx context.Context, req *RoleHasPermissionRequest, opts ...grpc.CallOption) (*HasResponse, error) {
	return invoke[HasResponse](ctx, c.cc, MethodRoleHasPermission, req, opts)
}

func (c *authServiceClient) GrantPermission(ctx context.Context, req *GrantPermissionRequest, opts ...grpc.CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, c.cc, MethodGrantPermission, req, opts)
}

func (c *authServiceClient) GrantPermissions(ctx context.Context, req *GrantPermissionsRequest, opts ...grpc.CallOption) (*BulkInsertResponse, error) {
	return invoke[BulkInsertResponse](ctx, c.cc, MethodGrantPermissions, req, opts)
}

func (c *authServiceClient) RevokePermission(ctx context.Context, req *RevokePermissionRequest, opts ...grpc.CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, c.cc, MethodRevokePermission, req, opts)
}

func (c *authServiceClient) RevokePermissions(ctx context.Context, req *RevokePermissionsRequest, opts ...grpc.CallOption) (*BulkDeleteResponse, error) {
	return invoke[BulkDeleteResponse](ctx, c.cc, MethodRevokePermissions, req, opts)
}

func (c *authServiceClient) ReplacePermissions(ctx context.Context, req *ReplacePermissionsRequest, opts ...grpc.CallOption) (*ReplaceResponse, error) {
	return invoke[ReplaceResponse](ctx, c.cc, MethodReplacePermissions, req, opts)
}

func (c *authServiceClient) FindRolesByService(ctx context.Context, req *FindRolesByServiceRequest, opts ...grpc.CallOption) (*RolesResponse, error) {
	return invoke[RolesResponse](ctx, c.cc, MethodFindRolesByService, req, opts)
}

func (c *authServiceClient) FindServicesByRole(ctx context.Context, req *FindServicesByRoleRequest, opts ...grpc.CallOption) (*ServicesResponse, error) {
	return invoke[ServicesResponse](ctx, c.cc, MethodFindServicesByRole, req, opts)
}

func (c *authServiceClient) ServiceHasRole(ctx context.Context, req *ServiceHasRoleRequest, opts ...grpc.CallOption) (*HasResponse, error) {
	return invoke[HasResponse](ctx, c.cc, MethodServiceHasRole, req, opts)
}

func (c *authServiceClient) GrantServiceRole(ctx context.Context, req *GrantServiceRoleRequest, opts ...grpc.CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, c.cc, MethodGrantServiceRole, req, opts)
}

func (c *authServiceClient) GrantServiceRoles(ctx context.Context, req *GrantServiceRolesRequest, opts ...grpc.CallOption) (*BulkInsertResponse, error) {
	return invoke[BulkInsertResponse](ctx, c.cc, MethodGrantServiceRoles, req, opts)
}

func (c *authServiceClient) RevokeServiceRole(ctx context.Context, req *RevokeServiceRoleRequest, opts ...grpc.CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, c.cc, MethodRevokeServiceRole, req, opts)
}

func (c *authServiceClient) RevokeServiceRoles(ctx context.Context, req *RevokeServiceRolesRequest, opts ...grpc.CallOption) (*BulkDeleteResponse, error) {
	return invoke[BulkDeleteResponse](ctx, c.cc, MethodRevokeServiceRoles, req, opts)
}

func (c *authServiceClient) ReplaceServiceRoles(ctx context.Context, req *ReplaceServiceRolesRequest, opts ...grpc.CallOption) (*ReplaceResponse, error) {
	return invoke[ReplaceResponse](ctx, c.cc, MethodReplaceServiceRoles, req, opts)
}

func (c *authServiceClient) FindPermissionsByUser(ctx context.Context, req *FindPermissionsByUserRequest, opts ...grpc.CallOption) (*PermissionsResponse, error) {
	return invoke[PermissionsResponse](ctx, c.cc, MethodFindPermissionsByUser, req, opts)
}

func (c *authServiceClient) UserHasPermission(ctx context.Context, req *UserHasPermissionRequest, opts ...grpc.CallOption) (*HasResponse, error) {
	return invoke[HasResponse](ctx, c.cc, MethodUserHasPermission, req, opts)
}
