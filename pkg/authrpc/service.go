package authrpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "banken.v1.AuthService"

// Full method names, as they appear on the wire and in interceptors
const (
	MethodFindRolesByUser       = "/banken.v1.AuthService/FindRolesByUser"
	MethodFindUsersByRole       = "/banken.v1.AuthService/FindUsersByRole"
	MethodUserHasRole           = "/banken.v1.AuthService/UserHasRole"
	MethodAssignRole            = "/banken.v1.AuthService/AssignRole"
	MethodAssignRoles           = "/banken.v1.AuthService/AssignRoles"
	MethodRevokeRole            = "/banken.v1.AuthService/RevokeRole"
	MethodRevokeRoles           = "/banken.v1.AuthService/RevokeRoles"
	MethodReplaceRoles          = "/banken.v1.AuthService/ReplaceRoles"
	MethodFindPermissionsByRole = "/banken.v1.AuthService/FindPermissionsByRole"
	MethodFindRolesByPermission = "/banken.v1.AuthService/FindRolesByPermission"
	MethodRoleHasPermission     = "/banken.v1.AuthService/RoleHasPermission"
	MethodGrantPermission       = "/banken.v1.AuthService/GrantPermission"
	MethodGrantPermissions      = "/banken.v1.AuthService/GrantPermissions"
	MethodRevokePermission      = "/banken.v1.AuthService/RevokePermission"
	MethodRevokePermissions     = "/banken.v1.AuthService/RevokePermissions"
	MethodReplacePermissions    = "/banken.v1.AuthService/ReplacePermissions"
	MethodFindRolesByService    = "/banken.v1.AuthService/FindRolesByService"
	MethodFindServicesByRole    = "/banken.v1.AuthService/FindServicesByRole"
	MethodServiceHasRole        = "/banken.v1.AuthService/ServiceHasRole"
	MethodGrantServiceRole      = "/banken.v1.AuthService/GrantServiceRole"
	MethodGrantServiceRoles     = "/banken.v1.AuthService/GrantServiceRoles"
	MethodRevokeServiceRole     = "/banken.v1.AuthService/RevokeServiceRole"
	MethodRevokeServiceRoles    = "/banken.v1.AuthService/RevokeServiceRoles"
	MethodReplaceServiceRoles   = "/banken.v1.AuthService/ReplaceServiceRoles"
	MethodFindPermissionsByUser = "/banken.v1.AuthService/FindPermissionsByUser"
	MethodUserHasPermission     = "/banken.v1.AuthService/UserHasPermission"
)

// AuthServiceServer is the server contract of the AuthService
type AuthServiceServer interface {
	// user-role associations
	FindRolesByUser(ctx context.Context, req *FindRolesByUserRequest) (*RolesResponse, error)
	FindUsersByRole(ctx context.Context, req *FindUsersByRoleRequest) (*UsersResponse, error)
	UserHasRole(ctx context.Context, req *UserHasRoleRequest) (*HasResponse, error)
	AssignRole(ctx context.Context, req *AssignRoleRequest) (*EmptyResponse, error)
	AssignRoles(ctx context.Context, req *AssignRolesRequest) (*BulkInsertResponse, error)
	RevokeRole(ctx context.Context, req *RevokeRoleRequest) (*EmptyResponse, error)
	RevokeRoles(ctx context.Context, req *RevokeRolesRequest) (*BulkDeleteResponse, error)
	ReplaceRoles(ctx context.Context, req *ReplaceRolesRequest) (*ReplaceResponse, error)

	// role-permission associations
	FindPermissionsByRole(ctx context.Context, req *FindPermissionsByRoleRequest) (*PermissionsResponse, error)
	FindRolesByPermission(ctx context.Context, req *FindRolesByPermissionRequest) (*RolesResponse, error)
	RoleHasPermission(ctx context.Context, req *RoleHasPermissionRequest) (*HasResponse, error)
	GrantPermission(ctx context.Context, req *GrantPermissionRequest) (*EmptyResponse, error)
	GrantPermissions(ctx context.Context, req *GrantPermissionsRequest) (*BulkInsertResponse, error)
	RevokePermission(ctx context.Context, req *RevokePermissionRequest) (*EmptyResponse, error)
	RevokePermissions(ctx context.Context, req *RevokePermissionsRequest) (*BulkDeleteResponse, error)
	ReplacePermissions(ctx context.Context, req *ReplacePermissionsRequest) (*ReplaceResponse, error)

	// service-role associations
	FindRolesByService(ctx context.Context, req *FindRolesByServiceRequest) (*RolesResponse, error)
	FindServicesByRole(ctx context.Context, req *FindServicesByRoleRequest) (*ServicesResponse, error)
	ServiceHasRole(ctx context.Context, req *ServiceHasRoleRequest) (*HasResponse, error)
	GrantServiceRole(ctx context.Context, req *GrantServiceRoleRequest) (*EmptyResponse, error)
	GrantServiceRoles(ctx context.Context, req *GrantServiceRolesRequest) (*BulkInsertResponse, error)
	RevokeServiceRole(ctx context.Context, req *RevokeServiceRoleRequest) (*EmptyResponse, error)
	RevokeServiceRoles(ctx context.Context, req *RevokeServiceRolesRequest) (*BulkDeleteResponse, error)
	ReplaceServiceRoles(ctx context.Context, req *ReplaceServiceRolesRequest) (*ReplaceResponse, error)

	// derived queries
	FindPermissionsByUser(ctx context.Context, req *FindPermissionsByUserRequest) (*PermissionsResponse, error)
	UserHasPermission(ctx context.Context, req *UserHasPermissionRequest) (*HasResponse, error)
}

// RegisterAuthServiceServer registers srv on s
func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthServiceDesc, srv)
}

// handler adapts one typed server method to the grpc.MethodDesc handler
// signature, decoding the request and threading the chained interceptor
func handler[Req any](method string, invoke func(srv AuthServiceServer, ctx context.Context, req *Req) (interface{}, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		req := new(Req)
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return invoke(srv.(AuthServiceServer), ctx, req)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		return interceptor(ctx, req, info, func(ctx context.Context, r interface{}) (interface{}, error) {
			return invoke(srv.(AuthServiceServer), ctx, r.(*Req))
		})
	}
}

// AuthServiceDesc is the grpc.ServiceDesc of the AuthService
var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FindRolesByUser",
			Handler: handler(MethodFindRolesByUser, func(srv AuthServiceServer, ctx context.Context, req *FindRolesByUserRequest) (interface{}, error) {
				return srv.FindRolesByUser(ctx, req)
			}),
		},
		{
			MethodName: "FindUsersByRole",
			Handler: handler(MethodFindUsersByRole, func(srv AuthServiceServer, ctx context.Context, req *FindUsersByRoleRequest) (interface{}, error) {
				return srv.FindUsersByRole(ctx, req)
			}),
		},
		{
			MethodName: "UserHasRole",
			Handler: handler(MethodUserHasRole, func(srv AuthServiceServer, ctx context.Context, req *UserHasRoleRequest) (interface{}, error) {
				return srv.UserHasRole(ctx, req)
			}),
		},
		{
			MethodName: "AssignRole",
			Handler: handler(MethodAssignRole, func(srv AuthServiceServer, ctx context.Context, req *AssignRoleRequest) (interface{}, error) {
				return srv.AssignRole(ctx, req)
			}),
		},
		{
			MethodName: "AssignRoles",
			Handler: handler(MethodAssignRoles, func(srv AuthServiceServer, ctx context.Context, req *AssignRolesRequest) (interface{}, error) {
				return srv.AssignRoles(ctx, req)
			}),
		},
		{
			MethodName: "RevokeRole",
			Handler: handler(MethodRevokeRole, func(srv AuthServiceServer, ctx context.Context, req *RevokeRoleRequest) (interface{}, error) {
				return srv.RevokeRole(ctx, req)
			}),
		},
		{
			MethodName: "RevokeRoles",
			Handler: handler(MethodRevokeRoles, func(srv AuthServiceServer, ctx context.Context, req *RevokeRolesRequest) (interface{}, error) {
				return srv.RevokeRoles(ctx, req)
			}),
		},
		{
			MethodName: "ReplaceRoles",
			Handler: handler(MethodReplaceRoles, func(srv AuthServiceServer, ctx context.Context, req *ReplaceRolesRequest) (interface{}, error) {
				return srv.ReplaceRoles(ctx, req)
			}),
		},
		{
			MethodName: "FindPermissionsByRole",
			Handler: handler(MethodFindPermissionsByRole, func(srv AuthServiceServer, ctx context.Context, req *FindPermissionsByRoleRequest) (interface{}, error) {
				return srv.FindPermissionsByRole(ctx, req)
			}),
		},
		{
			MethodName: "FindRolesByPermission",
			Handler: handler(MethodFindRolesByPermission, func(srv AuthServiceServer, ctx context.Context, req *FindRolesByPermissionRequest) (interface{}, error) {
				return srv.FindRolesByPermission(ctx, req)
			}),
		},
		{
			MethodName: "RoleHasPermission",
			Handler: handler(MethodRoleHasPermission, func(srv AuthServiceServer, ctx context.Context, req *RoleHasPermissionRequest) (interface{}, error) {
				return srv.RoleHasPermission(ctx, req)
			}),
		},
		{
			MethodName: "GrantPermission",
			Handler: handler(MethodGrantPermission, func(srv AuthServiceServer, ctx context.Context, req *GrantPermissionRequest) (interface{}, error) {
				return srv.GrantPermission(ctx, req)
			}),
		},
		{
			MethodName: "GrantPermissions",
			Handler: handler(MethodGrantPermissions, func(srv AuthServiceServer, ctx context.Context, req *GrantPermissionsRequest) (interface{}, error) {
				return srv.GrantPermissions(ctx, req)
			}),
		},
		{
			MethodName: "RevokePermission",
			Handler: handler(MethodRevokePermission, func(srv AuthServiceServer, ctx context.Context, req *RevokePermissionRequest) (interface{}, error) {
				return srv.RevokePermission(ctx, req)
			}),
		},
		{
			MethodName: "RevokePermissions",
			Handler: handler(MethodRevokePermissions, func(srv AuthServiceServer, ctx context.Context, req *RevokePermissionsRequest) (interface{}, error) {
				return srv.RevokePermissions(ctx, req)
			}),
		},
		{
			MethodName: "ReplacePermissions",
			Handler: handler(MethodReplacePermissions, func(srv AuthServiceServer, ctx context.Context, req *ReplacePermissionsRequest) (interface{}, error) {
				return srv.ReplacePermissions(ctx, req)
			}),
		},
		{
			MethodName: "FindRolesByService",
			Handler: handler(MethodFindRolesByService, func(srv AuthServiceServer, ctx context.Context, req *FindRolesByServiceRequest) (interface{}, error) {
				return srv.FindRolesByService(ctx, req)
			}),
		},
		{
			MethodName: "FindServicesByRole",
			Handler: handler(MethodFindServicesByRole, func(srv AuthServiceServer, ctx context.Context, req *FindServicesByRoleRequest) (interface{}, error) {
				return srv.FindServicesByRole(ctx, req)
			}),
		},
		{
			MethodName: "ServiceHasRole",
			Handler: handler(MethodServiceHasRole, func(srv AuthServiceServer, ctx context.Context, req *ServiceHasRoleRequest) (interface{}, error) {
				return srv.ServiceHasRole(ctx, req)
			}),
		},
		{
			MethodName: "GrantServiceRole",
			Handler: handler(MethodGrantServiceRole, func(srv AuthServiceServer, ctx context.Context, req *GrantServiceRoleRequest) (interface{}, error) {
				return srv.GrantServiceRole(ctx, req)
			}),
		},
		{
			MethodName: "GrantServiceRoles",
			Handler: handler(MethodGrantServiceRoles, func(srv AuthServiceServer, ctx context.Context, req *GrantServiceRolesRequest) (interface{}, error) {
				return srv.GrantServiceRoles(ctx, req)
			}),
		},
		{
			MethodName: "RevokeServiceRole",
			Handler: handler(MethodRevokeServiceRole, func(srv AuthServiceServer, ctx context.Context, req *RevokeServiceRoleRequest) (interface{}, error) {
				return srv.RevokeServiceRole(ctx, req)
			}),
		},
		{
			MethodName: "RevokeServiceRoles",
			Handler: handler(MethodRevokeServiceRoles, func(srv AuthServiceServer, ctx context.Context, req *RevokeServiceRolesRequest) (interface{}, error) {
				return srv.RevokeServiceRoles(ctx, req)
			}),
		},
		{
			MethodName: "ReplaceServiceRoles",
			Handler: handler(MethodReplaceServiceRoles, func(srv AuthServiceServer, ctx context.Context, req *ReplaceServiceRolesRequest) (interface{}, error) {
				return srv.ReplaceServiceRoles(ctx, req)
			}),
		},
		{
			MethodName: "FindPermissionsByUser",
			Handler: handler(MethodFindPermissionsByUser, func(srv AuthServiceServer, ctx context.Context, req *FindPermissionsByUserRequest) (interface{}, error) {
				return srv.FindPermissionsByUser(ctx, req)
			}),
		},
		{
			MethodName: "UserHasPermission",
			Handler: handler(MethodUserHasPermission, func(srv AuthServiceServer, ctx context.Context, req *UserHasPermissionRequest) (interface{}, error) {
				return srv.UserHasPermission(ctx, req)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}
