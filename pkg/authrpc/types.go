package authrpc

// Requests for the user-role domain

type FindRolesByUserRequest struct {
	UserID string `json:"user_id"`
}

type FindUsersByRoleRequest struct {
	RoleID string `json:"role_id"`
}

type UserHasRoleRequest struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}

type AssignRoleRequest struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}

type AssignRolesRequest struct {
	UserID  string   `json:"user_id"`
	RoleIDs []string `json:"role_ids"`
}

type RevokeRoleRequest struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}

type RevokeRolesRequest struct {
	UserID  string   `json:"user_id"`
	RoleIDs []string `json:"role_ids"`
}

type ReplaceRolesRequest struct {
	UserID  string   `json:"user_id"`
	RoleIDs []string `json:"role_ids"`
}

// Requests for the role-permission domain

type FindPermissionsByRoleRequest struct {
	RoleID string `json:"role_id"`
}

type FindRolesByPermissionRequest struct {
	PermissionID string `json:"permission_id"`
}

type RoleHasPermissionRequest struct {
	RoleID       string `json:"role_id"`
	PermissionID string `json:"permission_id"`
}

type GrantPermissionRequest struct {
	RoleID       string `json:"role_id"`
	PermissionID string `json:"permission_id"`
}

type GrantPermissionsRequest struct {
	RoleID        string   `json:"role_id"`
	PermissionIDs []string `json:"permission_ids"`
}

type RevokePermissionRequest struct {
	RoleID       string `json:"role_id"`
	PermissionID string `json:"permission_id"`
}

type RevokePermissionsRequest struct {
	RoleID        string   `json:"role_id"`
	PermissionIDs []string `json:"permission_ids"`
}

type ReplacePermissionsRequest struct {
	RoleID        string   `json:"role_id"`
	PermissionIDs []string `json:"permission_ids"`
}

// Requests for the service-role domain

type FindRolesByServiceRequest struct {
	ServiceID string `json:"service_id"`
}

type FindServicesByRoleRequest struct {
	RoleID string `json:"role_id"`
}

type ServiceHasRoleRequest struct {
	ServiceID string `json:"service_id"`
	RoleID    string `json:"role_id"`
}

type GrantServiceRoleRequest struct {
	ServiceID string `json:"service_id"`
	RoleID    string `json:"role_id"`
}

type GrantServiceRolesRequest struct {
	ServiceID string   `json:"service_id"`
	RoleIDs   []string `json:"role_ids"`
}

type RevokeServiceRoleRequest struct {
	ServiceID string `json:"service_id"`
	RoleID    string `json:"role_id"`
}

type RevokeServiceRolesRequest struct {
	ServiceID string   `json:"service_id"`
	RoleIDs   []string `json:"role_ids"`
}

type ReplaceServiceRolesRequest struct {
	ServiceID string   `json:"service_id"`
	RoleIDs   []string `json:"role_ids"`
}

// Requests for derived queries

type FindPermissionsByUserRequest struct {
	UserID string `json:"user_id"`
}

type UserHasPermissionRequest struct {
	UserID       string `json:"user_id"`
	PermissionID string `json:"permission_id"`
}

// Shared responses

type RolesResponse struct {
	Roles []string `json:"roles"`
}

type UsersResponse struct {
	Users []string `json:"users"`
}

type ServicesResponse struct {
	Services []string `json:"services"`
}

type PermissionsResponse struct {
	Permissions []string `json:"permissions"`
}

type HasResponse struct {
	Has bool `json:"has"`
}

// EmptyResponse is the response of single assign/revoke calls, which carry
// no payload beyond success
type EmptyResponse struct{}

// BulkInsertResponse reports how a batch assign split between newly stored
// and already present pairs
type BulkInsertResponse struct {
	Inserted       int `json:"inserted"`
	AlreadyPresent int `json:"already_present"`
}

// BulkDeleteResponse reports how many pairs a batch revoke removed
type BulkDeleteResponse struct {
	Removed int `json:"removed"`
}

// ReplaceResponse reports the difference a replace applied
type ReplaceResponse struct {
	Added     []string `json:"added"`
	Removed   []string `json:"removed"`
	Unchanged []string `json:"unchanged"`
}
