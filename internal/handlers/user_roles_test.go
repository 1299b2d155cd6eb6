package handlers

import (
	"context"
	"reflect"
	"testing"

	"github.com/asakaida/banken/internal/repositories"
	"github.com/asakaida/banken/pkg/authrpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAuthHandler_FindRolesByUser_Success(t *testing.T) {
	env := newTestEnv()
	env.userRoles.seed("alice", "admin", "editor")

	resp, err := env.handler.FindRolesByUser(context.Background(), &authrpc.FindRolesByUserRequest{UserID: "alice"})
	if err != nil {
		t.Fatalf("FindRolesByUser() error = %v", err)
	}
	if !reflect.DeepEqual(resp.Roles, []string{"admin", "editor"}) {
		t.Errorf("FindRolesByUser() roles = %v, want [admin editor]", resp.Roles)
	}
}

func TestAuthHandler_FindRolesByUser_UnknownUser(t *testing.T) {
	env := newTestEnv()

	resp, err := env.handler.FindRolesByUser(context.Background(), &authrpc.FindRolesByUserRequest{UserID: "nobody"})
	if err != nil {
		t.Fatalf("FindRolesByUser() error = %v", err)
	}
	if len(resp.Roles) != 0 {
		t.Errorf("FindRolesByUser() roles = %v, want empty", resp.Roles)
	}
	if resp.Roles == nil {
		t.Error("FindRolesByUser() roles must encode as [], not null")
	}
}

func TestAuthHandler_FindRolesByUser_MissingUserID(t *testing.T) {
	env := newTestEnv()

	_, err := env.handler.FindRolesByUser(context.Background(), &authrpc.FindRolesByUserRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("FindRolesByUser() code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestAuthHandler_FindUsersByRole_Success(t *testing.T) {
	env := newTestEnv()
	env.userRoles.seed("alice", "editor")
	env.userRoles.seed("bob", "editor")
	env.userRoles.seed("carol", "viewer")

	resp, err := env.handler.FindUsersByRole(context.Background(), &authrpc.FindUsersByRoleRequest{RoleID: "editor"})
	if err != nil {
		t.Fatalf("FindUsersByRole() error = %v", err)
	}
	if !reflect.DeepEqual(resp.Users, []string{"alice", "bob"}) {
		t.Errorf("FindUsersByRole() users = %v, want [alice bob]", resp.Users)
	}
}

func TestAuthHandler_UserHasRole(t *testing.T) {
	env := newTestEnv()
	env.userRoles.seed("alice", "admin")

	tests := []struct {
		name     string
		req      *authrpc.UserHasRoleRequest
		want     bool
		wantCode codes.Code
	}{
		{
			name: "held role",
			req:  &authrpc.UserHasRoleRequest{UserID: "alice", RoleID: "admin"},
			want: true,
		},
		{
			name: "unheld role",
			req:  &authrpc.UserHasRoleRequest{UserID: "alice", RoleID: "viewer"},
			want: false,
		},
		{
			name: "unknown user is false not error",
			req:  &authrpc.UserHasRoleRequest{UserID: "nobody", RoleID: "admin"},
			want: false,
		},
		{
			name:     "missing user ID",
			req:      &authrpc.UserHasRoleRequest{RoleID: "admin"},
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "missing role ID",
			req:      &authrpc.UserHasRoleRequest{UserID: "alice"},
			wantCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.handler.UserHasRole(context.Background(), tt.req)
			if tt.wantCode != codes.OK {
				if status.Code(err) != tt.wantCode {
					t.Errorf("UserHasRole() code = %v, want %v", status.Code(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("UserHasRole() error = %v", err)
			}
			if resp.Has != tt.want {
				t.Errorf("UserHasRole() has = %v, want %v", resp.Has, tt.want)
			}
		})
	}
}

func TestAuthHandler_AssignRole_Idempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	req := &authrpc.AssignRoleRequest{UserID: "alice", RoleID: "admin"}

	if _, err := env.handler.AssignRole(ctx, req); err != nil {
		t.Fatalf("first AssignRole() error = %v", err)
	}
	if _, err := env.handler.AssignRole(ctx, req); err != nil {
		t.Fatalf("second AssignRole() error = %v", err)
	}

	resp, err := env.handler.FindRolesByUser(ctx, &authrpc.FindRolesByUserRequest{UserID: "alice"})
	if err != nil {
		t.Fatalf("FindRolesByUser() error = %v", err)
	}
	if !reflect.DeepEqual(resp.Roles, []string{"admin"}) {
		t.Errorf("roles after duplicate assign = %v, want [admin]", resp.Roles)
	}
}

func TestAuthHandler_AssignRoles_Counts(t *testing.T) {
	env := newTestEnv()
	env.userRoles.seed("alice", "admin")

	resp, err := env.handler.AssignRoles(context.Background(), &authrpc.AssignRolesRequest{
		UserID:  "alice",
		RoleIDs: []string{"admin", "editor", "viewer"},
	})
	if err != nil {
		t.Fatalf("AssignRoles() error = %v", err)
	}
	if resp.Inserted != 2 {
		t.Errorf("AssignRoles() inserted = %d, want 2", resp.Inserted)
	}
	if resp.AlreadyPresent != 1 {
		t.Errorf("AssignRoles() alreadyPresent = %d, want 1", resp.AlreadyPresent)
	}
}

func TestAuthHandler_AssignRoles_EmptyElement(t *testing.T) {
	env := newTestEnv()

	_, err := env.handler.AssignRoles(context.Background(), &authrpc.AssignRolesRequest{
		UserID:  "alice",
		RoleIDs: []string{"admin", ""},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("AssignRoles() code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestAuthHandler_RevokeRole_AbsentPair(t *testing.T) {
	env := newTestEnv()

	if _, err := env.handler.RevokeRole(context.Background(), &authrpc.RevokeRoleRequest{UserID: "alice", RoleID: "ghost"}); err != nil {
		t.Fatalf("RevokeRole() on absent pair error = %v, want nil", err)
	}
}

func TestAuthHandler_RevokeRoles_Counts(t *testing.T) {
	env := newTestEnv()
	env.userRoles.seed("alice", "admin", "editor")

	resp, err := env.handler.RevokeRoles(context.Background(), &authrpc.RevokeRolesRequest{
		UserID:  "alice",
		RoleIDs: []string{"admin", "ghost"},
	})
	if err != nil {
		t.Fatalf("RevokeRoles() error = %v", err)
	}
	if resp.Removed != 1 {
		t.Errorf("RevokeRoles() removed = %d, want 1", resp.Removed)
	}
}

func TestAuthHandler_ReplaceRoles(t *testing.T) {
	env := newTestEnv()
	env.userRoles.seed("alice", "admin", "editor")
	ctx := context.Background()

	resp, err := env.handler.ReplaceRoles(ctx, &authrpc.ReplaceRolesRequest{
		UserID:  "alice",
		RoleIDs: []string{"editor", "viewer"},
	})
	if err != nil {
		t.Fatalf("ReplaceRoles() error = %v", err)
	}
	if !reflect.DeepEqual(resp.Added, []string{"viewer"}) {
		t.Errorf("ReplaceRoles() added = %v, want [viewer]", resp.Added)
	}
	if !reflect.DeepEqual(resp.Removed, []string{"admin"}) {
		t.Errorf("ReplaceRoles() removed = %v, want [admin]", resp.Removed)
	}
	if !reflect.DeepEqual(resp.Unchanged, []string{"editor"}) {
		t.Errorf("ReplaceRoles() unchanged = %v, want [editor]", resp.Unchanged)
	}

	roles, err := env.handler.FindRolesByUser(ctx, &authrpc.FindRolesByUserRequest{UserID: "alice"})
	if err != nil {
		t.Fatalf("FindRolesByUser() error = %v", err)
	}
	if !reflect.DeepEqual(roles.Roles, []string{"editor", "viewer"}) {
		t.Errorf("roles after replace = %v, want [editor viewer]", roles.Roles)
	}
}

func TestAuthHandler_ReplaceRoles_EmptyDesired(t *testing.T) {
	env := newTestEnv()
	env.userRoles.seed("alice", "admin", "editor")

	resp, err := env.handler.ReplaceRoles(context.Background(), &authrpc.ReplaceRolesRequest{UserID: "alice"})
	if err != nil {
		t.Fatalf("ReplaceRoles() error = %v", err)
	}
	if !reflect.DeepEqual(resp.Removed, []string{"admin", "editor"}) {
		t.Errorf("ReplaceRoles() removed = %v, want [admin editor]", resp.Removed)
	}
	if len(resp.Added) != 0 || len(resp.Unchanged) != 0 {
		t.Errorf("ReplaceRoles() added = %v, unchanged = %v, want both empty", resp.Added, resp.Unchanged)
	}
}

func TestAuthHandler_FindPermissionsByUser_Union(t *testing.T) {
	env := newTestEnv()
	env.userRoles.seed("alice", "admin", "editor")
	env.rolePerms.seed("admin", "user:manage", "document:write")
	env.rolePerms.seed("editor", "document:write", "document:read")

	resp, err := env.handler.FindPermissionsByUser(context.Background(), &authrpc.FindPermissionsByUserRequest{UserID: "alice"})
	if err != nil {
		t.Fatalf("FindPermissionsByUser() error = %v", err)
	}
	want := []string{"document:read", "document:write", "user:manage"}
	if !reflect.DeepEqual(resp.Permissions, want) {
		t.Errorf("FindPermissionsByUser() = %v, want %v", resp.Permissions, want)
	}
}

func TestAuthHandler_UserHasPermission(t *testing.T) {
	env := newTestEnv()
	env.userRoles.seed("alice", "editor")
	env.rolePerms.seed("editor", "document:write")

	resp, err := env.handler.UserHasPermission(context.Background(), &authrpc.UserHasPermissionRequest{
		UserID:       "alice",
		PermissionID: "document:write",
	})
	if err != nil {
		t.Fatalf("UserHasPermission() error = %v", err)
	}
	if !resp.Has {
		t.Error("UserHasPermission() = false, want true")
	}

	resp, err = env.handler.UserHasPermission(context.Background(), &authrpc.UserHasPermissionRequest{
		UserID:       "nobody",
		PermissionID: "document:write",
	})
	if err != nil {
		t.Fatalf("UserHasPermission() error = %v", err)
	}
	if resp.Has {
		t.Error("UserHasPermission() for unknown user = true, want false")
	}
}

func TestAuthHandler_StorageUnavailable(t *testing.T) {
	env := newTestEnv()
	env.userRoles.err = repositories.ErrStorageUnavailable

	_, err := env.handler.FindRolesByUser(context.Background(), &authrpc.FindRolesByUserRequest{UserID: "alice"})
	if status.Code(err) != codes.Unavailable {
		t.Errorf("FindRolesByUser() code = %v, want Unavailable", status.Code(err))
	}

	_, err = env.handler.AssignRole(context.Background(), &authrpc.AssignRoleRequest{UserID: "alice", RoleID: "admin"})
	if status.Code(err) != codes.Unavailable {
		t.Errorf("AssignRole() code = %v, want Unavailable", status.Code(err))
	}
}
