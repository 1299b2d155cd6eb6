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

func TestAuthHandler_FindRolesByService_Success(t *testing.T) {
	env := newTestEnv()
	env.serviceRoles.seed("billing", "invoice:reader", "invoice:writer")

	resp, err := env.handler.FindRolesByService(context.Background(), &authrpc.FindRolesByServiceRequest{ServiceID: "billing"})
	if err != nil {
		t.Fatalf("FindRolesByService() error = %v", err)
	}
	if !reflect.DeepEqual(resp.Roles, []string{"invoice:reader", "invoice:writer"}) {
		t.Errorf("FindRolesByService() = %v, want [invoice:reader invoice:writer]", resp.Roles)
	}
}

func TestAuthHandler_FindServicesByRole_Success(t *testing.T) {
	env := newTestEnv()
	env.serviceRoles.seed("billing", "invoice:reader")
	env.serviceRoles.seed("reporting", "invoice:reader")

	resp, err := env.handler.FindServicesByRole(context.Background(), &authrpc.FindServicesByRoleRequest{RoleID: "invoice:reader"})
	if err != nil {
		t.Fatalf("FindServicesByRole() error = %v", err)
	}
	if !reflect.DeepEqual(resp.Services, []string{"billing", "reporting"}) {
		t.Errorf("FindServicesByRole() = %v, want [billing reporting]", resp.Services)
	}
}

func TestAuthHandler_ServiceHasRole(t *testing.T) {
	env := newTestEnv()
	env.serviceRoles.seed("billing", "invoice:reader")

	tests := []struct {
		name      string
		serviceID string
		roleID    string
		want      bool
	}{
		{"held role", "billing", "invoice:reader", true},
		{"unheld role", "billing", "invoice:writer", false},
		{"unknown service", "ghost", "invoice:reader", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.handler.ServiceHasRole(context.Background(), &authrpc.ServiceHasRoleRequest{
				ServiceID: tt.serviceID,
				RoleID:    tt.roleID,
			})
			if err != nil {
				t.Fatalf("ServiceHasRole() error = %v", err)
			}
			if resp.Has != tt.want {
				t.Errorf("ServiceHasRole() = %v, want %v", resp.Has, tt.want)
			}
		})
	}
}

func TestAuthHandler_GrantServiceRoles_Counts(t *testing.T) {
	env := newTestEnv()
	env.serviceRoles.seed("billing", "invoice:reader")

	resp, err := env.handler.GrantServiceRoles(context.Background(), &authrpc.GrantServiceRolesRequest{
		ServiceID: "billing",
		RoleIDs:   []string{"invoice:reader", "invoice:writer"},
	})
	if err != nil {
		t.Fatalf("GrantServiceRoles() error = %v", err)
	}
	if resp.Inserted != 1 || resp.AlreadyPresent != 1 {
		t.Errorf("GrantServiceRoles() = inserted %d, alreadyPresent %d, want 1 and 1", resp.Inserted, resp.AlreadyPresent)
	}
}

func TestAuthHandler_GrantServiceRoles_MissingServiceID(t *testing.T) {
	env := newTestEnv()

	_, err := env.handler.GrantServiceRoles(context.Background(), &authrpc.GrantServiceRolesRequest{
		RoleIDs: []string{"invoice:reader"},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("GrantServiceRoles() code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestAuthHandler_RevokeServiceRole_AbsentPair(t *testing.T) {
	env := newTestEnv()

	if _, err := env.handler.RevokeServiceRole(context.Background(), &authrpc.RevokeServiceRoleRequest{
		ServiceID: "billing",
		RoleID:    "ghost",
	}); err != nil {
		t.Fatalf("RevokeServiceRole() on absent pair error = %v, want nil", err)
	}
}

func TestAuthHandler_RevokeServiceRoles_Counts(t *testing.T) {
	env := newTestEnv()
	env.serviceRoles.seed("billing", "invoice:reader", "invoice:writer")

	resp, err := env.handler.RevokeServiceRoles(context.Background(), &authrpc.RevokeServiceRolesRequest{
		ServiceID: "billing",
		RoleIDs:   []string{"invoice:writer"},
	})
	if err != nil {
		t.Fatalf("RevokeServiceRoles() error = %v", err)
	}
	if resp.Removed != 1 {
		t.Errorf("RevokeServiceRoles() removed = %d, want 1", resp.Removed)
	}
}

func TestAuthHandler_ReplaceServiceRoles(t *testing.T) {
	env := newTestEnv()
	env.serviceRoles.seed("billing", "invoice:reader", "legacy:admin")
	ctx := context.Background()

	resp, err := env.handler.ReplaceServiceRoles(ctx, &authrpc.ReplaceServiceRolesRequest{
		ServiceID: "billing",
		RoleIDs:   []string{"invoice:reader", "invoice:writer"},
	})
	if err != nil {
		t.Fatalf("ReplaceServiceRoles() error = %v", err)
	}
	if !reflect.DeepEqual(resp.Added, []string{"invoice:writer"}) {
		t.Errorf("ReplaceServiceRoles() added = %v, want [invoice:writer]", resp.Added)
	}
	if !reflect.DeepEqual(resp.Removed, []string{"legacy:admin"}) {
		t.Errorf("ReplaceServiceRoles() removed = %v, want [legacy:admin]", resp.Removed)
	}

	roles, err := env.handler.FindRolesByService(ctx, &authrpc.FindRolesByServiceRequest{ServiceID: "billing"})
	if err != nil {
		t.Fatalf("FindRolesByService() error = %v", err)
	}
	if !reflect.DeepEqual(roles.Roles, []string{"invoice:reader", "invoice:writer"}) {
		t.Errorf("roles after replace = %v, want [invoice:reader invoice:writer]", roles.Roles)
	}
}

func TestAuthHandler_ServiceRoles_StorageUnavailable(t *testing.T) {
	env := newTestEnv()
	env.serviceRoles.err = repositories.ErrStorageUnavailable

	_, err := env.handler.ReplaceServiceRoles(context.Background(), &authrpc.ReplaceServiceRolesRequest{
		ServiceID: "billing",
		RoleIDs:   []string{"invoice:reader"},
	})
	if status.Code(err) != codes.Unavailable {
		t.Errorf("ReplaceServiceRoles() code = %v, want Unavailable", status.Code(err))
	}
}
