package httpapi

import (
	"net/http"
	"reflect"
	"testing"
)

func TestRoleRoutes_AdminOnly(t *testing.T) {
	env := newTestEnv()
	env.rolePerms.seed("editor", "document:write")

	// Role-scoped reads are not self-scoped; plain users are rejected.
	rec := env.request(t, http.MethodGet, "/v1/roles/editor/permissions", "alice", "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRoleRoutes_Permissions_CRUD(t *testing.T) {
	env := newTestEnv()
	env.seedAdmin("root")

	rec := env.request(t, http.MethodPost, "/v1/roles/editor/permissions", "root", `{"permission_ids":["document:read","document:write"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("grant batch status = %d, want 200", rec.Code)
	}
	if got := decodeBody[bulkInsertResponse](t, rec); got.Inserted != 2 {
		t.Errorf("inserted = %d, want 2", got.Inserted)
	}

	rec = env.request(t, http.MethodGet, "/v1/roles/editor/permissions", "root", "")
	body := decodeBody[permissionsResponse](t, rec)
	if !reflect.DeepEqual(body.Permissions, []string{"document:read", "document:write"}) {
		t.Errorf("permissions = %v", body.Permissions)
	}

	rec = env.request(t, http.MethodGet, "/v1/roles/editor/permissions/document:read", "root", "")
	if !decodeBody[hasResponse](t, rec).Has {
		t.Error("has document:read = false, want true")
	}

	rec = env.request(t, http.MethodPut, "/v1/roles/editor/permissions", "root", `{"permission_ids":["document:write","document:sign"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("replace status = %d, want 200", rec.Code)
	}
	diff := decodeBody[replaceResponse](t, rec)
	if !reflect.DeepEqual(diff.Added, []string{"document:sign"}) {
		t.Errorf("added = %v, want [document:sign]", diff.Added)
	}
	if !reflect.DeepEqual(diff.Removed, []string{"document:read"}) {
		t.Errorf("removed = %v, want [document:read]", diff.Removed)
	}
	if !reflect.DeepEqual(diff.Unchanged, []string{"document:write"}) {
		t.Errorf("unchanged = %v, want [document:write]", diff.Unchanged)
	}

	rec = env.request(t, http.MethodDelete, "/v1/roles/editor/permissions/document:sign", "root", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("revoke one status = %d, want 200", rec.Code)
	}

	rec = env.request(t, http.MethodDelete, "/v1/roles/editor/permissions", "root", `{"permission_ids":["document:write"]}`)
	if got := decodeBody[bulkDeleteResponse](t, rec).Removed; got != 1 {
		t.Errorf("removed = %d, want 1", got)
	}

	rec = env.request(t, http.MethodGet, "/v1/roles/editor/permissions", "root", "")
	if got := decodeBody[permissionsResponse](t, rec).Permissions; len(got) != 0 {
		t.Errorf("permissions after cleanup = %v, want none", got)
	}
}

func TestRoleRoutes_ListUsers(t *testing.T) {
	env := newTestEnv()
	env.seedAdmin("root")
	env.userRoles.seed("alice", "editor")
	env.userRoles.seed("bob", "editor")

	rec := env.request(t, http.MethodGet, "/v1/roles/editor/users", "root", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody[usersResponse](t, rec)
	if !reflect.DeepEqual(body.Users, []string{"alice", "bob"}) {
		t.Errorf("users = %v, want [alice bob]", body.Users)
	}
}

func TestRoleRoutes_ListServices(t *testing.T) {
	env := newTestEnv()
	env.seedAdmin("root")
	env.serviceRoles.seed("billing", "invoice:reader")
	env.serviceRoles.seed("reporting", "invoice:reader")

	rec := env.request(t, http.MethodGet, "/v1/roles/invoice:reader/services", "root", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody[servicesResponse](t, rec)
	if !reflect.DeepEqual(body.Services, []string{"billing", "reporting"}) {
		t.Errorf("services = %v, want [billing reporting]", body.Services)
	}
}

func TestRoleRoutes_PermissionRoles(t *testing.T) {
	env := newTestEnv()
	env.seedAdmin("root")
	env.rolePerms.seed("admin", "user:manage")
	env.rolePerms.seed("support", "user:manage")

	rec := env.request(t, http.MethodGet, "/v1/permissions/user:manage/roles", "root", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody[rolesResponse](t, rec)
	if !reflect.DeepEqual(body.Roles, []string{"admin", "support"}) {
		t.Errorf("roles = %v, want [admin support]", body.Roles)
	}
}
