package httpapi

import (
	"net/http"
	"reflect"
	"testing"
)

func TestServiceRoutes_CRUD(t *testing.T) {
	env := newTestEnv()
	env.seedAdmin("root")

	rec := env.request(t, http.MethodPost, "/v1/services/billing/roles", "root", `{"role_ids":["invoice:reader","invoice:writer"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("grant batch status = %d, want 200", rec.Code)
	}

	rec = env.request(t, http.MethodGet, "/v1/services/billing/roles", "root", "")
	body := decodeBody[rolesResponse](t, rec)
	if !reflect.DeepEqual(body.Roles, []string{"invoice:reader", "invoice:writer"}) {
		t.Errorf("roles = %v", body.Roles)
	}

	rec = env.request(t, http.MethodGet, "/v1/services/billing/roles/invoice:reader", "root", "")
	if !decodeBody[hasResponse](t, rec).Has {
		t.Error("has invoice:reader = false, want true")
	}

	rec = env.request(t, http.MethodPut, "/v1/services/billing/roles", "root", `{"role_ids":["invoice:reader"]}`)
	diff := decodeBody[replaceResponse](t, rec)
	if !reflect.DeepEqual(diff.Removed, []string{"invoice:writer"}) {
		t.Errorf("removed = %v, want [invoice:writer]", diff.Removed)
	}

	rec = env.request(t, http.MethodDelete, "/v1/services/billing/roles", "root", `{"role_ids":["invoice:reader"]}`)
	if got := decodeBody[bulkDeleteResponse](t, rec).Removed; got != 1 {
		t.Errorf("removed = %d, want 1", got)
	}
}

func TestServiceRoutes_SingleRole(t *testing.T) {
	env := newTestEnv()
	env.seedAdmin("root")

	rec := env.request(t, http.MethodPut, "/v1/services/billing/roles/invoice:reader", "root", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("grant status = %d, want 200", rec.Code)
	}

	rec = env.request(t, http.MethodDelete, "/v1/services/billing/roles/invoice:reader", "root", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("revoke status = %d, want 200", rec.Code)
	}

	rec = env.request(t, http.MethodGet, "/v1/services/billing/roles/invoice:reader", "root", "")
	if decodeBody[hasResponse](t, rec).Has {
		t.Error("has = true after revoke, want false")
	}
}

func TestServiceRoutes_AdminOnly(t *testing.T) {
	env := newTestEnv()
	env.serviceRoles.seed("billing", "invoice:reader")

	rec := env.request(t, http.MethodGet, "/v1/services/billing/roles", "alice", "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestServiceRoutes_ReplaceValidation(t *testing.T) {
	env := newTestEnv()
	env.seedAdmin("root")

	rec := env.request(t, http.MethodPut, "/v1/services/billing/roles", "root", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing body status = %d, want 400", rec.Code)
	}

	rec = env.request(t, http.MethodPut, "/v1/services/billing/roles", "root", `{"role_ids":[""]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty role ID status = %d, want 400", rec.Code)
	}
}
