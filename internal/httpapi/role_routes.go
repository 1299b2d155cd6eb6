package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asakaida/banken/internal/entities"
)

func (h *Handler) handleListRoleUsers(w http.ResponseWriter, r *http.Request) {
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	users, err := h.userRoles.ListLeft(r.Context(), role)
	if err != nil {
		h.respondError(w, "list role users", err)
		return
	}
	writeJSON(w, http.StatusOK, usersResponse{Users: toStrings(users)})
}

func (h *Handler) handleListRoleServices(w http.ResponseWriter, r *http.Request) {
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	services, err := h.serviceRoles.ListLeft(r.Context(), role)
	if err != nil {
		h.respondError(w, "list role services", err)
		return
	}
	writeJSON(w, http.StatusOK, servicesResponse{Services: toStrings(services)})
}

func (h *Handler) handleListRolePermissions(w http.ResponseWriter, r *http.Request) {
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	perms, err := h.rolePerms.ListRight(r.Context(), role)
	if err != nil {
		h.respondError(w, "list role permissions", err)
		return
	}
	writeJSON(w, http.StatusOK, permissionsResponse{Permissions: toStrings(perms)})
}

func (h *Handler) handleReplaceRolePermissions(w http.ResponseWriter, r *http.Request) {
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	var payload permissionsPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if i := emptyIndex(payload.PermissionIDs); i >= 0 {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", fmt.Sprintf("permission ID at index %d is empty", i))
		return
	}

	result, err := h.permReplacer.Replace(r.Context(), role, toIDs[entities.PermissionID](payload.PermissionIDs))
	if err != nil {
		h.respondError(w, "replace role permissions", err)
		return
	}
	writeJSON(w, http.StatusOK, replaceResponse{
		Added:     toStrings(result.Added),
		Removed:   toStrings(result.Removed),
		Unchanged: toStrings(result.Unchanged),
	})
}

func (h *Handler) handleGrantRolePermissions(w http.ResponseWriter, r *http.Request) {
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	var payload permissionsPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if i := emptyIndex(payload.PermissionIDs); i >= 0 {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", fmt.Sprintf("permission ID at index %d is empty", i))
		return
	}

	result, err := h.rolePerms.BulkInsert(r.Context(), role, toIDs[entities.PermissionID](payload.PermissionIDs))
	if err != nil {
		h.respondError(w, "grant role permissions", err)
		return
	}
	writeJSON(w, http.StatusOK, bulkInsertResponse{Inserted: result.Inserted, AlreadyPresent: result.AlreadyPresent})
}

func (h *Handler) handleRevokeRolePermissions(w http.ResponseWriter, r *http.Request) {
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	var payload permissionsPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if i := emptyIndex(payload.PermissionIDs); i >= 0 {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", fmt.Sprintf("permission ID at index %d is empty", i))
		return
	}

	result, err := h.rolePerms.BulkDelete(r.Context(), role, toIDs[entities.PermissionID](payload.PermissionIDs))
	if err != nil {
		h.respondError(w, "revoke role permissions", err)
		return
	}
	writeJSON(w, http.StatusOK, bulkDeleteResponse{Removed: result.Removed})
}

func (h *Handler) handleRoleHasPermission(w http.ResponseWriter, r *http.Request) {
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	perm := entities.PermissionID(chi.URLParam(r, "permissionID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	has, err := h.rolePerms.Exists(r.Context(), role, perm)
	if err != nil {
		h.respondError(w, "check role permission", err)
		return
	}
	writeJSON(w, http.StatusOK, hasResponse{Has: has})
}

func (h *Handler) handleGrantRolePermission(w http.ResponseWriter, r *http.Request) {
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	perm := entities.PermissionID(chi.URLParam(r, "permissionID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	if err := h.rolePerms.Insert(r.Context(), role, perm); err != nil {
		h.respondError(w, "grant role permission", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *Handler) handleRevokeRolePermission(w http.ResponseWriter, r *http.Request) {
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	perm := entities.PermissionID(chi.URLParam(r, "permissionID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	if err := h.rolePerms.Delete(r.Context(), role, perm); err != nil {
		h.respondError(w, "revoke role permission", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *Handler) handleListPermissionRoles(w http.ResponseWriter, r *http.Request) {
	perm := entities.PermissionID(chi.URLParam(r, "permissionID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	roles, err := h.rolePerms.ListLeft(r.Context(), perm)
	if err != nil {
		h.respondError(w, "list permission roles", err)
		return
	}
	writeJSON(w, http.StatusOK, rolesResponse{Roles: toStrings(roles)})
}
