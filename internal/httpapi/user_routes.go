package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asakaida/banken/internal/entities"
)

func (h *Handler) handleListUserRoles(w http.ResponseWriter, r *http.Request) {
	target := entities.UserID(chi.URLParam(r, "userID"))
	if !h.authorizeSelfOrAdmin(w, r, target) {
		return
	}

	roles, err := h.userRoles.ListRight(r.Context(), target)
	if err != nil {
		h.respondError(w, "list user roles", err)
		return
	}
	writeJSON(w, http.StatusOK, rolesResponse{Roles: toStrings(roles)})
}

func (h *Handler) handleReplaceUserRoles(w http.ResponseWriter, r *http.Request) {
	target := entities.UserID(chi.URLParam(r, "userID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	var payload rolesPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if i := emptyIndex(payload.RoleIDs); i >= 0 {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", fmt.Sprintf("role ID at index %d is empty", i))
		return
	}

	result, err := h.roleReplacer.Replace(r.Context(), target, toIDs[entities.RoleID](payload.RoleIDs))
	if err != nil {
		h.respondError(w, "replace user roles", err)
		return
	}
	writeJSON(w, http.StatusOK, replaceResponse{
		Added:     toStrings(result.Added),
		Removed:   toStrings(result.Removed),
		Unchanged: toStrings(result.Unchanged),
	})
}

func (h *Handler) handleAssignUserRoles(w http.ResponseWriter, r *http.Request) {
	target := entities.UserID(chi.URLParam(r, "userID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	var payload rolesPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if i := emptyIndex(payload.RoleIDs); i >= 0 {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", fmt.Sprintf("role ID at index %d is empty", i))
		return
	}

	result, err := h.userRoles.BulkInsert(r.Context(), target, toIDs[entities.RoleID](payload.RoleIDs))
	if err != nil {
		h.respondError(w, "assign user roles", err)
		return
	}
	writeJSON(w, http.StatusOK, bulkInsertResponse{Inserted: result.Inserted, AlreadyPresent: result.AlreadyPresent})
}

func (h *Handler) handleRevokeUserRoles(w http.ResponseWriter, r *http.Request) {
	target := entities.UserID(chi.URLParam(r, "userID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	var payload rolesPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if i := emptyIndex(payload.RoleIDs); i >= 0 {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", fmt.Sprintf("role ID at index %d is empty", i))
		return
	}

	result, err := h.userRoles.BulkDelete(r.Context(), target, toIDs[entities.RoleID](payload.RoleIDs))
	if err != nil {
		h.respondError(w, "revoke user roles", err)
		return
	}
	writeJSON(w, http.StatusOK, bulkDeleteResponse{Removed: result.Removed})
}

func (h *Handler) handleUserHasRole(w http.ResponseWriter, r *http.Request) {
	target := entities.UserID(chi.URLParam(r, "userID"))
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeSelfOrAdmin(w, r, target) {
		return
	}

	has, err := h.userRoles.Exists(r.Context(), target, role)
	if err != nil {
		h.respondError(w, "check user role", err)
		return
	}
	writeJSON(w, http.StatusOK, hasResponse{Has: has})
}

func (h *Handler) handleAssignUserRole(w http.ResponseWriter, r *http.Request) {
	target := entities.UserID(chi.URLParam(r, "userID"))
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	if err := h.userRoles.Insert(r.Context(), target, role); err != nil {
		h.respondError(w, "assign user role", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *Handler) handleRevokeUserRole(w http.ResponseWriter, r *http.Request) {
	target := entities.UserID(chi.URLParam(r, "userID"))
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	if err := h.userRoles.Delete(r.Context(), target, role); err != nil {
		h.respondError(w, "revoke user role", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *Handler) handleListUserPermissions(w http.ResponseWriter, r *http.Request) {
	target := entities.UserID(chi.URLParam(r, "userID"))
	if !h.authorizeSelfOrAdmin(w, r, target) {
		return
	}

	perms, err := h.resolver.UserPermissions(r.Context(), target)
	if err != nil {
		h.respondError(w, "list user permissions", err)
		return
	}
	writeJSON(w, http.StatusOK, permissionsResponse{Permissions: toStrings(perms)})
}

func (h *Handler) handleUserHasPermission(w http.ResponseWriter, r *http.Request) {
	target := entities.UserID(chi.URLParam(r, "userID"))
	perm := entities.PermissionID(chi.URLParam(r, "permissionID"))
	if !h.authorizeSelfOrAdmin(w, r, target) {
		return
	}

	has, err := h.resolver.HasPermission(r.Context(), target, perm)
	if err != nil {
		h.respondError(w, "check user permission", err)
		return
	}
	writeJSON(w, http.StatusOK, hasResponse{Has: has})
}
