package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asakaida/banken/internal/entities"
)

func (h *Handler) handleListServiceRoles(w http.ResponseWriter, r *http.Request) {
	service := entities.ServiceID(chi.URLParam(r, "serviceID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	roles, err := h.serviceRoles.ListRight(r.Context(), service)
	if err != nil {
		h.respondError(w, "list service roles", err)
		return
	}
	writeJSON(w, http.StatusOK, rolesResponse{Roles: toStrings(roles)})
}

func (h *Handler) handleReplaceServiceRoles(w http.ResponseWriter, r *http.Request) {
	service := entities.ServiceID(chi.URLParam(r, "serviceID"))
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

	result, err := h.serviceRoleReplacer.Replace(r.Context(), service, toIDs[entities.RoleID](payload.RoleIDs))
	if err != nil {
		h.respondError(w, "replace service roles", err)
		return
	}
	writeJSON(w, http.StatusOK, replaceResponse{
		Added:     toStrings(result.Added),
		Removed:   toStrings(result.Removed),
		Unchanged: toStrings(result.Unchanged),
	})
}

func (h *Handler) handleGrantServiceRoles(w http.ResponseWriter, r *http.Request) {
	service := entities.ServiceID(chi.URLParam(r, "serviceID"))
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

	result, err := h.serviceRoles.BulkInsert(r.Context(), service, toIDs[entities.RoleID](payload.RoleIDs))
	if err != nil {
		h.respondError(w, "grant service roles", err)
		return
	}
	writeJSON(w, http.StatusOK, bulkInsertResponse{Inserted: result.Inserted, AlreadyPresent: result.AlreadyPresent})
}

func (h *Handler) handleRevokeServiceRoles(w http.ResponseWriter, r *http.Request) {
	service := entities.ServiceID(chi.URLParam(r, "serviceID"))
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

	result, err := h.serviceRoles.BulkDelete(r.Context(), service, toIDs[entities.RoleID](payload.RoleIDs))
	if err != nil {
		h.respondError(w, "revoke service roles", err)
		return
	}
	writeJSON(w, http.StatusOK, bulkDeleteResponse{Removed: result.Removed})
}

func (h *Handler) handleServiceHasRole(w http.ResponseWriter, r *http.Request) {
	service := entities.ServiceID(chi.URLParam(r, "serviceID"))
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	has, err := h.serviceRoles.Exists(r.Context(), service, role)
	if err != nil {
		h.respondError(w, "check service role", err)
		return
	}
	writeJSON(w, http.StatusOK, hasResponse{Has: has})
}

func (h *Handler) handleGrantServiceRole(w http.ResponseWriter, r *http.Request) {
	service := entities.ServiceID(chi.URLParam(r, "serviceID"))
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	if err := h.serviceRoles.Insert(r.Context(), service, role); err != nil {
		h.respondError(w, "grant service role", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *Handler) handleRevokeServiceRole(w http.ResponseWriter, r *http.Request) {
	service := entities.ServiceID(chi.URLParam(r, "serviceID"))
	role := entities.RoleID(chi.URLParam(r, "roleID"))
	if !h.authorizeAdmin(w, r) {
		return
	}

	if err := h.serviceRoles.Delete(r.Context(), service, role); err != nil {
		h.respondError(w, "revoke service role", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
