// Package httpapi exposes the association stores over REST for callers
// outside the trusted service mesh. Every route except /healthz requires a
// caller identity and is checked against the self-or-admin policy before
// any store access.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/internal/repositories"
	"github.com/asakaida/banken/internal/services/authorization"
	"github.com/asakaida/banken/internal/services/relation"
)

// HealthChecker reports whether the backing store answers.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler serves the REST facade.
type Handler struct {
	logger *slog.Logger

	userRoles    repositories.UserRoleStore
	rolePerms    repositories.RolePermissionStore
	serviceRoles repositories.ServiceRoleStore

	roleReplacer        relation.ReplacerInterface[entities.UserID, entities.RoleID]
	permReplacer        relation.ReplacerInterface[entities.RoleID, entities.PermissionID]
	serviceRoleReplacer relation.ReplacerInterface[entities.ServiceID, entities.RoleID]

	resolver authorization.ResolverInterface
	guard    authorization.GuardInterface
	health   HealthChecker
}

// HandlerParams groups the dependencies of the REST facade.
type HandlerParams struct {
	Logger              *slog.Logger
	UserRoles           repositories.UserRoleStore
	RolePermissions     repositories.RolePermissionStore
	ServiceRoles        repositories.ServiceRoleStore
	RoleReplacer        relation.ReplacerInterface[entities.UserID, entities.RoleID]
	PermissionReplacer  relation.ReplacerInterface[entities.RoleID, entities.PermissionID]
	ServiceRoleReplacer relation.ReplacerInterface[entities.ServiceID, entities.RoleID]
	Resolver            authorization.ResolverInterface
	Guard               authorization.GuardInterface
	Health              HealthChecker
}

// NewHandler creates the REST facade handler.
func NewHandler(params HandlerParams) *Handler {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:              logger,
		userRoles:           params.UserRoles,
		rolePerms:           params.RolePermissions,
		serviceRoles:        params.ServiceRoles,
		roleReplacer:        params.RoleReplacer,
		permReplacer:        params.PermissionReplacer,
		serviceRoleReplacer: params.ServiceRoleReplacer,
		resolver:            params.Resolver,
		guard:               params.Guard,
		health:              params.Health,
	}
}

// authorizeAdmin enforces the admin policy. It writes the error response
// itself and reports whether the request may proceed.
func (h *Handler) authorizeAdmin(w http.ResponseWriter, r *http.Request) bool {
	caller := callerFrom(r.Context())
	if caller == "" {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "missing "+SubjectHeader+" header")
		return false
	}
	if err := h.guard.AuthorizeAdmin(r.Context(), caller); err != nil {
		h.respondError(w, "authorize admin", err)
		return false
	}
	return true
}

// authorizeSelfOrAdmin enforces the self-or-admin policy for routes scoped
// to a target user.
func (h *Handler) authorizeSelfOrAdmin(w http.ResponseWriter, r *http.Request, target entities.UserID) bool {
	caller := callerFrom(r.Context())
	if caller == "" {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "missing "+SubjectHeader+" header")
		return false
	}
	if err := h.guard.AuthorizeSelfOrAdmin(r.Context(), caller, target); err != nil {
		h.respondError(w, "authorize self-or-admin", err)
		return false
	}
	return true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, authorization.ErrForbidden):
		writeProblem(w, http.StatusForbidden, "Forbidden", "caller is not allowed to perform this operation")
	case repositories.IsUnavailable(err):
		w.Header().Set("Retry-After", "1")
		writeProblem(w, http.StatusServiceUnavailable, "Storage Unavailable", "the backing store is temporarily unavailable")
	default:
		h.logger.Error(op, slog.Any("error", err))
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.HealthCheck(r.Context()); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			w.Header().Set("Retry-After", "1")
			writeProblem(w, http.StatusServiceUnavailable, "Storage Unavailable", "database ping failed")
			return
		}
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
