package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

const (
	requestTimeout = 30 * time.Second
	rateLimit      = 120
	rateWindow     = time.Minute
)

// NewRouter constructs the chi router with the default middleware stack.
// metricsMW is optional and wraps every route when non-nil.
func NewRouter(h *Handler, metricsMW func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(chimw.Compress(5))
	r.Use(httprate.Limit(rateLimit, rateWindow, httprate.WithKeyFuncs(httprate.KeyByIP)))
	r.Use(requestLogger(h.logger))
	if metricsMW != nil {
		r.Use(metricsMW)
	}
	r.Use(identity)

	r.Get("/healthz", h.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Route("/roles", func(r chi.Router) {
				r.Get("/", h.handleListUserRoles)
				r.Put("/", h.handleReplaceUserRoles)
				r.Post("/", h.handleAssignUserRoles)
				r.Delete("/", h.handleRevokeUserRoles)
				r.Get("/{roleID}", h.handleUserHasRole)
				r.Put("/{roleID}", h.handleAssignUserRole)
				r.Delete("/{roleID}", h.handleRevokeUserRole)
			})
			r.Route("/permissions", func(r chi.Router) {
				r.Get("/", h.handleListUserPermissions)
				r.Get("/{permissionID}", h.handleUserHasPermission)
			})
		})

		r.Route("/roles/{roleID}", func(r chi.Router) {
			r.Get("/users", h.handleListRoleUsers)
			r.Get("/services", h.handleListRoleServices)
			r.Route("/permissions", func(r chi.Router) {
				r.Get("/", h.handleListRolePermissions)
				r.Put("/", h.handleReplaceRolePermissions)
				r.Post("/", h.handleGrantRolePermissions)
				r.Delete("/", h.handleRevokeRolePermissions)
				r.Get("/{permissionID}", h.handleRoleHasPermission)
				r.Put("/{permissionID}", h.handleGrantRolePermission)
				r.Delete("/{permissionID}", h.handleRevokeRolePermission)
			})
		})

		r.Get("/permissions/{permissionID}/roles", h.handleListPermissionRoles)

		r.Route("/services/{serviceID}/roles", func(r chi.Router) {
			r.Get("/", h.handleListServiceRoles)
			r.Put("/", h.handleReplaceServiceRoles)
			r.Post("/", h.handleGrantServiceRoles)
			r.Delete("/", h.handleRevokeServiceRoles)
			r.Get("/{roleID}", h.handleServiceHasRole)
			r.Put("/{roleID}", h.handleGrantServiceRole)
			r.Delete("/{roleID}", h.handleRevokeServiceRole)
		})
	})

	return r
}
