package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/builduhq/tenant-api/internal/config"
	"github.com/builduhq/tenant-api/internal/infra/http/handler"
	"github.com/builduhq/tenant-api/internal/infra/http/middleware"
	"github.com/builduhq/tenant-api/pkg/logger"
)

// Handlers groups the handlers wired into the router.
type Handlers struct {
	Role       *handler.RoleHandler
	User       *handler.UserHandler
	Permission *handler.PermissionHandler
	Tenant     *handler.TenantHandler
}

// NewRouter builds the chi router with the global middleware chain and
// all API routes registered.
func NewRouter(cfg *config.Config, log *logger.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	// Order matters: recovery first, then request ID so every log line
	// and metric below can see it.
	r.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.Logger(log),
	)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		// Simulated latency applies to API routes only, never to
		// health checks or metrics scrapes.
		api.Use(middleware.Latency(cfg.Latency))

		api.Route("/roles", func(rr chi.Router) {
			rr.Get("/", h.Role.ListRoles)
			rr.Post("/", h.Role.CreateRole)
			rr.Get("/{roleID}", h.Role.GetRole)
			rr.Patch("/{roleID}", h.Role.UpdateRole)
			rr.Delete("/{roleID}", h.Role.DeleteRole)
			rr.Post("/{roleID}/toggle-category", h.Role.ToggleCategory)
		})

		api.Route("/users", func(ur chi.Router) {
			ur.Get("/", h.User.ListUsers)
			ur.Post("/", h.User.InviteUser)
			ur.Get("/{userID}", h.User.GetUser)
			ur.Post("/{userID}/activate", h.User.ActivateUser)
			ur.Post("/{userID}/deactivate", h.User.DeactivateUser)
			ur.Put("/{userID}/role", h.User.ReassignRole)
			ur.Get("/{userID}/permissions/{key}", h.User.CheckPermission)
		})

		api.Route("/permissions", func(pr chi.Router) {
			pr.Get("/", h.Permission.ListPermissions)
			pr.Get("/categories", h.Permission.ListCategories)
		})

		api.Route("/company", func(cr chi.Router) {
			cr.Get("/", h.Tenant.GetCompany)
			cr.Patch("/", h.Tenant.UpdateCompany)
		})
	})

	return r
}
