package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inventory-api/internal/config"
	"inventory-api/internal/handler"
	"inventory-api/internal/metrics"
	"inventory-api/internal/middleware"
	"inventory-api/internal/model"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Warehouse *handler.WarehouseHandler
	Item      *handler.ItemHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Metrics)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", h.Auth.Login)
			auth.Post("/refresh", h.Auth.Refresh)
		})

		// User management is restricted to the protected Admin role.
		api.Route("/users", func(users chi.Router) {
			users.Use(authMiddleware.RequireAuth, authMiddleware.RequireRoles(model.RoleAdminName))
			users.Get("/", h.User.List)
			users.Post("/", h.User.Create)
			users.Get("/{id}", h.User.Get)
			users.Put("/{id}", h.User.Update)
			users.Delete("/{id}", h.User.Delete)
			users.Post("/{id}/changepassword", h.User.ChangePassword)
		})

		api.Route("/warehouses", func(warehouses chi.Router) {
			warehouses.Use(authMiddleware.RequireAuth)
			warehouses.Get("/", h.Warehouse.List)
			warehouses.Post("/", h.Warehouse.Create)
			warehouses.Get("/{id}", h.Warehouse.Get)
			warehouses.Put("/{id}", h.Warehouse.Update)
			warehouses.Delete("/{id}", h.Warehouse.Delete)
		})

		api.Route("/items", func(items chi.Router) {
			items.Use(authMiddleware.RequireAuth)
			items.Get("/", h.Item.List)
			items.Post("/", h.Item.Create)
			items.Get("/topitems", h.Item.TopItems)
			items.Get("/{id}", h.Item.Get)
			items.Put("/{id}", h.Item.Update)
			items.Delete("/{id}", h.Item.Delete)
		})
	})

	return r
}
