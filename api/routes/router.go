package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arunvel/stockkeep-backend/api/controllers"
	"github.com/arunvel/stockkeep-backend/api/middleware"
	authsvc "github.com/arunvel/stockkeep-backend/internal/auth"
	dashsvc "github.com/arunvel/stockkeep-backend/internal/dashboard"
	invsvc "github.com/arunvel/stockkeep-backend/internal/inventory"
	"github.com/arunvel/stockkeep-backend/internal/notifications"
	reportsvc "github.com/arunvel/stockkeep-backend/internal/reports"
	supsvc "github.com/arunvel/stockkeep-backend/internal/suppliers"
	usersvc "github.com/arunvel/stockkeep-backend/internal/users"
	"github.com/arunvel/stockkeep-backend/pkg/config"
	"github.com/arunvel/stockkeep-backend/pkg/db"
	"github.com/arunvel/stockkeep-backend/pkg/logger"
	"github.com/arunvel/stockkeep-backend/pkg/metrics"
	"github.com/arunvel/stockkeep-backend/pkg/redis"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    *redis.Client
	Metrics  *metrics.HTTPMetrics
	Gatherer prometheus.Gatherer

	Auth          authsvc.Service
	Users         usersvc.Service
	Inventory     invsvc.Service
	Suppliers     supsvc.Service
	Notifications notifications.Service
	Reports       reportsvc.Service
	Dashboard     dashsvc.Service
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.Metrics(d.Metrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUserLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterUserLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		cache := db.Pinger(nil)
		if d.Redis != nil {
			cache = d.Redis
		}
		r.Get("/ready", controllers.HealthReady(cfg, d.DB, cache, logg))
	})

	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, rateStore(d.Redis), logg)).Post("/register", controllers.AuthRegister(d.Auth, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, rateStore(d.Redis), logg)).Post("/login", controllers.AuthLogin(d.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/categories", controllers.ListCategories())
		r.Get("/dashboard", controllers.DashboardSummary(d.Dashboard, logg))

		r.Route("/items", func(r chi.Router) {
			admin := middleware.RequireAdmin(logg)

			r.Get("/", controllers.ListItems(d.Inventory, logg))
			r.With(admin).Post("/", controllers.CreateItem(d.Inventory, logg))
			r.Get("/low-stock", controllers.LowStockItems(d.Inventory, logg))
			r.Route("/{itemId}", func(r chi.Router) {
				r.Get("/", controllers.GetItem(d.Inventory, logg))
				r.With(admin).Patch("/", controllers.UpdateItem(d.Inventory, logg))
				r.With(admin).Delete("/", controllers.DeleteItem(d.Inventory, logg))
				r.With(admin).Post("/increment", controllers.IncrementItem(d.Inventory, logg))
				r.Post("/decrement", controllers.DecrementItem(d.Inventory, logg))
				r.Get("/pdf", controllers.DownloadItemPDF(d.Inventory, logg))
				r.With(admin).Post("/notify-low-stock", controllers.NotifyLowStock(d.Inventory, d.Notifications, logg))
			})
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(logg))
			r.Get("/", controllers.ListSuppliers(d.Suppliers, logg))
			r.Post("/", controllers.CreateSupplier(d.Suppliers, logg))
			r.Route("/{supplierId}", func(r chi.Router) {
				r.Get("/", controllers.GetSupplier(d.Suppliers, logg))
				r.Put("/", controllers.UpdateSupplier(d.Suppliers, logg))
				r.Delete("/", controllers.DeleteSupplier(d.Suppliers, logg))
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(logg))
			r.Get("/", controllers.ListUsers(d.Users, logg))
			r.Post("/", controllers.CreateUser(d.Users, logg))
			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", controllers.GetUser(d.Users, logg))
				r.Patch("/", controllers.UpdateUser(d.Users, logg))
				r.Delete("/", controllers.DeleteUser(d.Users, logg))
			})
		})

		r.With(middleware.RequireAdmin(logg)).Post("/reports/inventory/email", controllers.EmailInventoryReport(d.Reports, logg))
	})

	return r
}

// rateStore avoids handing the middleware a typed nil interface when redis
// is not configured.
func rateStore(client *redis.Client) middleware.RateLimiterStore {
	if client == nil {
		return nil
	}
	return client
}
