package routes

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saracafe/saracafe-backend/api/controllers"
	"github.com/saracafe/saracafe-backend/api/middleware"
	authsvc "github.com/saracafe/saracafe-backend/internal/auth"
	categorysvc "github.com/saracafe/saracafe-backend/internal/categories"
	contactsvc "github.com/saracafe/saracafe-backend/internal/contacts"
	productsvc "github.com/saracafe/saracafe-backend/internal/products"
	usersvc "github.com/saracafe/saracafe-backend/internal/users"
	"github.com/saracafe/saracafe-backend/pkg/config"
	"github.com/saracafe/saracafe-backend/pkg/db"
	"github.com/saracafe/saracafe-backend/pkg/logger"
	"github.com/saracafe/saracafe-backend/pkg/metrics"
)

// Services bundles everything the router mounts.
type Services struct {
	Auth       authsvc.Service
	Categories categorysvc.Service
	Products   productsvc.Service
	Contacts   contactsvc.Service
	Users      usersvc.Service
}

// NewRouter assembles the full HTTP surface: the public catalog and contact
// form, the authenticated management API, health probes, metrics, and the
// static uploads tree.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	services Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	requireAuth := middleware.Auth(cfg.JWT, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Handle("/metrics", metricsHandler)

	uploadsDir := filepath.Join(cfg.Media.RootDir, "uploads")
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(services.Categories, logg))
			r.Get("/{id}", controllers.GetCategory(services.Categories, logg))
			r.With(requireAuth).Post("/", controllers.CreateCategory(services.Categories, logg))
			r.With(requireAuth).Put("/{id}", controllers.UpdateCategory(services.Categories, logg))
			r.With(requireAuth).Delete("/{id}", controllers.DeleteCategory(services.Categories, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(services.Products, logg))
			r.Get("/category/{categoryId}", controllers.ListProductsByCategory(services.Products, logg))
			r.Get("/{id}", controllers.GetProduct(services.Products, logg))
			r.With(requireAuth).Post("/", controllers.CreateProduct(services.Products, cfg.Media, logg))
			r.With(requireAuth).Put("/{id}", controllers.UpdateProduct(services.Products, cfg.Media, logg))
			r.With(requireAuth).Delete("/{id}", controllers.DeleteProduct(services.Products, logg))
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", controllers.CreateContact(services.Contacts, logg))
			r.With(requireAuth).Get("/", controllers.ListContacts(services.Contacts, logg))
			r.With(requireAuth).Get("/unread-count", controllers.ContactUnreadCount(services.Contacts, logg))
			r.With(requireAuth).Get("/{id}", controllers.GetContact(services.Contacts, logg))
			r.With(requireAuth).Delete("/{id}", controllers.DeleteContact(services.Contacts, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(services.Auth, logg))
			r.With(requireAuth).Get("/", controllers.ListUsers(services.Users, logg))
			r.With(requireAuth).Get("/{id}", controllers.GetUser(services.Users, logg))
			r.With(requireAuth).Post("/", controllers.CreateUser(services.Users, logg))
			r.With(requireAuth).Put("/{id}", controllers.UpdateUser(services.Users, logg))
			r.With(requireAuth).Delete("/{id}", controllers.DeleteUser(services.Users, logg))
		})
	})

	return r
}
