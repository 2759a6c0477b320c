package router

import (
	"github.com/denmor86/coffeetime/internal/config"
	"github.com/denmor86/coffeetime/internal/network/handlers"
	"github.com/denmor86/coffeetime/internal/network/middleware"
	"github.com/denmor86/coffeetime/internal/notify"
	"github.com/denmor86/coffeetime/internal/services"
	"github.com/denmor86/coffeetime/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	Identity services.IdentityService
	Orders   services.OrdersService
	Loyalty  services.LoyaltyService
	Catalog  services.CatalogService
	Session  services.SessionService
	Notifier *notify.Notifier
}

func NewRouter(config config.Config, storage storage.IStorage, notifier *notify.Notifier) *Router {
	catalog := services.NewCatalog()
	loyalty := services.NewLoyalty(storage, notifier, config.StampTarget)
	return &Router{
		Config:   config,
		Identity: services.NewIdentity(config, storage),
		Orders:   services.NewOrders(storage, catalog, loyalty, notifier),
		Loyalty:  loyalty,
		Catalog:  catalog,
		Session:  services.NewSession(catalog),
		Notifier: notifier,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandle(router.Identity, router.Session))
			r.Post("/logout", handlers.LogoutHandler(router.Session))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Put("/account", handlers.UpdateAccountHandler(router.Identity))
				r.Put("/password", handlers.ChangePasswordHandler(router.Identity))
			})
		})
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/menu", handlers.GetMenuHandler(router.Catalog))
			r.Get("/syrups", handlers.GetSyrupsHandler(router.Catalog))
		})
		r.Get("/stores", handlers.GetStoresHandler(router.Catalog))
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", handlers.NewOrderHandler(router.Orders, router.Session))
			r.Get("/", handlers.GetOrdersHandler(router.Orders))
			r.Get("/{orderID}", handlers.GetOrderHandler(router.Orders))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Post("/{orderID}/review", handlers.ReviewHandler(router.Orders, router.Session))
			})
		})
		r.Get("/loyalty", handlers.GetLoyaltyHandler(router.Loyalty))
		r.Route("/session", func(r chi.Router) {
			r.Get("/", handlers.GetSessionHandler(router.Session))
			r.Post("/navigate", handlers.NavigateHandler(router.Session))
			r.Post("/select-item", handlers.SelectItemHandler(router.Session))
			r.Post("/barista", handlers.BaristaModeHandler(router.Session))
			r.Post("/review-intent", handlers.ReviewIntentHandler(router.Session, router.Orders))
		})
		r.Route("/barista", func(r chi.Router) {
			r.Get("/orders", handlers.DashboardHandler(router.Orders))
			r.Post("/orders/{orderID}/status", handlers.UpdateStatusHandler(router.Orders))
		})
		r.Get("/notifications", handlers.GetNotificationsHandler(router.Notifier))
	})
	return r
}
