package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"onlyflans/internal/config"
	"onlyflans/internal/metrics"
	"onlyflans/internal/transport/httpserver/handler"
	authmw "onlyflans/internal/transport/httpserver/middleware"
)

type RouterDeps struct {
	Handlers         *handler.Handlers
	Auth             *authmw.JWTAuth
	SubscribeLimiter *authmw.RateLimiter
	Metrics          *metrics.Metrics
}

func NewRouter(cfg config.Config, deps RouterDeps) http.Handler {
	handlers := deps.Handlers
	auth := deps.Auth

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument)
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(authmw.NewCORS(cfg.CORSOrigins))

		r.Get("/health", handlers.Common.Health)

		r.Get("/flans", handlers.Catalog.ListFlans)
		r.Get("/flans/{id}", handlers.Catalog.GetFlan)
		r.Get("/flans/{id}/analytics", handlers.Catalog.FlanAnalytics)
		r.Get("/analytics/summary", handlers.Catalog.Summary)
		r.Get("/subscribers/stats", handlers.Catalog.SubscriberStats)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Get("/auth/me", handlers.Common.AuthMe)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Optional)

		r.Get("/", handlers.Web.Index)
		r.Get("/flan/{id}", handlers.Web.FlanDetail)
		r.Get("/faq", handlers.Web.FAQ)
		r.Get("/creators", handlers.Web.ListCreators)
		r.Get("/creator/{id}", handlers.Web.CreatorDetail)
		r.Get("/unsubscribe/{token}", handlers.Web.UnsubscribeConfirm)
		r.Post("/unsubscribe/{token}", handlers.Web.Unsubscribe)
		r.Get("/flans/create", handlers.Web.CreateForm)
		r.Post("/flans/create", handlers.Web.Create)

		if deps.SubscribeLimiter != nil {
			r.With(deps.SubscribeLimiter.Handler).Post("/subscribe", handlers.Web.Subscribe)
		} else {
			r.Post("/subscribe", handlers.Web.Subscribe)
		}
	})

	return r
}
