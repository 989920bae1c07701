package httpserver

import (
	"net/http"
	"time"

	"finance-flow/internal/config"
	"finance-flow/internal/transport/httpserver/handler"
	"finance-flow/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORS.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Group(func(r chi.Router) {
			r.Use(middleware.NewUserIdentity(cfg.UserID))

			r.Get("/expenses", handlers.ListExpenses)
			r.Post("/expenses", handlers.CreateExpense)
			r.Delete("/expenses/{id}", handlers.DeleteExpense)

			r.Get("/categories", handlers.ListCategories)
			r.Post("/categories", handlers.CreateCategory)

			r.Get("/analytics/spending-by-category", handlers.SpendingByCategory)
			r.Get("/analytics/spending-trends", handlers.SpendingTrends)
			r.Get("/analytics/insights", handlers.Insights)
			r.Get("/analytics/tips", handlers.Tips)
		})
	})

	return r
}
