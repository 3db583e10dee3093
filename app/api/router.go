package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/dukapos/pos-backend/app/catalog"
	"github.com/dukapos/pos-backend/app/dashboard"
	"github.com/dukapos/pos-backend/app/payments"
	"github.com/dukapos/pos-backend/app/respond"
	"github.com/dukapos/pos-backend/app/sales"
)

type Handlers struct {
	Catalog   *catalog.CatalogHandler
	Payments  *payments.PaymentsHandler
	Sales     *sales.SalesHandler
	Dashboard *dashboard.DashboardHandler
}

func NewRouter(h Handlers, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.Catalog.HandleList)
		r.Post("/", h.Catalog.HandleCreate)
		r.Put("/{id}", h.Catalog.HandleAdjustStock)
		r.Delete("/{id}", h.Catalog.HandleDelete)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Get("/", h.Payments.HandleList)
		r.Post("/", h.Payments.HandleCreate)
		r.Delete("/{id}", h.Payments.HandleDelete)
		r.Get("/verify-transaction/{code}", h.Payments.HandleVerifyTransaction)
	})

	r.Route("/sales", func(r chi.Router) {
		r.Get("/", h.Sales.HandleList)
		r.Post("/", h.Sales.HandleRecord)
	})

	r.Get("/dashboard/summary", h.Dashboard.HandleSummary)

	return r
}
