package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authsvc "github.com/schuelerstaat/statebank/internal/auth"
	"github.com/schuelerstaat/statebank/internal/http/account"
	"github.com/schuelerstaat/statebank/internal/http/authn"
	"github.com/schuelerstaat/statebank/internal/http/ledger"
	"github.com/schuelerstaat/statebank/internal/http/payroll"
	"github.com/schuelerstaat/statebank/internal/http/product"
	"github.com/schuelerstaat/statebank/internal/http/session"
)

func New(
	tokens *authsvc.Tokens,
	authV1 *authn.Handler,
	ledgerV1 *ledger.Handler,
	accountsV1 *account.Handler,
	productsV1 *product.Handler,
	payrollV1 *payroll.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))

		r.Route("/auth", authV1.Routes)

		r.Group(func(r chi.Router) {
			r.Use(session.Middleware(tokens))

			r.With(session.Require(authsvc.RoleAdmin)).
				Route("/admin", authV1.AdminRoutes)

			ledgerV1.Routes(r)
			r.Route("/accounts", accountsV1.Routes)
			r.Route("/products", productsV1.Routes)
			payrollV1.Routes(r)
		})
	})

	return router
}
