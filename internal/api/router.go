package api

import (
	_ "fxledger/docs"
	accounthandler "fxledger/internal/account/handler"
	ratehandler "fxledger/internal/rate/handler"
	userhandler "fxledger/internal/user/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *ratehandler.Handler, accountHandler *accounthandler.Handler, userHandler *userhandler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/rates", rateHandler.GetRates)
		r.Get("/rates/{from}/{to}", rateHandler.ConvertRate)

		r.Post("/accounts", accountHandler.Execute)
		r.Post("/accounts/deposits", accountHandler.Deposit)
		r.Post("/accounts/transfers", accountHandler.Transfer)

		r.Post("/users", userHandler.Register)
		r.Get("/users", userHandler.List)
		r.Get("/users/{username}/accounts", accountHandler.GetAccounts)
		r.Put("/users/{username}/accounts/{currency}", accountHandler.SetBalance)
		r.Delete("/users/{username}/accounts/{currency}", accountHandler.DeleteAccount)
	})
	return router
}
