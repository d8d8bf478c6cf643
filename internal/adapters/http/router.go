package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ib-77/results/pkg/rop/httpx"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(handler.logger))
	r.Use(recoverMiddleware(handler.logger))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { httpx.WriteText(w, http.StatusOK, "ok") })
	r.Route("/users", func(r chi.Router) {
		r.Get("/", handler.getUsers)
		r.Get("/{id}", handler.getUser)
		r.Put("/{id}", handler.updateUser)
	})
	r.Get("/addresses/{zip}/{nr}/users", handler.getUsersAtAddress)
	return r
}
