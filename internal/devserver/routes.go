package devserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// probes and credentials, no authorization
	router.Group(func(r chi.Router) {
		r.Get("/liveness", h.status)
		r.Get("/readiness", h.status)
		r.Post("/credentials/create-credentials", h.register)
		r.Post("/credentials/login", h.login)
	})

	router.Route("/users/{username}", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.getUser)
		r.Post("/create-storage", h.createStorage)
		r.Get("/{storage}", h.getStorage)
		r.Delete("/{storage}", h.deleteStorage)
		r.Post("/{storage}/create-item", h.createItem)
		r.Delete("/{storage}/{code}", h.deleteItem)
		r.Put("/{storage}/{code}", h.updateItem)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return router
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, "Status OK.")
}
