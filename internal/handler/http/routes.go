package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.home)
	router.Get("/dummy/login", h.dummyLogin)

	router.Post("/users/register", h.register)
	router.Post("/users/login", h.login)
	router.Post("/users/login-google", h.loginGoogle)

	// Listing is the only route behind the token check; the remaining book
	// routes are open.
	router.With(h.auth).Get("/books", h.getAllBooks)
	router.Post("/books", h.createBook)
	router.Get("/books/{id}", h.getBook)
	router.Put("/books/{id}", h.updateBook)
	router.Delete("/books/{id}", h.deleteBook)

	return router
}
