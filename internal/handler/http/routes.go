package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.Get("/api/users", h.listUsers)
		r.Get("/api/items", h.listItems)
		r.Get("/api/items/{itemID}", h.getItem)
		r.Get("/api/items/{itemID}/reviews", h.listItemReviews)
		r.Get("/api/reviews/{reviewID}", h.getReview)
	})

	// routes that require a verified identity
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.me)

		r.Post("/api/items", h.createItem)

		r.Post("/api/reviews", h.createReview)
		r.Get("/api/reviews/me", h.listMyReviews)
		r.Put("/api/reviews/{reviewID}", h.updateReview)
		r.Delete("/api/reviews/{reviewID}", h.deleteReview)

		r.Post("/api/comments", h.createComment)
		r.Get("/api/comments/me", h.listMyComments)
		r.Put("/api/comments/{commentID}", h.updateComment)
		r.Delete("/api/comments/{commentID}", h.deleteComment)

		r.Post("/api/favorites", h.createFavorite)
		r.Get("/api/favorites/me", h.listMyFavorites)
		r.Delete("/api/favorites/{favoriteID}", h.deleteFavorite)
	})

	return router
}
