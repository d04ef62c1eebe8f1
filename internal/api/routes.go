package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/decks", s.handleListDecks)
		r.Get("/decks/{id}/cards", s.handleDueCards)
		r.Delete("/decks/{id}", s.handleDeleteDeck)
		r.Post("/import", s.handleImportDeck)
		r.Post("/cards/review", s.handleReviewCard)
		r.Post("/reviews", s.handlePreviewReview)
	})

	if s.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.StaticDir))
		r.Handle("/*", fs)
	}
	return r
}
