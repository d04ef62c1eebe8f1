package api

import (
	"github.com/Eys-55/infoman-quizzer/internal/services"
)

// Server holds the dependencies shared by all HTTP handlers.
type Server struct {
	DeckService   services.DeckService
	ReviewService services.ReviewService
	StaticDir     string
}
