package handler

import (
	"meeplevision/backend/internal/catalog"
	"meeplevision/backend/internal/models"
	"meeplevision/backend/internal/store"

	"golang.org/x/oauth2"
)

// Handler holds the stores and components the endpoints need. Everything is
// injected at construction; there is no package-level state.
type Handler struct {
	resolver    *catalog.Resolver
	matcher     *catalog.Matcher
	games       *store.GameStore
	ratings     *store.RatingStore
	users       *store.UserStore
	oauth       *oauth2.Config
	frontendURL string
}

func New(resolver *catalog.Resolver, matcher *catalog.Matcher, games *store.GameStore, ratings *store.RatingStore, users *store.UserStore, oauth *oauth2.Config, frontendURL string) *Handler {
	return &Handler{
		resolver:    resolver,
		matcher:     matcher,
		games:       games,
		ratings:     ratings,
		users:       users,
		oauth:       oauth,
		frontendURL: frontendURL,
	}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// GamesResponse wraps a list of games the way every game endpoint answers.
type GamesResponse struct {
	Games []models.Game `json:"games"`
}

func newGamesResponse(games []models.Game) GamesResponse {
	if games == nil {
		games = []models.Game{}
	}
	return GamesResponse{Games: games}
}
