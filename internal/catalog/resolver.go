// Package catalog implements the lookup pipeline over the game store and the
// external catalog, and the range-aware suggestion matcher.
package catalog

import (
	"context"

	"meeplevision/backend/internal/bgg"
	"meeplevision/backend/internal/models"
	"meeplevision/backend/internal/store"
)

// Source is the slice of the external catalog the resolver consumes.
type Source interface {
	Search(ctx context.Context, query string) ([]bgg.Candidate, error)
	Thing(ctx context.Context, bggID string) (*bgg.GameDetail, error)
}

// Resolver answers name queries from the local store first and falls back to
// the external catalog, persisting whatever it imports.
type Resolver struct {
	games  *store.GameStore
	source Source
}

func NewResolver(games *store.GameStore, source Source) *Resolver {
	return &Resolver{games: games, source: source}
}

// Lookup returns games whose name equals the query exactly (case-insensitive).
// Local only; never consults the external catalog.
func (r *Resolver) Lookup(ctx context.Context, query string) ([]models.Game, error) {
	return r.games.FindByNameExact(ctx, query)
}

// Search returns games whose name contains the query. A local hit is
// authoritative and short-circuits the external call; on a miss the external
// catalog's best candidate is imported and returned.
func (r *Resolver) Search(ctx context.Context, query string) ([]models.Game, error) {
	local, err := r.games.FindByNameSubstring(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(local) > 0 {
		return local, nil
	}
	return r.resolveExternal(ctx, query)
}

func (r *Resolver) resolveExternal(ctx context.Context, query string) ([]models.Game, error) {
	candidates, err := r.source.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []models.Game{}, nil
	}

	// The upstream's own relevance ranking is trusted: take the first hit.
	first := candidates[0]

	// A prior import may exist under a different name; the external id is the
	// second lookup key.
	existing, err := r.games.ByBGGID(ctx, first.BGGID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return []models.Game{*existing}, nil
	}

	detail, err := r.source.Thing(ctx, first.BGGID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return []models.Game{}, nil
	}

	game := &models.Game{
		BGGID:       detail.BGGID,
		Name:        detail.Name,
		PlayerCount: detail.PlayerCountRange(),
		PlayTime:    detail.PlayTime,
		Image:       detail.Image,
		Thumbnail:   detail.Thumbnail,
	}
	inserted, err := r.games.CreateImported(ctx, game)
	if err != nil {
		return nil, err
	}
	return []models.Game{*inserted}, nil
}

// AddManual inserts a caller-supplied game with no external lookup. Blank
// player-count/play-time fields are stored as "Unknown" so the suggestion
// matcher sees one convention.
func (r *Resolver) AddManual(ctx context.Context, name, playerCount, playTime string) (*models.Game, error) {
	if playerCount == "" {
		playerCount = models.FieldUnknown
	}
	if playTime == "" {
		playTime = models.FieldUnknown
	}

	game := &models.Game{
		Name:        name,
		PlayerCount: playerCount,
		PlayTime:    playTime,
	}
	if err := r.games.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}
