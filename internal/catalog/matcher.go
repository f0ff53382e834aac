package catalog

import (
	"context"
	"strconv"
	"strings"

	"meeplevision/backend/internal/models"
	"meeplevision/backend/internal/store"
)

// Matcher answers "what can we play" queries: all stored games whose
// player-count and play-time fields satisfy the given targets.
type Matcher struct {
	games *store.GameStore
}

func NewMatcher(games *store.GameStore) *Matcher {
	return &Matcher{games: games}
}

// Suggest returns every game matching both constraints, ordered by name
// ascending. Matching runs over the stored text fields, which hold either a
// plain integer or an inclusive "lo-hi" range.
func (m *Matcher) Suggest(ctx context.Context, numPlayers, playTime int) ([]models.Game, error) {
	games, err := m.games.ListByName(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Game, 0, len(games))
	for _, g := range games {
		if fieldMatches(g.PlayerCount, numPlayers) && fieldMatches(g.PlayTime, playTime) {
			matched = append(matched, g)
		}
	}
	return matched, nil
}

// fieldMatches reports whether a stored field covers the target: a plain
// integer must equal it, a "lo-hi" range must contain it (inclusive).
// "Unknown" and anything unparseable never match.
func fieldMatches(field string, target int) bool {
	field = strings.TrimSpace(field)
	if n, err := strconv.Atoi(field); err == nil {
		return n == target
	}
	lo, hi, ok := parseRange(field)
	if !ok {
		return false
	}
	return lo <= target && target <= hi
}

func parseRange(s string) (lo, hi int, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// ValidField reports whether a value is storable in a player-count or
// play-time column: blank (defaulted later), "Unknown", a plain integer, or a
// well-formed inclusive range. Malformed ranges are rejected at write time
// rather than silently never matching.
func ValidField(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || s == models.FieldUnknown {
		return true
	}
	if _, err := strconv.Atoi(s); err == nil {
		return true
	}
	_, _, ok := parseRange(s)
	return ok
}
