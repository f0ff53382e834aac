package catalog

import (
	"context"
	"testing"

	"meeplevision/backend/internal/bgg"
	"meeplevision/backend/internal/models"
	"meeplevision/backend/internal/store"
)

// fakeSource is a scripted external catalog that counts how often it is hit.
type fakeSource struct {
	candidates  []bgg.Candidate
	detail      *bgg.GameDetail
	searchCalls int
	thingCalls  int
}

func (f *fakeSource) Search(ctx context.Context, query string) ([]bgg.Candidate, error) {
	f.searchCalls++
	return f.candidates, nil
}

func (f *fakeSource) Thing(ctx context.Context, bggID string) (*bgg.GameDetail, error) {
	f.thingCalls++
	return f.detail, nil
}

func catanSource() *fakeSource {
	return &fakeSource{
		candidates: []bgg.Candidate{{BGGID: "13", Name: "Catan"}},
		detail: &bgg.GameDetail{
			BGGID:      "13",
			Name:       "Catan",
			MinPlayers: "3",
			MaxPlayers: "4",
			PlayTime:   "90",
		},
	}
}

func TestSearchLocalHitShortCircuits(t *testing.T) {
	db := openTestDB(t)
	games := store.NewGameStore(db)
	source := catanSource()
	resolver := NewResolver(games, source)
	ctx := context.Background()

	if err := games.Create(ctx, &models.Game{Name: "Settlers of Catan", PlayerCount: "3-4", PlayTime: "90"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Any case, any substring.
	for _, query := range []string{"catan", "CATAN", "of Cat"} {
		got, err := resolver.Search(ctx, query)
		if err != nil {
			t.Fatalf("search %q: %v", query, err)
		}
		if len(got) != 1 || got[0].Name != "Settlers of Catan" {
			t.Fatalf("search %q: expected local hit, got %+v", query, got)
		}
	}
	if source.searchCalls != 0 {
		t.Fatalf("external source consulted on local hit: %d calls", source.searchCalls)
	}
}

func TestSearchImportsFromExternal(t *testing.T) {
	db := openTestDB(t)
	games := store.NewGameStore(db)
	resolver := NewResolver(games, catanSource())
	ctx := context.Background()

	got, err := resolver.Search(ctx, "Catan")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one imported game, got %d", len(got))
	}
	g := got[0]
	if g.Name != "Catan" || g.PlayerCount != "3-4" || g.PlayTime != "90" || g.BGGID != "13" {
		t.Fatalf("unexpected import: %+v", g)
	}
	if g.ID == "" {
		t.Fatal("imported game has no id")
	}

	// The import is persisted.
	stored, err := games.ListByName(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected one stored game, got %d", len(stored))
	}
}

func TestSearchIdempotent(t *testing.T) {
	db := openTestDB(t)
	games := store.NewGameStore(db)
	source := catanSource()
	resolver := NewResolver(games, source)
	ctx := context.Background()

	if _, err := resolver.Search(ctx, "Catan"); err != nil {
		t.Fatalf("first search: %v", err)
	}
	if _, err := resolver.Search(ctx, "Catan"); err != nil {
		t.Fatalf("second search: %v", err)
	}

	stored, err := games.ListByName(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected exactly one game after two searches, got %d", len(stored))
	}
	if source.searchCalls != 1 {
		t.Fatalf("expected one external search, got %d", source.searchCalls)
	}
}

func TestSearchNoCandidates(t *testing.T) {
	db := openTestDB(t)
	games := store.NewGameStore(db)
	resolver := NewResolver(games, &fakeSource{})
	ctx := context.Background()

	got, err := resolver.Search(ctx, "definitely not a game")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestSearchExternalIDReCheck(t *testing.T) {
	db := openTestDB(t)
	games := store.NewGameStore(db)
	source := catanSource()
	resolver := NewResolver(games, source)
	ctx := context.Background()

	// A prior import of the same game under another name.
	prior := models.Game{BGGID: "13", Name: "Die Siedler von Catan", PlayerCount: "3-4", PlayTime: "90"}
	if err := games.Create(ctx, &prior); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := resolver.Search(ctx, "Catan")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].ID != prior.ID {
		t.Fatalf("expected prior import, got %+v", got)
	}
	if source.thingCalls != 0 {
		t.Fatalf("detail fetched despite existing import: %d calls", source.thingCalls)
	}
}

func TestSearchEmptyDetail(t *testing.T) {
	db := openTestDB(t)
	games := store.NewGameStore(db)
	source := catanSource()
	source.detail = nil
	resolver := NewResolver(games, source)
	ctx := context.Background()

	got, err := resolver.Search(ctx, "Catan")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result on empty detail, got %+v", got)
	}

	stored, err := games.ListByName(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("nothing should be persisted on empty detail, got %d rows", len(stored))
	}
}

func TestLookupExactOnly(t *testing.T) {
	db := openTestDB(t)
	games := store.NewGameStore(db)
	source := catanSource()
	resolver := NewResolver(games, source)
	ctx := context.Background()

	if err := games.Create(ctx, &models.Game{Name: "Catan", PlayerCount: "3-4", PlayTime: "90"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := resolver.Lookup(ctx, "cAtAn")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exact match, got %+v", got)
	}

	// Substrings do not match, and the external source is never consulted.
	got, err = resolver.Lookup(ctx, "Cat")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("substring should not match in lookup, got %+v", got)
	}
	if source.searchCalls != 0 {
		t.Fatalf("lookup consulted external source: %d calls", source.searchCalls)
	}
}

func TestAddManualDefaultsUnknown(t *testing.T) {
	db := openTestDB(t)
	games := store.NewGameStore(db)
	resolver := NewResolver(games, &fakeSource{})
	ctx := context.Background()

	game, err := resolver.AddManual(ctx, "Homebrew", "", "")
	if err != nil {
		t.Fatalf("add manual: %v", err)
	}
	if game.PlayerCount != models.FieldUnknown || game.PlayTime != models.FieldUnknown {
		t.Fatalf("expected Unknown defaults, got %+v", game)
	}
	if game.ID == "" {
		t.Fatal("manual game has no id")
	}
}
