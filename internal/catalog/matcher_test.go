package catalog

import (
	"context"
	"testing"

	"meeplevision/backend/internal/database"
	"meeplevision/backend/internal/models"
	"meeplevision/backend/internal/store"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestFieldMatches(t *testing.T) {
	cases := []struct {
		field  string
		target int
		want   bool
	}{
		{"2-4", 2, true},
		{"2-4", 3, true},
		{"2-4", 4, true},
		{"2-4", 1, false},
		{"2-4", 5, false},
		{"4", 4, true},
		{"4", 3, false},
		{"90", 90, true},
		{" 2-4 ", 3, true},
		{"Unknown", 4, false},
		{"Unknown-Unknown", 4, false},
		{"", 4, false},
		{"4-2", 3, false},
		{"2-4-6", 3, false},
		{"a-b", 3, false},
	}
	for _, tc := range cases {
		if got := fieldMatches(tc.field, tc.target); got != tc.want {
			t.Errorf("fieldMatches(%q, %d) = %v, want %v", tc.field, tc.target, got, tc.want)
		}
	}
}

func TestValidField(t *testing.T) {
	valid := []string{"", "Unknown", "4", "2-4", "90", " 3-6 "}
	for _, s := range valid {
		if !ValidField(s) {
			t.Errorf("ValidField(%q) = false, want true", s)
		}
	}
	invalid := []string{"4-2", "a-b", "2-4-6", "lots", "Unknown-Unknown"}
	for _, s := range invalid {
		if ValidField(s) {
			t.Errorf("ValidField(%q) = true, want false", s)
		}
	}
}

func TestSuggest(t *testing.T) {
	db := openTestDB(t)
	games := store.NewGameStore(db)
	matcher := NewMatcher(games)
	ctx := context.Background()

	seed := []models.Game{
		{Name: "Catan", PlayerCount: "3-4", PlayTime: "90"},
		{Name: "Azul", PlayerCount: "2-4", PlayTime: "30-45"},
		{Name: "Twilight Struggle", PlayerCount: "2", PlayTime: "180"},
		{Name: "Mystery Box", PlayerCount: "Unknown", PlayTime: "Unknown"},
	}
	for i := range seed {
		if err := games.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := matcher.Suggest(ctx, 4, 90)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Catan" {
		t.Fatalf("expected [Catan], got %+v", got)
	}

	// Both constraints must hold: Azul covers 4 players but not 90 minutes.
	got, err = matcher.Suggest(ctx, 4, 40)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Azul" {
		t.Fatalf("expected [Azul], got %+v", got)
	}

	// No qualifying games is an empty result, not an error.
	got, err = matcher.Suggest(ctx, 9, 10)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no games, got %+v", got)
	}
}

func TestSuggestOrderedByName(t *testing.T) {
	db := openTestDB(t)
	games := store.NewGameStore(db)
	matcher := NewMatcher(games)
	ctx := context.Background()

	for _, name := range []string{"Wingspan", "Azul", "Catan"} {
		g := models.Game{Name: name, PlayerCount: "2-4", PlayTime: "30-120"}
		if err := games.Create(ctx, &g); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := matcher.Suggest(ctx, 3, 60)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	want := []string{"Azul", "Catan", "Wingspan"}
	if len(got) != len(want) {
		t.Fatalf("expected %d games, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
}
