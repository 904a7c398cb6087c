package services_test

import (
	"context"
	"testing"

	"github.com/chessgrid/chess-stats/models"
	"github.com/chessgrid/chess-stats/services"
)

type fakeRankingStore struct {
	rankings map[string][]models.RankedPlayer
}

func (f *fakeRankingStore) Ranking(id string) ([]models.RankedPlayer, bool) {
	rows, ok := f.rankings[id]
	return rows, ok
}

func rankedPlayers(names ...string) []models.RankedPlayer {
	out := make([]models.RankedPlayer, len(names))
	for i, n := range names {
		out[i] = models.RankedPlayer{PlayerID: n, Name: n, Rating: 2500}
	}
	return out
}

func TestCategories_FixedOrder(t *testing.T) {
	store := &fakeRankingStore{rankings: map[string][]models.RankedPlayer{
		"lichess":        rankedPlayers("l1"),
		"fide-classical": rankedPlayers("c1"),
		"chess-com":      rankedPlayers("cc1"),
		"fide-blitz":     rankedPlayers("b1"),
		"fide-rapid":     rankedPlayers("r1"),
	}}
	svc := services.NewRankingService(store)

	got := svc.Categories(context.Background(), 0)

	wantOrder := []string{"fide-classical", "fide-rapid", "fide-blitz", "chess-com", "lichess"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d categories, want %d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("category[%d] = %q, want %q", i, got[i].ID, want)
		}
	}
	if got[0].Label != "FIDE Classical" {
		t.Errorf("label = %q, want %q", got[0].Label, "FIDE Classical")
	}
}

func TestCategories_MissingSourcesSkipped(t *testing.T) {
	store := &fakeRankingStore{rankings: map[string][]models.RankedPlayer{
		"fide-rapid": rankedPlayers("r1"),
		"lichess":    rankedPlayers("l1"),
	}}
	svc := services.NewRankingService(store)

	got := svc.Categories(context.Background(), 0)

	if len(got) != 2 || got[0].ID != "fide-rapid" || got[1].ID != "lichess" {
		t.Errorf("categories = %v, want [fide-rapid lichess]", categoryIDs(got))
	}
}

func TestCategories_TruncatesWithoutReordering(t *testing.T) {
	store := &fakeRankingStore{rankings: map[string][]models.RankedPlayer{
		// Deliberately not rating-sorted: upstream order must survive.
		"fide-classical": {
			{PlayerID: "first", Rating: 2600},
			{PlayerID: "second", Rating: 2900},
			{PlayerID: "third", Rating: 2700},
		},
	}}
	svc := services.NewRankingService(store)

	got := svc.Categories(context.Background(), 2)

	if len(got) != 1 {
		t.Fatalf("got %d categories, want 1", len(got))
	}
	players := got[0].Players
	if len(players) != 2 || players[0].PlayerID != "first" || players[1].PlayerID != "second" {
		t.Errorf("players = %v, want first two in upstream order", players)
	}
}

func TestCategories_EmptyStore(t *testing.T) {
	svc := services.NewRankingService(&fakeRankingStore{rankings: map[string][]models.RankedPlayer{}})
	got := svc.Categories(context.Background(), 10)
	if got == nil || len(got) != 0 {
		t.Errorf("want empty non-nil slice, got %v", got)
	}
}

func categoryIDs(cs []models.RankingCategory) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}
