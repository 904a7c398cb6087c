package handlers_test

import (
	"net/http"
	"testing"

	"github.com/chessgrid/chess-stats/models"
)

func TestRankingsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Categories []models.RankingCategory `json:"categories"`
	}
	getJSON(t, srv.URL+"/api/rankings", http.StatusOK, &body)

	wantOrder := []string{"fide-classical", "fide-rapid", "fide-blitz", "chess-com", "lichess"}
	if len(body.Categories) != len(wantOrder) {
		t.Fatalf("got %d categories, want %d", len(body.Categories), len(wantOrder))
	}
	for i, want := range wantOrder {
		if body.Categories[i].ID != want {
			t.Errorf("category[%d] = %q, want %q", i, body.Categories[i].ID, want)
		}
	}
}

func TestRankingsEndpoint_LimitBoundsEachCategory(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Categories []models.RankingCategory `json:"categories"`
	}
	getJSON(t, srv.URL+"/api/rankings?limit=3", http.StatusOK, &body)

	for _, c := range body.Categories {
		if len(c.Players) > 3 {
			t.Errorf("category %s has %d players, want at most 3", c.ID, len(c.Players))
		}
	}
}

func TestPlayersEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Player struct {
			Name    string `json:"name"`
			WinRate int    `json:"win_rate"`
		} `json:"player"`
	}
	getJSON(t, srv.URL+"/api/players/magnus-carlsen", http.StatusOK, &body)

	if body.Player.Name != "Magnus Carlsen" {
		t.Errorf("Name = %q", body.Player.Name)
	}
	if body.Player.WinRate <= 0 || body.Player.WinRate > 100 {
		t.Errorf("WinRate = %d, want within (0,100]", body.Player.WinRate)
	}

	getJSON(t, srv.URL+"/api/players/nobody", http.StatusNotFound, nil)
}

func TestForumEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Posts []struct {
			ID      string `json:"id"`
			TimeAgo string `json:"time_ago"`
		} `json:"posts"`
	}
	getJSON(t, srv.URL+"/api/forum/posts?limit=2", http.StatusOK, &body)

	if len(body.Posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(body.Posts))
	}
	for _, p := range body.Posts {
		if p.TimeAgo == "" {
			t.Errorf("post %s missing time_ago", p.ID)
		}
	}
}
