package services

import (
	"context"

	"github.com/chessgrid/chess-stats/format"
	"github.com/chessgrid/chess-stats/models"
)

// PlayerStore is the slice of the data store this service reads.
type PlayerStore interface {
	Players() []models.Player
	PlayerByID(id string) (models.Player, bool)
}

// PlayerView is a player profile shaped for display. WinRate is derived from
// the raw tally on every call, never read from storage.
type PlayerView struct {
	ID          string               `json:"id"`
	Username    string               `json:"username"`
	Name        string               `json:"name"`
	Title       string               `json:"title,omitempty"`
	Country     string               `json:"country"`
	Ratings     models.PlayerRatings `json:"ratings"`
	Wins        int                  `json:"wins"`
	Draws       int                  `json:"draws"`
	Losses      int                  `json:"losses"`
	GamesPlayed int                  `json:"games_played"`
	WinRate     int                  `json:"win_rate"`
}

type PlayerService interface {
	List(ctx context.Context, maxItems int) []PlayerView
	Get(ctx context.Context, id string) (PlayerView, error)
}

type playerService struct {
	store PlayerStore
}

func NewPlayerService(store PlayerStore) PlayerService {
	return &playerService{store: store}
}

func (s *playerService) List(_ context.Context, maxItems int) []PlayerView {
	players := truncate(s.store.Players(), maxItems)
	views := make([]PlayerView, len(players))
	for i, p := range players {
		views[i] = toPlayerView(p)
	}
	return views
}

func (s *playerService) Get(_ context.Context, id string) (PlayerView, error) {
	p, ok := s.store.PlayerByID(id)
	if !ok {
		return PlayerView{}, ErrPlayerNotFound
	}
	return toPlayerView(p), nil
}

func toPlayerView(p models.Player) PlayerView {
	return PlayerView{
		ID:          p.ID,
		Username:    p.Username,
		Name:        p.Name,
		Title:       p.Title,
		Country:     p.Country,
		Ratings:     p.Ratings,
		Wins:        p.Stats.Wins,
		Draws:       p.Stats.Draws,
		Losses:      p.Stats.Losses,
		GamesPlayed: p.Stats.Wins + p.Stats.Draws + p.Stats.Losses,
		WinRate:     format.WinRate(p.Stats.Wins, p.Stats.Draws, p.Stats.Losses),
	}
}
