// Package data holds the static dataset the site is built around and exposes
// it through a read-only in-memory store. Accessors hand out copies, so
// callers can never mutate the fixtures.
package data

import "github.com/chessgrid/chess-stats/models"

type Store struct {
	tournaments []models.Tournament
	standings   map[string][]models.TournamentStanding
	players     []models.Player
	rankings    map[string][]models.RankedPlayer
	posts       []models.ForumPost
}

// NewStore returns a store populated with the seed dataset.
func NewStore() *Store {
	return &Store{
		tournaments: seedTournaments,
		standings:   seedStandings,
		players:     seedPlayers,
		rankings:    seedRankings,
		posts:       seedForumPosts,
	}
}

// Tournaments returns all tournaments in seed order.
func (s *Store) Tournaments() []models.Tournament {
	out := make([]models.Tournament, len(s.tournaments))
	copy(out, s.tournaments)
	return out
}

// TournamentByID looks a tournament up by its id.
func (s *Store) TournamentByID(id string) (models.Tournament, bool) {
	for _, t := range s.tournaments {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tournament{}, false
}

// Standings returns the standings list for a tournament, if one exists.
// Only completed tournaments carry standings in the dataset.
func (s *Store) Standings(tournamentID string) ([]models.TournamentStanding, bool) {
	rows, ok := s.standings[tournamentID]
	if !ok {
		return nil, false
	}
	out := make([]models.TournamentStanding, len(rows))
	copy(out, rows)
	return out, true
}

// Players returns all players in seed order.
func (s *Store) Players() []models.Player {
	out := make([]models.Player, len(s.players))
	copy(out, s.players)
	return out
}

// PlayerByID looks a player up by its id.
func (s *Store) PlayerByID(id string) (models.Player, bool) {
	for _, p := range s.players {
		if p.ID == id {
			return p, true
		}
	}
	return models.Player{}, false
}

// Ranking returns the pre-ordered ranking list for a category id. Ordering
// is established upstream; the store never re-sorts.
func (s *Store) Ranking(categoryID string) ([]models.RankedPlayer, bool) {
	rows, ok := s.rankings[categoryID]
	if !ok {
		return nil, false
	}
	out := make([]models.RankedPlayer, len(rows))
	copy(out, rows)
	return out, true
}

// ForumPosts returns all posts newest first, as seeded.
func (s *Store) ForumPosts() []models.ForumPost {
	out := make([]models.ForumPost, len(s.posts))
	copy(out, s.posts)
	return out
}
