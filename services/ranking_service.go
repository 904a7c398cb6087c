package services

import (
	"context"

	"github.com/chessgrid/chess-stats/models"
)

// RankingStore is the slice of the data store this service reads.
type RankingStore interface {
	Ranking(categoryID string) ([]models.RankedPlayer, bool)
}

// categoryOrder fixes the tab order of the rankings page. The order reflects
// presentation priority and is never reordered by data content.
var categoryOrder = []struct {
	id    string
	label string
}{
	{"fide-classical", "FIDE Classical"},
	{"fide-rapid", "FIDE Rapid"},
	{"fide-blitz", "FIDE Blitz"},
	{"chess-com", "Chess.com"},
	{"lichess", "Lichess"},
}

type RankingService interface {
	Categories(ctx context.Context, maxItems int) []models.RankingCategory
}

type rankingService struct {
	store RankingStore
}

func NewRankingService(store RankingStore) RankingService {
	return &rankingService{store: store}
}

// Categories assembles the ranking tabs in fixed presentation order. Sources
// absent from the store are skipped; each present list is truncated to
// maxItems preserving its upstream order.
func (s *rankingService) Categories(_ context.Context, maxItems int) []models.RankingCategory {
	categories := make([]models.RankingCategory, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		players, ok := s.store.Ranking(c.id)
		if !ok {
			continue
		}
		categories = append(categories, models.RankingCategory{
			ID:      c.id,
			Label:   c.label,
			Players: truncate(players, maxItems),
		})
	}
	return categories
}
