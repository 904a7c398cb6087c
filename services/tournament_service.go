package services

import (
	"context"
	"time"

	"github.com/chessgrid/chess-stats/format"
	"github.com/chessgrid/chess-stats/models"
)

// TournamentStore is the slice of the data store this service reads.
type TournamentStore interface {
	Tournaments() []models.Tournament
	TournamentByID(id string) (models.Tournament, bool)
	Standings(tournamentID string) ([]models.TournamentStanding, bool)
}

// TournamentView is a tournament shaped for display: the raw record plus the
// formatted strings the cards render.
type TournamentView struct {
	ID                string                  `json:"id"`
	Name              string                  `json:"name"`
	Slug              string                  `json:"slug"`
	Platform          models.Platform         `json:"platform"`
	PlatformLabel     string                  `json:"platform_label"`
	Format            models.TournamentFormat `json:"format"`
	FormatLabel       string                  `json:"format_label"`
	Status            models.TournamentStatus `json:"status"`
	TimeControl       models.TimeControl      `json:"time_control"`
	TimeControlLabel  string                  `json:"time_control_label"`
	StartDate         time.Time               `json:"start_date"`
	EndDate           time.Time               `json:"end_date"`
	DateRange         string                  `json:"date_range"`
	ParticipantCount  int                     `json:"participant_count"`
	ParticipantsLabel string                  `json:"participants_label"`
	PrizePoolLabel    string                  `json:"prize_pool_label,omitempty"`
	Featured          bool                    `json:"featured"`
}

// StandingView is one standings row with the derived win rate attached.
type StandingView struct {
	Rank        int     `json:"rank"`
	PlayerID    string  `json:"player_id"`
	PlayerName  string  `json:"player_name"`
	Score       float64 `json:"score"`
	Wins        int     `json:"wins"`
	Draws       int     `json:"draws"`
	Losses      int     `json:"losses"`
	GamesPlayed int     `json:"games_played"`
	WinRate     int     `json:"win_rate"`
}

// TournamentGroups is the tournaments page view: featured highlights plus the
// three status sections. Featured is non-exclusive; a tournament may appear
// both in Featured and in its status group.
type TournamentGroups struct {
	Featured  []TournamentView `json:"featured"`
	Ongoing   []TournamentView `json:"ongoing"`
	Upcoming  []TournamentView `json:"upcoming"`
	Completed []TournamentView `json:"completed"`
}

// ListTournamentsFilter narrows List output. Nil fields are not applied.
type ListTournamentsFilter struct {
	Status      *models.TournamentStatus
	Platform    *models.Platform
	TimeControl *models.TimeControl
	Limit       int
}

type TournamentService interface {
	Overview(ctx context.Context, maxItems int) TournamentGroups
	List(ctx context.Context, filter ListTournamentsFilter) []TournamentView
	Get(ctx context.Context, id string) (TournamentView, error)
	Standings(ctx context.Context, tournamentID string) ([]StandingView, error)
}

type tournamentService struct {
	store    TournamentStore
	currency string
}

func NewTournamentService(store TournamentStore, currency string) TournamentService {
	return &tournamentService{
		store:    store,
		currency: currency,
	}
}

// PartitionByStatus splits tournaments into ongoing, upcoming and completed
// sub-sequences in a single pass, preserving the input's relative order.
// Records with an unknown status are dropped from all three groups.
func PartitionByStatus(tournaments []models.Tournament) (ongoing, upcoming, completed []models.Tournament) {
	for _, t := range tournaments {
		switch t.Status {
		case models.StatusOngoing:
			ongoing = append(ongoing, t)
		case models.StatusUpcoming:
			upcoming = append(upcoming, t)
		case models.StatusCompleted:
			completed = append(completed, t)
		}
	}
	return ongoing, upcoming, completed
}

// Featured extracts flagged tournaments in input order. The pass is
// independent of status partitioning.
func Featured(tournaments []models.Tournament) []models.Tournament {
	var out []models.Tournament
	for _, t := range tournaments {
		if t.Featured {
			out = append(out, t)
		}
	}
	return out
}

func (s *tournamentService) Overview(_ context.Context, maxItems int) TournamentGroups {
	tournaments := s.store.Tournaments()
	ongoing, upcoming, completed := PartitionByStatus(tournaments)
	featured := Featured(tournaments)

	return TournamentGroups{
		Featured:  s.toViews(truncate(featured, maxItems)),
		Ongoing:   s.toViews(truncate(ongoing, maxItems)),
		Upcoming:  s.toViews(truncate(upcoming, maxItems)),
		Completed: s.toViews(truncate(completed, maxItems)),
	}
}

func (s *tournamentService) List(_ context.Context, filter ListTournamentsFilter) []TournamentView {
	var matched []models.Tournament
	for _, t := range s.store.Tournaments() {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Platform != nil && t.Platform != *filter.Platform {
			continue
		}
		if filter.TimeControl != nil && t.TimeControl != *filter.TimeControl {
			continue
		}
		matched = append(matched, t)
	}
	return s.toViews(truncate(matched, filter.Limit))
}

func (s *tournamentService) Get(_ context.Context, id string) (TournamentView, error) {
	t, ok := s.store.TournamentByID(id)
	if !ok {
		return TournamentView{}, ErrTournamentNotFound
	}
	return s.toView(t), nil
}

func (s *tournamentService) Standings(_ context.Context, tournamentID string) ([]StandingView, error) {
	if _, ok := s.store.TournamentByID(tournamentID); !ok {
		return nil, ErrTournamentNotFound
	}
	rows, ok := s.store.Standings(tournamentID)
	if !ok {
		return nil, ErrStandingsNotFound
	}
	views := make([]StandingView, len(rows))
	for i, row := range rows {
		views[i] = StandingView{
			Rank:        row.Rank,
			PlayerID:    row.PlayerID,
			PlayerName:  row.PlayerName,
			Score:       row.Score,
			Wins:        row.Wins,
			Draws:       row.Draws,
			Losses:      row.Losses,
			GamesPlayed: row.GamesPlayed,
			WinRate:     format.WinRate(row.Wins, row.Draws, row.Losses),
		}
	}
	return views, nil
}

func (s *tournamentService) toViews(tournaments []models.Tournament) []TournamentView {
	views := make([]TournamentView, len(tournaments))
	for i, t := range tournaments {
		views[i] = s.toView(t)
	}
	return views
}

func (s *tournamentService) toView(t models.Tournament) TournamentView {
	view := TournamentView{
		ID:                t.ID,
		Name:              t.Name,
		Slug:              format.Slugify(t.Name),
		Platform:          t.Platform,
		PlatformLabel:     format.PlatformName(t.Platform),
		Format:            t.Format,
		FormatLabel:       format.FormatName(t.Format),
		Status:            t.Status,
		TimeControl:       t.TimeControl,
		TimeControlLabel:  format.TimeControlName(t.TimeControl),
		StartDate:         t.StartDate,
		EndDate:           t.EndDate,
		DateRange:         format.DateRange(t.StartDate, t.EndDate),
		ParticipantCount:  t.ParticipantCount,
		ParticipantsLabel: format.CompactNumber(t.ParticipantCount),
		Featured:          t.Featured,
	}
	if t.PrizePool != nil {
		view.PrizePoolLabel = format.Currency(float64(*t.PrizePool), s.currency)
	}
	return view
}
