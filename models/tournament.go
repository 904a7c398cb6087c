package models

import "time"

// Platform identifies the origin site of tournament and player data.
type Platform string

const (
	PlatformChessCom Platform = "chess-com"
	PlatformLichess  Platform = "lichess"
	PlatformFIDE     Platform = "fide"
)

// TournamentFormat is the pairing system a tournament runs under.
type TournamentFormat string

const (
	FormatSwiss      TournamentFormat = "swiss"
	FormatKnockout   TournamentFormat = "knockout"
	FormatRoundRobin TournamentFormat = "round-robin"
	FormatArena      TournamentFormat = "arena"
)

// TournamentStatus is assigned upstream; it is never derived from dates here.
type TournamentStatus string

const (
	StatusUpcoming  TournamentStatus = "upcoming"
	StatusOngoing   TournamentStatus = "ongoing"
	StatusCompleted TournamentStatus = "completed"
)

// TimeControl is the pace-of-play category.
type TimeControl string

const (
	TimeControlBullet    TimeControl = "bullet"
	TimeControlBlitz     TimeControl = "blitz"
	TimeControlRapid     TimeControl = "rapid"
	TimeControlClassical TimeControl = "classical"
)

// Tournament is an immutable record supplied by the upstream data source.
// StartDate <= EndDate is an upstream guarantee, not re-validated here.
type Tournament struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Platform         Platform         `json:"platform"`
	Format           TournamentFormat `json:"format"`
	Status           TournamentStatus `json:"status"`
	TimeControl      TimeControl      `json:"time_control"`
	StartDate        time.Time        `json:"start_date"`
	EndDate          time.Time        `json:"end_date"`
	ParticipantCount int              `json:"participant_count"`
	PrizePool        *int             `json:"prize_pool,omitempty"` // whole currency units
	Featured         bool             `json:"featured"`
}

// TournamentStanding is one player's ranked result within a tournament.
// Rank is unique within a standings list; GamesPlayed is expected to equal
// Wins+Draws+Losses but is not enforced by this layer.
type TournamentStanding struct {
	Rank        int     `json:"rank"`
	PlayerID    string  `json:"player_id"`
	PlayerName  string  `json:"player_name"`
	Score       float64 `json:"score"`
	Wins        int     `json:"wins"`
	Draws       int     `json:"draws"`
	Losses      int     `json:"losses"`
	GamesPlayed int     `json:"games_played"`
}
