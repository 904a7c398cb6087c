package models

// PlayerRatings holds a player's rating per rating source. Zero means the
// player has no rating there.
type PlayerRatings struct {
	FIDEClassical int `json:"fide_classical,omitempty"`
	FIDERapid     int `json:"fide_rapid,omitempty"`
	FIDEBlitz     int `json:"fide_blitz,omitempty"`
	ChessCom      int `json:"chess_com,omitempty"`
	Lichess       int `json:"lichess,omitempty"`
}

// PlayerStats is the raw W/D/L tally. Win rate is always derived from it,
// never stored.
type PlayerStats struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

// Player is an immutable record supplied by the upstream data source.
type Player struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Name     string        `json:"name"`
	Title    string        `json:"title,omitempty"` // GM, IM, etc.
	Country  string        `json:"country"`
	Ratings  PlayerRatings `json:"ratings"`
	Stats    PlayerStats   `json:"stats"`
}

// RankedPlayer is one row of a ranking list, already ordered upstream.
type RankedPlayer struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Country  string `json:"country"`
	Rating   int    `json:"rating"`
}

// RankingCategory is a view-only grouping assembled by the derivation layer;
// it is never persisted.
type RankingCategory struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Players []RankedPlayer `json:"players"`
}
