package format

import "github.com/chessgrid/chess-stats/models"

// Fixed display-label tables. Lookups fall back to the raw code for unknown
// values so a new upstream code degrades to itself instead of erroring.

var platformNames = map[models.Platform]string{
	models.PlatformChessCom: "Chess.com",
	models.PlatformLichess:  "Lichess",
	models.PlatformFIDE:     "FIDE",
}

var formatNames = map[models.TournamentFormat]string{
	models.FormatSwiss:      "Swiss",
	models.FormatKnockout:   "Knockout",
	models.FormatRoundRobin: "Round Robin",
	models.FormatArena:      "Arena",
}

var timeControlNames = map[models.TimeControl]string{
	models.TimeControlBullet:    "Bullet",
	models.TimeControlBlitz:     "Blitz",
	models.TimeControlRapid:     "Rapid",
	models.TimeControlClassical: "Classical",
}

// PlatformName returns the display label for a platform code.
func PlatformName(p models.Platform) string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return string(p)
}

// FormatName returns the display label for a tournament format code.
func FormatName(f models.TournamentFormat) string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return string(f)
}

// TimeControlName returns the display label for a time-control code.
func TimeControlName(tc models.TimeControl) string {
	if name, ok := timeControlNames[tc]; ok {
		return name
	}
	return string(tc)
}
