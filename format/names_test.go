package format_test

import (
	"testing"

	"github.com/chessgrid/chess-stats/format"
	"github.com/chessgrid/chess-stats/models"
)

func TestPlatformName(t *testing.T) {
	tests := []struct {
		code models.Platform
		want string
	}{
		{models.PlatformChessCom, "Chess.com"},
		{models.PlatformLichess, "Lichess"},
		{models.PlatformFIDE, "FIDE"},
		{models.Platform("custom-site"), "custom-site"},
	}

	for _, tt := range tests {
		if got := format.PlatformName(tt.code); got != tt.want {
			t.Errorf("PlatformName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		code models.TournamentFormat
		want string
	}{
		{models.FormatSwiss, "Swiss"},
		{models.FormatKnockout, "Knockout"},
		{models.FormatRoundRobin, "Round Robin"},
		{models.FormatArena, "Arena"},
		{models.TournamentFormat("scheveningen"), "scheveningen"},
	}

	for _, tt := range tests {
		if got := format.FormatName(tt.code); got != tt.want {
			t.Errorf("FormatName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestTimeControlName(t *testing.T) {
	tests := []struct {
		code models.TimeControl
		want string
	}{
		{models.TimeControlBullet, "Bullet"},
		{models.TimeControlBlitz, "Blitz"},
		{models.TimeControlRapid, "Rapid"},
		{models.TimeControlClassical, "Classical"},
		{models.TimeControl("correspondence"), "correspondence"},
	}

	for _, tt := range tests {
		if got := format.TimeControlName(tt.code); got != tt.want {
			t.Errorf("TimeControlName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
