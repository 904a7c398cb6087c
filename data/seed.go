package data

import (
	"time"

	"github.com/chessgrid/chess-stats/models"
)

func prize(n int) *int { return &n }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var seedTournaments = []models.Tournament{
	{
		ID:               "tata-steel-masters-2026",
		Name:             "Tata Steel Masters",
		Platform:         models.PlatformFIDE,
		Format:           models.FormatRoundRobin,
		Status:           models.StatusOngoing,
		TimeControl:      models.TimeControlClassical,
		StartDate:        date(2026, time.January, 16),
		EndDate:          date(2026, time.February, 1),
		ParticipantCount: 14,
		PrizePool:        prize(100000),
		Featured:         true,
	},
	{
		ID:               "titled-tuesday-late-jan",
		Name:             "Titled Tuesday Late",
		Platform:         models.PlatformChessCom,
		Format:           models.FormatSwiss,
		Status:           models.StatusOngoing,
		TimeControl:      models.TimeControlBlitz,
		StartDate:        date(2026, time.January, 27),
		EndDate:          date(2026, time.January, 27),
		ParticipantCount: 612,
		PrizePool:        prize(5000),
	},
	{
		ID:               "lichess-titled-arena-feb",
		Name:             "Lichess Titled Arena",
		Platform:         models.PlatformLichess,
		Format:           models.FormatArena,
		Status:           models.StatusUpcoming,
		TimeControl:      models.TimeControlBullet,
		StartDate:        date(2026, time.February, 7),
		EndDate:          date(2026, time.February, 7),
		ParticipantCount: 0,
		PrizePool:        prize(1000),
		Featured:         true,
	},
	{
		ID:               "candidates-tournament-2026",
		Name:             "Candidates Tournament",
		Platform:         models.PlatformFIDE,
		Format:           models.FormatRoundRobin,
		Status:           models.StatusUpcoming,
		TimeControl:      models.TimeControlClassical,
		StartDate:        date(2026, time.April, 2),
		EndDate:          date(2026, time.April, 25),
		ParticipantCount: 8,
		PrizePool:        prize(500000),
		Featured:         true,
	},
	{
		ID:               "speed-chess-championship-2025",
		Name:             "Speed Chess Championship",
		Platform:         models.PlatformChessCom,
		Format:           models.FormatKnockout,
		Status:           models.StatusCompleted,
		TimeControl:      models.TimeControlBlitz,
		StartDate:        date(2025, time.November, 10),
		EndDate:          date(2025, time.December, 15),
		ParticipantCount: 16,
		PrizePool:        prize(150000),
	},
	{
		ID:               "world-rapid-blitz-2025",
		Name:             "World Rapid & Blitz Championship",
		Platform:         models.PlatformFIDE,
		Format:           models.FormatSwiss,
		Status:           models.StatusCompleted,
		TimeControl:      models.TimeControlRapid,
		StartDate:        date(2025, time.December, 26),
		EndDate:          date(2025, time.December, 30),
		ParticipantCount: 180,
		PrizePool:        prize(1000000),
	},
	{
		ID:               "lichess-spring-marathon",
		Name:             "Lichess Spring Marathon",
		Platform:         models.PlatformLichess,
		Format:           models.FormatArena,
		Status:           models.StatusUpcoming,
		TimeControl:      models.TimeControlRapid,
		StartDate:        date(2026, time.March, 14),
		EndDate:          date(2026, time.March, 15),
		ParticipantCount: 0,
	},
	{
		ID:               "bullet-chess-championship-2026",
		Name:             "Bullet Chess Championship",
		Platform:         models.PlatformChessCom,
		Format:           models.FormatKnockout,
		Status:           models.StatusOngoing,
		TimeControl:      models.TimeControlBullet,
		StartDate:        date(2026, time.January, 20),
		EndDate:          date(2026, time.February, 3),
		ParticipantCount: 32,
		PrizePool:        prize(50000),
	},
	{
		ID:               "grand-swiss-2025",
		Name:             "FIDE Grand Swiss",
		Platform:         models.PlatformFIDE,
		Format:           models.FormatSwiss,
		Status:           models.StatusCompleted,
		TimeControl:      models.TimeControlClassical,
		StartDate:        date(2025, time.October, 25),
		EndDate:          date(2025, time.November, 7),
		ParticipantCount: 114,
		PrizePool:        prize(460000),
	},
	{
		ID:               "winter-invitational-2026",
		Name:             "Winter Invitational",
		Platform:         models.PlatformLichess,
		Format:           models.FormatRoundRobin,
		Status:           models.StatusUpcoming,
		TimeControl:      models.TimeControlBlitz,
		StartDate:        date(2026, time.February, 20),
		EndDate:          date(2026, time.February, 22),
		ParticipantCount: 10,
	},
}

var seedStandings = map[string][]models.TournamentStanding{
	"speed-chess-championship-2025": {
		{Rank: 1, PlayerID: "magnus-carlsen", PlayerName: "Magnus Carlsen", Score: 15.5, Wins: 14, Draws: 3, Losses: 5, GamesPlayed: 22},
		{Rank: 2, PlayerID: "hikaru-nakamura", PlayerName: "Hikaru Nakamura", Score: 14.0, Wins: 12, Draws: 4, Losses: 6, GamesPlayed: 22},
		{Rank: 3, PlayerID: "alireza-firouzja", PlayerName: "Alireza Firouzja", Score: 12.5, Wins: 11, Draws: 3, Losses: 8, GamesPlayed: 22},
		{Rank: 4, PlayerID: "ian-nepomniachtchi", PlayerName: "Ian Nepomniachtchi", Score: 10.0, Wins: 8, Draws: 4, Losses: 10, GamesPlayed: 22},
	},
	"world-rapid-blitz-2025": {
		{Rank: 1, PlayerID: "magnus-carlsen", PlayerName: "Magnus Carlsen", Score: 10.0, Wins: 9, Draws: 2, Losses: 2, GamesPlayed: 13},
		{Rank: 2, PlayerID: "fabiano-caruana", PlayerName: "Fabiano Caruana", Score: 9.5, Wins: 8, Draws: 3, Losses: 2, GamesPlayed: 13},
		{Rank: 3, PlayerID: "hikaru-nakamura", PlayerName: "Hikaru Nakamura", Score: 9.0, Wins: 8, Draws: 2, Losses: 3, GamesPlayed: 13},
		{Rank: 4, PlayerID: "gukesh-d", PlayerName: "Gukesh Dommaraju", Score: 8.5, Wins: 7, Draws: 3, Losses: 3, GamesPlayed: 13},
		{Rank: 5, PlayerID: "ding-liren", PlayerName: "Ding Liren", Score: 8.0, Wins: 6, Draws: 4, Losses: 3, GamesPlayed: 13},
	},
	"grand-swiss-2025": {
		{Rank: 1, PlayerID: "fabiano-caruana", PlayerName: "Fabiano Caruana", Score: 8.5, Wins: 6, Draws: 5, Losses: 0, GamesPlayed: 11},
		{Rank: 2, PlayerID: "alireza-firouzja", PlayerName: "Alireza Firouzja", Score: 8.0, Wins: 6, Draws: 4, Losses: 1, GamesPlayed: 11},
		{Rank: 3, PlayerID: "ian-nepomniachtchi", PlayerName: "Ian Nepomniachtchi", Score: 7.5, Wins: 5, Draws: 5, Losses: 1, GamesPlayed: 11},
	},
}

var seedPlayers = []models.Player{
	{
		ID: "magnus-carlsen", Username: "DrNykterstein", Name: "Magnus Carlsen", Title: "GM", Country: "NO",
		Ratings: models.PlayerRatings{FIDEClassical: 2831, FIDERapid: 2823, FIDEBlitz: 2887, ChessCom: 3235, Lichess: 3131},
		Stats:   models.PlayerStats{Wins: 1420, Draws: 610, Losses: 320},
	},
	{
		ID: "hikaru-nakamura", Username: "Hikaru", Name: "Hikaru Nakamura", Title: "GM", Country: "US",
		Ratings: models.PlayerRatings{FIDEClassical: 2802, FIDERapid: 2746, FIDEBlitz: 2874, ChessCom: 3312, Lichess: 3069},
		Stats:   models.PlayerStats{Wins: 2110, Draws: 540, Losses: 480},
	},
	{
		ID: "fabiano-caruana", Username: "FabianoCaruana", Name: "Fabiano Caruana", Title: "GM", Country: "US",
		Ratings: models.PlayerRatings{FIDEClassical: 2805, FIDERapid: 2721, FIDEBlitz: 2740, ChessCom: 3080},
		Stats:   models.PlayerStats{Wins: 980, Draws: 720, Losses: 310},
	},
	{
		ID: "alireza-firouzja", Username: "Firouzja2003", Name: "Alireza Firouzja", Title: "GM", Country: "FR",
		Ratings: models.PlayerRatings{FIDEClassical: 2760, FIDERapid: 2720, FIDEBlitz: 2801, ChessCom: 3145, Lichess: 3021},
		Stats:   models.PlayerStats{Wins: 1230, Draws: 380, Losses: 410},
	},
	{
		ID: "gukesh-d", Username: "GukeshDommaraju", Name: "Gukesh Dommaraju", Title: "GM", Country: "IN",
		Ratings: models.PlayerRatings{FIDEClassical: 2794, FIDERapid: 2654, FIDEBlitz: 2615},
		Stats:   models.PlayerStats{Wins: 640, Draws: 400, Losses: 210},
	},
	{
		ID: "ian-nepomniachtchi", Username: "lachesisQ", Name: "Ian Nepomniachtchi", Title: "GM", Country: "RU",
		Ratings: models.PlayerRatings{FIDEClassical: 2754, FIDERapid: 2700, FIDEBlitz: 2792, Lichess: 2984},
		Stats:   models.PlayerStats{Wins: 890, Draws: 560, Losses: 330},
	},
	{
		ID: "ding-liren", Username: "DingLiren", Name: "Ding Liren", Title: "GM", Country: "CN",
		Ratings: models.PlayerRatings{FIDEClassical: 2734, FIDERapid: 2705, FIDEBlitz: 2691},
		Stats:   models.PlayerStats{Wins: 710, Draws: 680, Losses: 240},
	},
	{
		ID: "praggnanandhaa-r", Username: "rpragchess", Name: "Praggnanandhaa Rameshbabu", Title: "GM", Country: "IN",
		Ratings: models.PlayerRatings{FIDEClassical: 2741, FIDERapid: 2684, FIDEBlitz: 2702, ChessCom: 3011, Lichess: 2950},
		Stats:   models.PlayerStats{Wins: 820, Draws: 430, Losses: 300},
	},
}

var seedRankings = map[string][]models.RankedPlayer{
	"fide-classical": {
		{PlayerID: "magnus-carlsen", Name: "Magnus Carlsen", Title: "GM", Country: "NO", Rating: 2831},
		{PlayerID: "fabiano-caruana", Name: "Fabiano Caruana", Title: "GM", Country: "US", Rating: 2805},
		{PlayerID: "hikaru-nakamura", Name: "Hikaru Nakamura", Title: "GM", Country: "US", Rating: 2802},
		{PlayerID: "gukesh-d", Name: "Gukesh Dommaraju", Title: "GM", Country: "IN", Rating: 2794},
		{PlayerID: "alireza-firouzja", Name: "Alireza Firouzja", Title: "GM", Country: "FR", Rating: 2760},
		{PlayerID: "ian-nepomniachtchi", Name: "Ian Nepomniachtchi", Title: "GM", Country: "RU", Rating: 2754},
		{PlayerID: "praggnanandhaa-r", Name: "Praggnanandhaa Rameshbabu", Title: "GM", Country: "IN", Rating: 2741},
		{PlayerID: "ding-liren", Name: "Ding Liren", Title: "GM", Country: "CN", Rating: 2734},
	},
	"fide-rapid": {
		{PlayerID: "magnus-carlsen", Name: "Magnus Carlsen", Title: "GM", Country: "NO", Rating: 2823},
		{PlayerID: "hikaru-nakamura", Name: "Hikaru Nakamura", Title: "GM", Country: "US", Rating: 2746},
		{PlayerID: "fabiano-caruana", Name: "Fabiano Caruana", Title: "GM", Country: "US", Rating: 2721},
		{PlayerID: "alireza-firouzja", Name: "Alireza Firouzja", Title: "GM", Country: "FR", Rating: 2720},
		{PlayerID: "ding-liren", Name: "Ding Liren", Title: "GM", Country: "CN", Rating: 2705},
	},
	"fide-blitz": {
		{PlayerID: "magnus-carlsen", Name: "Magnus Carlsen", Title: "GM", Country: "NO", Rating: 2887},
		{PlayerID: "hikaru-nakamura", Name: "Hikaru Nakamura", Title: "GM", Country: "US", Rating: 2874},
		{PlayerID: "alireza-firouzja", Name: "Alireza Firouzja", Title: "GM", Country: "FR", Rating: 2801},
		{PlayerID: "ian-nepomniachtchi", Name: "Ian Nepomniachtchi", Title: "GM", Country: "RU", Rating: 2792},
		{PlayerID: "praggnanandhaa-r", Name: "Praggnanandhaa Rameshbabu", Title: "GM", Country: "IN", Rating: 2702},
	},
	"chess-com": {
		{PlayerID: "hikaru-nakamura", Name: "Hikaru Nakamura", Title: "GM", Country: "US", Rating: 3312},
		{PlayerID: "magnus-carlsen", Name: "Magnus Carlsen", Title: "GM", Country: "NO", Rating: 3235},
		{PlayerID: "alireza-firouzja", Name: "Alireza Firouzja", Title: "GM", Country: "FR", Rating: 3145},
		{PlayerID: "fabiano-caruana", Name: "Fabiano Caruana", Title: "GM", Country: "US", Rating: 3080},
		{PlayerID: "praggnanandhaa-r", Name: "Praggnanandhaa Rameshbabu", Title: "GM", Country: "IN", Rating: 3011},
	},
	"lichess": {
		{PlayerID: "magnus-carlsen", Name: "Magnus Carlsen", Title: "GM", Country: "NO", Rating: 3131},
		{PlayerID: "hikaru-nakamura", Name: "Hikaru Nakamura", Title: "GM", Country: "US", Rating: 3069},
		{PlayerID: "alireza-firouzja", Name: "Alireza Firouzja", Title: "GM", Country: "FR", Rating: 3021},
		{PlayerID: "ian-nepomniachtchi", Name: "Ian Nepomniachtchi", Title: "GM", Country: "RU", Rating: 2984},
		{PlayerID: "praggnanandhaa-r", Name: "Praggnanandhaa Rameshbabu", Title: "GM", Country: "IN", Rating: 2950},
	},
}

var seedForumPosts = []models.ForumPost{
	{ID: "post-9183", Title: "Candidates 2026 predictions thread", Author: "endgame_addict", Replies: 148, CreatedAt: time.Date(2026, time.January, 27, 14, 30, 0, 0, time.UTC)},
	{ID: "post-9177", Title: "Is the Berlin dead at top level?", Author: "c4life", Replies: 63, CreatedAt: time.Date(2026, time.January, 27, 9, 15, 0, 0, time.UTC)},
	{ID: "post-9154", Title: "Tata Steel round 9 analysis", Author: "isolated_pawn", Replies: 87, CreatedAt: time.Date(2026, time.January, 26, 21, 5, 0, 0, time.UTC)},
	{ID: "post-9102", Title: "Best books for 1800-2000 rating range?", Author: "rook_lift", Replies: 214, CreatedAt: time.Date(2026, time.January, 24, 11, 40, 0, 0, time.UTC)},
	{ID: "post-9066", Title: "Speed Chess Championship final was insane", Author: "premove_queen", Replies: 175, CreatedAt: time.Date(2026, time.January, 20, 18, 0, 0, 0, time.UTC)},
	{ID: "post-8990", Title: "How do arena tiebreaks actually work?", Author: "berserk_button", Replies: 32, CreatedAt: time.Date(2026, time.January, 12, 7, 55, 0, 0, time.UTC)},
}
