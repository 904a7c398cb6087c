package services

import "errors"

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrStandingsNotFound  = errors.New("standings not found for tournament")
	ErrPlayerNotFound     = errors.New("player not found")
)
