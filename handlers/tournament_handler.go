package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chessgrid/chess-stats/models"
	"github.com/chessgrid/chess-stats/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
	logger            *slog.Logger
	defaultLimit      int
	maxLimit          int
}

func NewTournamentHandler(ts services.TournamentService, logger *slog.Logger, defaultLimit, maxLimit int) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
		logger:            logger,
		defaultLimit:      defaultLimit,
		maxLimit:          maxLimit,
	}
}

// OverviewHandler handles GET /api/tournaments: featured highlights plus the
// ongoing/upcoming/completed sections, each bounded by limit.
func (h *TournamentHandler) OverviewHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	groups := h.tournamentService.Overview(r.Context(), limit)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": groups}); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// ListHandler handles GET /api/tournaments/list with optional status,
// platform and time_control filters.
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	filter := services.ListTournamentsFilter{Limit: limit}
	query := r.URL.Query()
	if raw := query.Get("status"); raw != "" {
		status := models.TournamentStatus(raw)
		switch status {
		case models.StatusUpcoming, models.StatusOngoing, models.StatusCompleted:
			filter.Status = &status
		default:
			badRequestResponse(w, errors.New("invalid status query parameter"))
			return
		}
	}
	if raw := query.Get("platform"); raw != "" {
		platform := models.Platform(raw)
		filter.Platform = &platform
	}
	if raw := query.Get("time_control"); raw != "" {
		tc := models.TimeControl(raw)
		filter.TimeControl = &tc
	}

	tournaments := h.tournamentService.List(r.Context(), filter)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetByIDHandler handles GET /api/tournaments/{tournamentID}.
func (h *TournamentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")

	tournament, err := h.tournamentService.Get(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// StandingsHandler handles GET /api/tournaments/{tournamentID}/standings.
func (h *TournamentHandler) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")

	standings, err := h.tournamentService.Standings(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
