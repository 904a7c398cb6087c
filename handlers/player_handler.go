package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chessgrid/chess-stats/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
	logger        *slog.Logger
	defaultLimit  int
	maxLimit      int
}

func NewPlayerHandler(ps services.PlayerService, logger *slog.Logger, defaultLimit, maxLimit int) *PlayerHandler {
	return &PlayerHandler{
		playerService: ps,
		logger:        logger,
		defaultLimit:  defaultLimit,
		maxLimit:      maxLimit,
	}
}

// ListHandler handles GET /api/players.
func (h *PlayerHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	players := h.playerService.List(r.Context(), limit)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetByIDHandler handles GET /api/players/{playerID}.
func (h *PlayerHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "playerID")

	player, err := h.playerService.Get(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
