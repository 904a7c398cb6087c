package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chessgrid/chess-stats/services"
)

type RankingHandler struct {
	rankingService services.RankingService
	logger         *slog.Logger
	defaultLimit   int
	maxLimit       int
}

func NewRankingHandler(rs services.RankingService, logger *slog.Logger, defaultLimit, maxLimit int) *RankingHandler {
	return &RankingHandler{
		rankingService: rs,
		logger:         logger,
		defaultLimit:   defaultLimit,
		maxLimit:       maxLimit,
	}
}

// CategoriesHandler handles GET /api/rankings. The limit bounds each
// category's player list, not the number of categories.
func (h *RankingHandler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	categories := h.rankingService.Categories(r.Context(), limit)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"categories": categories}); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
