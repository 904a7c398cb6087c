package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chessgrid/chess-stats/services"
)

type ForumHandler struct {
	forumService services.ForumService
	logger       *slog.Logger
	defaultLimit int
	maxLimit     int
}

func NewForumHandler(fs services.ForumService, logger *slog.Logger, defaultLimit, maxLimit int) *ForumHandler {
	return &ForumHandler{
		forumService: fs,
		logger:       logger,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// RecentHandler handles GET /api/forum/posts.
func (h *ForumHandler) RecentHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	posts := h.forumService.Recent(r.Context(), limit)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"posts": posts}); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
