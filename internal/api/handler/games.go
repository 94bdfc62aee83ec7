package handler

import (
	"net/http"

	"github.com/mcoot/gameportal/internal/api/response"
	"github.com/mcoot/gameportal/internal/services/portal"
)

// GamesHandler serves the game catalog
type GamesHandler struct {
	portal *portal.Portal
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(p *portal.Portal) *GamesHandler {
	return &GamesHandler{portal: p}
}

// List handles GET /api/v1/games
func (h *GamesHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GamesResponse{Games: h.portal.Games()})
}
