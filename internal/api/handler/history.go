package handler

import (
	"net/http"

	"github.com/mcoot/gameportal/internal/api/request"
	"github.com/mcoot/gameportal/internal/api/response"
	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/services/portal"
)

// HistoryHandler handles the signed-in user's game results
type HistoryHandler struct {
	portal *portal.Portal
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(p *portal.Portal) *HistoryHandler {
	return &HistoryHandler{
		portal: p,
	}
}

// Save handles POST /api/v1/history
func (h *HistoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req request.SaveResultRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := h.portal.RecordResult(r.Context(), model.GameOutcome{
		GameSlug: model.GameSlug(req.GameSlug),
		GameName: req.GameName,
		Score:    req.Score,
		Result:   req.Result,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

// List handles GET /api/v1/history?game=
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	slug, ok := gameFilter(w, r)
	if !ok {
		return
	}

	response.JSON(w, http.StatusOK, response.HistoryResponse{
		Results: h.portal.GetHistory(slug),
		Counts:  h.portal.GameCounts(),
	})
}

// Stats handles GET /api/v1/history/stats?game=
func (h *HistoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	slug, ok := gameFilter(w, r)
	if !ok {
		return
	}

	response.JSON(w, http.StatusOK, h.portal.GetStats(slug))
}

// Clear handles DELETE /api/v1/history
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.portal.ClearResults(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// gameFilter reads the optional game query parameter
func gameFilter(w http.ResponseWriter, r *http.Request) (model.GameSlug, bool) {
	slug := model.GameSlug(r.URL.Query().Get("game"))
	if slug != "" && !slug.Valid() {
		WriteError(w, model.ErrUnknownGame)
		return "", false
	}
	return slug, true
}
