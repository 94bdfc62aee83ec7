package response

import (
	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/services/games"
)

// Identity is the signed-in user as shown to clients
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// IdentityFromModel converts a model.Session
func IdentityFromModel(s *model.Session) *Identity {
	if s == nil {
		return nil
	}
	return &Identity{
		ID:       string(s.ID),
		Username: s.Username,
		Email:    s.Email,
	}
}

// SessionResponse reports the current session state
type SessionResponse struct {
	Authenticated bool      `json:"authenticated"`
	User          *Identity `json:"user"`
}

// SessionFromModel builds a SessionResponse, anonymous when s is nil
func SessionFromModel(s *model.Session) SessionResponse {
	return SessionResponse{
		Authenticated: s != nil,
		User:          IdentityFromModel(s),
	}
}

// GamesResponse lists the catalog
type GamesResponse struct {
	Games []games.Game `json:"games"`
}

// HistoryResponse is a filtered view of the user's results with per-game counts
type HistoryResponse struct {
	Results []model.GameResult     `json:"results"`
	Counts  map[model.GameSlug]int `json:"counts"`
}
