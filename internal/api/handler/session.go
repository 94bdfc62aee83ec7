package handler

import (
	"net/http"

	"github.com/mcoot/gameportal/internal/api/request"
	"github.com/mcoot/gameportal/internal/api/response"
	"github.com/mcoot/gameportal/internal/services/portal"
)

// SessionHandler handles sign-up, sign-in and sign-out
type SessionHandler struct {
	portal *portal.Portal
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(p *portal.Portal) *SessionHandler {
	return &SessionHandler{
		portal: p,
	}
}

// Register handles POST /api/v1/session/register
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	// The API has no confirmation field, so the password confirms itself
	if err := portal.ValidateRegistration(req.Username, req.Email, req.Password, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	sess, err := h.portal.SignUp(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(sess))
}

// Login handles POST /api/v1/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	if err := portal.ValidateLogin(req.Email, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	sess, err := h.portal.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Logout handles DELETE /api/v1/session
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.portal.Logout(r.Context())
	response.NoContent(w)
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.SessionFromModel(h.portal.CurrentIdentity()))
}
