package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/vocify/internal/api/request"
	"github.com/mcoot/vocify/internal/api/response"
	"github.com/mcoot/vocify/internal/model"
	"github.com/mcoot/vocify/internal/services/session"
)

// SessionHandler handles session and round endpoints
type SessionHandler struct {
	sessions *session.Manager
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	info, round, err := h.sessions.Create(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	_, highScore, err := h.sessions.Round(info.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionResponseFromModel(info, round, highScore))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	round, highScore, err := h.sessions.Round(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := h.sessions.Info(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionResponseFromModel(info, round, highScore))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Restart handles POST /api/v1/sessions/{id}/restart
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	round, err := h.sessions.Restart(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	_, highScore, err := h.sessions.Round(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoundFromModel(round, highScore))
}

// Submit handles POST /api/v1/sessions/{id}/words
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitWordRequest
	if err := request.Decode(r, &req); err != nil {
		if errors.Is(err, request.ErrInvalidBody) {
			WriteError(w, NewInvalidRequestError("invalid request body"))
			return
		}
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	result, err := h.sessions.Submit(r.Context(), sessionID(r), req.Word)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitResponseFromModel(result))
}

// Hint handles GET /api/v1/sessions/{id}/hint
func (h *SessionHandler) Hint(w http.ResponseWriter, r *http.Request) {
	hint, err := h.sessions.Hint(sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HintFromModel(hint))
}
