package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"eventstudio/internal/domain/event"
)

func (a *App) decodeRequest(w http.ResponseWriter, r *http.Request) (event.Request, bool) {
	var req event.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return req, false
	}
	req.Normalize()
	if missing := req.Validate(); len(missing) > 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "missing required fields: "+strings.Join(missing, ", "))
		return req, false
	}
	return req, true
}

// GenerateEmail handles POST /generate-email.
func (a *App) GenerateEmail(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeRequest(w, r)
	if !ok {
		return
	}
	result := a.Pipeline.GenerateEmail(r.Context(), req)
	a.recordHistory("email", req, result)
	a.json(w, http.StatusOK, result)
}

// GeneratePoster handles POST /generate-poster.
func (a *App) GeneratePoster(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeRequest(w, r)
	if !ok {
		return
	}
	result := a.Pipeline.GeneratePoster(r.Context(), req)
	a.recordHistory("poster", req, result)
	a.json(w, http.StatusOK, result)
}

// GenerateInvitation handles POST /generate-invitation.
func (a *App) GenerateInvitation(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeRequest(w, r)
	if !ok {
		return
	}
	result := a.Pipeline.GenerateInvitation(r.Context(), req)
	a.recordHistory("invitation", req, result)
	a.json(w, http.StatusOK, result)
}
