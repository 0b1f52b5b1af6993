package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mkarasev/loginapp/internal/models"
	"github.com/mkarasev/loginapp/internal/sessions"
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=handlers

// SessionStater resolves a session id to its session context.
type SessionStater interface {
	State(id string) models.SessionState
}

// NewSessionHandler returns an HTTP handler reporting the current
// session context. Anonymous requests get {"logged_in": false}, never
// an error.
// @Summary Current session state
// @Description Returns the session context for the caller: logged_in flag plus username, email and role when authenticated
// @Tags auth
// @Produce json
// @Success 200 {object} models.SessionState "Session context"
// @Router /session [get]
func NewSessionHandler(store SessionStater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state models.SessionState
		if id, ok := sessions.FromRequest(r); ok {
			state = store.State(id)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(state)
	}
}
