package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mkarasev/loginapp/internal/sessions"
)

//go:generate mockgen -source=logout.go -destination=mock_logout.go -package=handlers

// SessionDeleter ends a UI session.
type SessionDeleter interface {
	Delete(id string)
}

// LogoutResponse represents a logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Message
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that ends the current
// session and clears the cookie. Logging out without a session is not
// an error.
// @Summary User logout
// @Description Ends the current session and clears the session cookie. Idempotent.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session ended"
// @Router /logout [post]
func NewLogoutHandler(store SessionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id, ok := sessions.FromRequest(r); ok {
			store.Delete(id)
		}
		sessions.ClearCookie(w)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out",
		})
	}
}
