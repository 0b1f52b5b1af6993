package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkarasev/loginapp/internal/logger"
	"github.com/mkarasev/loginapp/internal/models"
	"github.com/mkarasev/loginapp/internal/services"
	"github.com/mkarasev/loginapp/internal/sessions"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Authenticator defines the interface that the login service must
// implement.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.UserView, error)
}

// SessionCreator starts a UI session for an authenticated user.
type SessionCreator interface {
	Create(user models.UserView) *sessions.Session
}

// TokenIssuer issues bearer tokens for API clients.
type TokenIssuer interface {
	Generate(ctx context.Context, username, role string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret1
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token for API clients
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Sanitized user view
	User models.UserView `json:"user"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Incorrect username or password
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login. On success it
// starts a session (cookie, for the UI) and issues a bearer token (for
// API clients). Unknown usernames and wrong passwords get the same
// answer.
// @Summary User login
// @Description Authenticate user, set a session cookie and return a bearer token with the sanitized user view
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session started"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.LoginErrorResponse "Incorrect username or password"
// @Router /login [post]
func NewLoginHandler(svc Authenticator, store SessionCreator, tokens TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Incorrect username or password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		token, err := tokens.Generate(r.Context(), user.Username, user.Role)
		if err != nil {
			logger.Log.Errorw("failed to issue token", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		sess := store.Create(*user)
		sessions.SetCookie(w, sess)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Token: token,
			User:  *user,
		})
	}
}
