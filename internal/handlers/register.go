package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkarasev/loginapp/internal/logger"
	"github.com/mkarasev/loginapp/internal/models"
	"github.com/mkarasev/loginapp/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the registration service must
// implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password, role string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Email
	// required: true
	// default: alice@x.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret1
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: Account created successfully! You can now log in.
	Message string `json:"message"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Registration failed. Username or email might already exist.
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with role "user". Ensures unique username and email. The password is hashed before storing. The error never reveals which field collided.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "Account created"
// @Failure 400 {object} handlers.RegisterErrorResponse "Missing fields / invalid request"
// @Failure 409 {object} handlers.RegisterErrorResponse "Username or email already taken"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err := svc.Register(r.Context(), req.Username, req.Email, req.Password, models.RoleUser)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Username, email, and password are required.",
				})
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Registration failed. Username or email might already exist.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "Account created successfully! You can now log in.",
		})
	}
}
