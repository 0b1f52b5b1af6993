package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkarasev/loginapp/internal/logger"
	"github.com/mkarasev/loginapp/internal/models"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// UserLister lists sanitized user views.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserView, error)
}

// UsersErrorResponse represents an error response for the user list
// swagger:model UsersErrorResponse
type UsersErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewUsersHandler returns an HTTP handler listing all accounts as
// sanitized views. Route-level middleware restricts it to admins.
// @Summary List users
// @Description Returns sanitized views (username, email, role) of all accounts. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserView "User list"
// @Failure 401 "Not authenticated"
// @Failure 403 "Not an admin"
// @Failure 500 {object} handlers.UsersErrorResponse "Internal server error"
// @Router /users [get]
func NewUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
