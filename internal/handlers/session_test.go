package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarasev/loginapp/internal/models"
	"github.com/mkarasev/loginapp/internal/sessions"
)

func TestSessionHandler(t *testing.T) {
	store := sessions.New()
	sess := store.Create(models.UserView{Username: "alice", Email: "alice@x.com", Role: models.RoleUser})

	handler := NewSessionHandler(store)

	tests := []struct {
		name     string
		cookie   string
		expected models.SessionState
	}{
		{
			name:   "logged in",
			cookie: sess.ID,
			expected: models.SessionState{
				LoggedIn: true,
				Username: "alice",
				Email:    "alice@x.com",
				Role:     models.RoleUser,
			},
		},
		{
			name:     "no cookie",
			expected: models.SessionState{},
		},
		{
			name:     "stale cookie",
			cookie:   "unknown-session-id",
			expected: models.SessionState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/session", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			// Anonymous is a state, never an error.
			assert.Equal(t, http.StatusOK, rr.Code)

			var state models.SessionState
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
			assert.Equal(t, tt.expected, state)
		})
	}
}
