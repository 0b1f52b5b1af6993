package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mkarasev/loginapp/internal/jwt"
	"github.com/mkarasev/loginapp/internal/models"
	"github.com/mkarasev/loginapp/internal/sessions"
)

func TestAuthMiddleware_SessionCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := sessions.New()
	sess := store.Create(models.UserView{Username: "alice", Email: "alice@x.com", Role: models.RoleUser})

	mockTokener := NewMockTokener(ctrl) // never consulted when the session is valid

	var gotUser models.UserView
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotOK = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(store, mockTokener)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: sess.ID})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, gotOK)
	assert.Equal(t, sess.User, gotUser)
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		cookie           string
		mockSetup        func(m *MockTokener)
		expectedStatus   int
		expectNextCalled bool
		expectedUser     models.UserView
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "StaleSessionFallsBackToToken",
			cookie: "expired-session-id",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{Username: "alice", Role: models.RoleUser}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
			expectedUser:     models.UserView{Username: "alice", Role: models.RoleUser},
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{Username: "admin", Role: models.RoleAdmin}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
			expectedUser:     models.UserView{Username: "admin", Role: models.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			store := sessions.New() // empty: every cookie is stale

			nextCalled := false
			var gotUser models.UserView
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUser, _ = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(store, mockTokener)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectNextCalled {
				assert.Equal(t, tt.expectedUser, gotUser)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		user           *models.UserView
		expectedStatus int
	}{
		{
			name:           "admin allowed",
			user:           &models.UserView{Username: "admin", Role: models.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "plain user forbidden",
			user:           &models.UserView{Username: "alice", Role: models.RoleUser},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "no user in context",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			handler := RequireRole(models.RoleAdmin)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				ctx := context.WithValue(req.Context(), userContextKey, *tt.user)
				req = req.WithContext(ctx)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
