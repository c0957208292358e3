package register

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/config"
	"github.com/magabrotheeeer/contact-hub/internal/http/session"
	"github.com/magabrotheeeer/contact-hub/internal/models"
	"github.com/magabrotheeeer/contact-hub/internal/services/auth"
	"github.com/magabrotheeeer/contact-hub/internal/testutil"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, username, email, password string) (*auth.Session, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockService) TokenTTL() int {
	args := m.Called()
	return args.Int(0)
}

func TestRegisterHandler(t *testing.T) {
	newSession := &auth.Session{
		Token:     "signed-token",
		Principal: models.Principal{UID: "uid-1", Username: "alice", Role: models.RoleUser},
	}

	tests := []struct {
		name           string
		body           any
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful registration",
			body: map[string]string{"username": "alice", "email": "alice@example.com", "password": "password123"},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "alice", "alice@example.com", "password123").
					Return(newSession, nil)
				m.On("TokenTTL").Return(3600)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"username":"alice"`,
		},
		{
			name: "duplicate username or email",
			body: map[string]string{"username": "alice", "email": "alice@example.com", "password": "password123"},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "alice", "alice@example.com", "password123").
					Return(nil, fmt.Errorf("auth.Register: %w", apperr.ErrDuplicate))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"username or email already exists"`,
		},
		{
			name:           "invalid email",
			body:           map[string]string{"username": "alice", "email": "not-an-email", "password": "password123"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email address`,
		},
		{
			name:           "password too short",
			body:           map[string]string{"username": "alice", "email": "alice@example.com", "password": "short"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is too short`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)
			cookies := session.New(config.AuthCookie{SameSite: "lax", Path: "/"}, false)
			handler := New(testutil.DiscardLogger(), mockService, cookies)

			body, err := json.Marshal(tt.body)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
