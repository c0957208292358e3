package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contact-hub/internal/models"
	"github.com/magabrotheeeer/contact-hub/internal/testutil"
)

// MockService реализует интерфейс contact.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Add(ctx context.Context, p models.Principal, req models.ContactRequest) (models.Contact, error) {
	args := m.Called(ctx, p, req)
	return args.Get(0).(models.Contact), args.Error(1)
}

func (m *MockService) GetByID(ctx context.Context, p models.Principal, id string) (models.Contact, error) {
	args := m.Called(ctx, p, id)
	return args.Get(0).(models.Contact), args.Error(1)
}

func (m *MockService) GetAll(ctx context.Context, p models.Principal, limit, offset int) ([]models.Contact, error) {
	args := m.Called(ctx, p, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockService) GetAllAllUsers(ctx context.Context, p models.Principal, limit, offset int) ([]models.Contact, error) {
	args := m.Called(ctx, p, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, p models.Principal, id string, req models.ContactRequest) (models.Contact, error) {
	args := m.Called(ctx, p, id, req)
	return args.Get(0).(models.Contact), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, p models.Principal, id string) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

var (
	alice = models.Principal{UID: "uid-alice", Username: "alice", Role: models.RoleUser}

	aliceContact = models.Contact{
		ID:        "c1",
		FirstName: "Alice",
		LastName:  "Smith",
		Phone:     "1234567890",
		Address:   "1 Main Street",
		OwnerUID:  "uid-alice",
	}
)

func newRequest(t *testing.T, method, url string, body any, principal *models.Principal, urlID string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if str, ok := body.(string); ok {
			buf.WriteString(str)
		} else {
			raw, err := json.Marshal(body)
			assert.NoError(t, err)
			buf.Write(raw)
		}
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")

	ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
	if principal != nil {
		ctx = context.WithValue(ctx, middlewarectx.PrincipalKey, *principal)
	}
	if urlID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", urlID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		principal      *models.Principal
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful create",
			body: models.ContactRequest{
				ID: "c1", FirstName: "Alice", LastName: "Smith",
				Phone: "1234567890", Address: "1 Main Street",
			},
			principal: &alice,
			setupMock: func(m *MockService) {
				m.On("Add", mock.Anything, alice, mock.AnythingOfType("models.ContactRequest")).
					Return(aliceContact, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"c1"`,
		},
		{
			name:           "invalid json",
			body:           "not a json",
			principal:      &alice,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name: "validation failure",
			body: models.ContactRequest{
				ID: "c1", FirstName: "Alice", LastName: "Smith",
				Phone: "123", Address: "1 Main Street",
			},
			principal:      &alice,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Phone has a wrong length`,
		},
		{
			name: "missing principal",
			body: models.ContactRequest{
				ID: "c1", FirstName: "Alice", LastName: "Smith",
				Phone: "1234567890", Address: "1 Main Street",
			},
			principal:      nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"authentication required"`,
		},
		{
			name: "duplicate id",
			body: models.ContactRequest{
				ID: "c1", FirstName: "Alice", LastName: "Smith",
				Phone: "1234567890", Address: "1 Main Street",
			},
			principal: &alice,
			setupMock: func(m *MockService) {
				m.On("Add", mock.Anything, alice, mock.AnythingOfType("models.ContactRequest")).
					Return(models.Contact{}, fmt.Errorf("contact.Add: %w", apperr.ErrDuplicate))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"resource already exists"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)
			handler := New(testutil.DiscardLogger(), mockService)

			req := newRequest(t, http.MethodPost, "/contacts", tt.body, tt.principal, "")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_Read(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful read",
			setupMock: func(m *MockService) {
				m.On("GetByID", mock.Anything, alice, "c1").Return(aliceContact, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"first_name":"Alice"`,
		},
		{
			name: "foreign contact looks like not found",
			setupMock: func(m *MockService) {
				m.On("GetByID", mock.Anything, alice, "c1").
					Return(models.Contact{}, fmt.Errorf("contact.GetByID: %w", apperr.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"resource not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)
			handler := New(testutil.DiscardLogger(), mockService)

			req := newRequest(t, http.MethodGet, "/contacts/c1", nil, &alice, "c1")
			w := httptest.NewRecorder()

			handler.Read(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "own records",
			url:  "/contacts",
			setupMock: func(m *MockService) {
				m.On("GetAll", mock.Anything, alice, 100, 0).
					Return([]models.Contact{aliceContact}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"c1"`,
		},
		{
			name: "all records denied for regular user",
			url:  "/contacts?all=true",
			setupMock: func(m *MockService) {
				m.On("GetAllAllUsers", mock.Anything, alice, 100, 0).
					Return(nil, fmt.Errorf("contact.GetAllAllUsers: %w", apperr.ErrForbidden))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:           "invalid limit",
			url:            "/contacts?limit=abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"status":"Error"`,
		},
		{
			name: "pagination forwarded",
			url:  "/contacts?limit=5&offset=10",
			setupMock: func(m *MockService) {
				m.On("GetAll", mock.Anything, alice, 5, 10).
					Return([]models.Contact{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)
			handler := New(testutil.DiscardLogger(), mockService)

			req := newRequest(t, http.MethodGet, tt.url, nil, &alice, "")
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_Remove(t *testing.T) {
	mockService := new(MockService)
	mockService.On("Delete", mock.Anything, alice, "c1").Return(nil)
	handler := New(testutil.DiscardLogger(), mockService)

	req := newRequest(t, http.MethodDelete, "/contacts/c1", nil, &alice, "c1")
	w := httptest.NewRecorder()

	handler.Remove(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"OK"`)
	mockService.AssertExpectations(t)
}
