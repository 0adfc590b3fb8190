package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "linguatrack/internal/errors"
	"linguatrack/internal/middleware"
	"linguatrack/internal/model"
	"linguatrack/internal/service"
	"linguatrack/internal/session"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, in service.SignupInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// fakeSessionStore is an in-memory session.Store shared by the handler tests.
type fakeSessionStore struct {
	sessions map[string]*session.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*session.Session)}
}

func (s *fakeSessionStore) Create(ctx context.Context, userID uint, fullName, email string) (*session.Session, error) {
	sess := &session.Session{ID: uuid.NewString(), UserID: userID, FullName: fullName, Email: email}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *fakeSessionStore) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	return s.sessions[sessionID], nil
}

func (s *fakeSessionStore) Update(ctx context.Context, sess *session.Session) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *fakeSessionStore) Destroy(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// sessionCookie returns the last session cookie in the response; when the
// middleware renews the cookie and the handler then clears it, the later
// header is the one the browser keeps.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	var found *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.CookieName {
			found = cookie
		}
	}
	return found
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		setupMock       func(*MockAuthService)
		expectedStatus  int
		expectedMessage string
		wantCookie      bool
	}{
		{
			name: "successful signup sets a session cookie",
			body: `{"full_name":"Ada Lovelace","email":"ada@x.com","password":"password123","password_confirmation":"password123"}`,
			setupMock: func(auth *MockAuthService) {
				auth.On("Signup", mock.Anything, service.SignupInput{
					FullName:             "Ada Lovelace",
					Email:                "ada@x.com",
					Password:             "password123",
					PasswordConfirmation: "password123",
				}).Return(&model.User{ID: 7, FullName: "Ada Lovelace", Email: "ada@x.com"}, nil)
			},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "Signed up successfully.",
			wantCookie:      true,
		},
		{
			name:            "missing field fails validation before the service runs",
			body:            `{"full_name":"Ada Lovelace","email":"ada@x.com","password":"password123"}`,
			setupMock:       func(*MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Missing fields. The required fields are full_name, email, password and password_confirmation.",
		},
		{
			name: "taken email maps to conflict",
			body: `{"full_name":"Ada Lovelace","email":"ada@x.com","password":"password123","password_confirmation":"password123"}`,
			setupMock: func(auth *MockAuthService) {
				auth.On("Signup", mock.Anything, mock.AnythingOfType("service.SignupInput")).Return(nil, apperrors.ErrEmailTaken)
			},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Email already exists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(MockAuthService)
			tt.setupMock(auth)
			store := newFakeSessionStore()
			h := NewAuthHandler(auth, store, 2*time.Hour, false)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			assert.NoError(t, h.Signup(e.NewContext(req, rec)))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedMessage)

			cookie := sessionCookie(rec)
			if tt.wantCookie {
				assert.NotNil(t, cookie)
				assert.True(t, cookie.HttpOnly)
				assert.Equal(t, "/", cookie.Path)
				assert.NotNil(t, store.sessions[cookie.Value])
			} else {
				assert.Nil(t, cookie)
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Signup_ResponseEnvelope(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("Signup", mock.Anything, mock.AnythingOfType("service.SignupInput")).
		Return(&model.User{ID: 7, FullName: "Ada Lovelace", Email: "ada@x.com"}, nil)
	h := NewAuthHandler(auth, newFakeSessionStore(), 2*time.Hour, false)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(
		`{"full_name":"Ada Lovelace","email":"ada@x.com","password":"password123","password_confirmation":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	assert.NoError(t, h.Signup(e.NewContext(req, rec)))

	var body struct {
		Message string      `json:"message"`
		User    UserPayload `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Signed up successfully.", body.Message)
	assert.Equal(t, uint(7), body.User.ID)
	assert.Equal(t, "ada@x.com", body.User.Email)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		setupMock       func(*MockAuthService)
		expectedStatus  int
		expectedMessage string
		wantCookie      bool
	}{
		{
			name: "successful login",
			body: `{"email":"ada@x.com","password":"password123"}`,
			setupMock: func(auth *MockAuthService) {
				auth.On("Login", mock.Anything, "ada@x.com", "password123").
					Return(&model.User{ID: 7, FullName: "Ada Lovelace", Email: "ada@x.com"}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Logged in successfully.",
			wantCookie:      true,
		},
		{
			name: "invalid credentials",
			body: `{"email":"ada@x.com","password":"wrongpassword"}`,
			setupMock: func(auth *MockAuthService) {
				auth.On("Login", mock.Anything, "ada@x.com", "wrongpassword").
					Return(nil, apperrors.ErrInvalidCredentials)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid credentials.",
		},
		{
			name:            "missing password",
			body:            `{"email":"ada@x.com"}`,
			setupMock:       func(*MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Missing fields. The required fields are email and password.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(MockAuthService)
			tt.setupMock(auth)
			h := NewAuthHandler(auth, newFakeSessionStore(), 2*time.Hour, false)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			assert.NoError(t, h.Login(e.NewContext(req, rec)))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedMessage)
			if tt.wantCookie {
				assert.NotNil(t, sessionCookie(rec))
			} else {
				assert.Nil(t, sessionCookie(rec))
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	store := newFakeSessionStore()
	sess, _ := store.Create(context.Background(), 7, "Ada Lovelace", "ada@x.com")
	h := NewAuthHandler(new(MockAuthService), store, 2*time.Hour, false)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: sess.ID})
	rec := httptest.NewRecorder()

	wrapped := middleware.LoadSession(store, 2*time.Hour, false)(h.Logout)
	assert.NoError(t, wrapped(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully.")
	assert.Empty(t, store.sessions, "the server-side session is destroyed")

	cookie := sessionCookie(rec)
	assert.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge, "the cookie is expired on the client")
}

func TestAuthHandler_Session(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		store := newFakeSessionStore()
		sess, _ := store.Create(context.Background(), 7, "Ada Lovelace", "ada@x.com")
		h := NewAuthHandler(new(MockAuthService), store, 2*time.Hour, false)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: sess.ID})
		rec := httptest.NewRecorder()

		wrapped := middleware.LoadSession(store, 2*time.Hour, false)(h.Session)
		assert.NoError(t, wrapped(e.NewContext(req, rec)))

		var body SessionResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Authenticated)
		assert.Equal(t, "Authenticated.", body.Message)
		assert.Equal(t, uint(7), body.User.ID)
		assert.Equal(t, "Ada Lovelace", body.User.Name)
		// The probe publishes the name under "name", not "full_name".
		assert.Contains(t, rec.Body.String(), `"name":"Ada Lovelace"`)
		assert.NotContains(t, rec.Body.String(), `"full_name"`)
	})

	t.Run("anonymous", func(t *testing.T) {
		h := NewAuthHandler(new(MockAuthService), newFakeSessionStore(), 2*time.Hour, false)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		rec := httptest.NewRecorder()

		assert.NoError(t, h.Session(e.NewContext(req, rec)))

		var body SessionResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Authenticated)
		assert.Equal(t, "Not authenticated.", body.Message)
		assert.Nil(t, body.User)
	})
}
