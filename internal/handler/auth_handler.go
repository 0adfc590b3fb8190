package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "linguatrack/internal/errors"
	"linguatrack/internal/middleware"
	"linguatrack/internal/model"
	"linguatrack/internal/service"
	"linguatrack/internal/session"
)

// AuthHandler handles signup, login, logout and the session probe.
type AuthHandler struct {
	authService  service.AuthService
	sessions     session.Store
	sessionTTL   time.Duration
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions session.Store, sessionTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
	}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	FullName             string `json:"full_name" validate:"required"`
	Email                string `json:"email" validate:"required"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserPayload is the user shape embedded in auth responses.
type UserPayload struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// SessionUser is the user shape in the session probe. It carries the name
// under "name" where signup and login use "full_name"; both keys are part of
// the published contract.
type SessionUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionResponse is the public session probe payload.
type SessionResponse struct {
	Message       string       `json:"message"`
	Authenticated bool         `json:"authenticated"`
	User          *SessionUser `json:"user"`
}

// Signup godoc
// @Summary Sign up a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Missing fields. The required fields are full_name, email, password and password_confirmation.",
		})
	}

	user, err := h.authService.Signup(c.Request().Context(), service.SignupInput{
		FullName:             req.FullName,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return respondError(c, err)
	}

	if err := h.establishSession(c, user); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Signed up successfully.",
		"user":    toUserPayload(user),
	})
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Missing fields. The required fields are email and password.",
		})
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.establishSession(c, user); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Logged in successfully.",
		"user":    toUserPayload(user),
	})
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.sessions.Destroy(c.Request().Context(), sess.ID); err != nil {
		return respondError(c, err)
	}
	clearSessionCookie(c, h.cookieSecure)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Logged out successfully.",
	})
}

// Session godoc
// @Summary Current session state
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return c.JSON(http.StatusOK, SessionResponse{
			Message:       "Not authenticated.",
			Authenticated: false,
			User:          nil,
		})
	}

	return c.JSON(http.StatusOK, SessionResponse{
		Message:       "Authenticated.",
		Authenticated: true,
		User: &SessionUser{
			ID:    sess.UserID,
			Name:  sess.FullName,
			Email: sess.Email,
		},
	})
}

func (h *AuthHandler) establishSession(c echo.Context, user *model.User) error {
	sess, err := h.sessions.Create(c.Request().Context(), user.ID, user.FullName, user.Email)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookieSecure,
	})
	return nil
}

func clearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

func toUserPayload(user *model.User) UserPayload {
	return UserPayload{ID: user.ID, FullName: user.FullName, Email: user.Email}
}

// respondError translates any service error to the {message} envelope.
func respondError(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}
