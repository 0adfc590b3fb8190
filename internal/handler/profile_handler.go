package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "linguatrack/internal/errors"
	"linguatrack/internal/middleware"
	"linguatrack/internal/service"
	"linguatrack/internal/session"
)

// ProfileHandler handles the caller's own profile, language list and ranks.
// All routes here sit behind RequireAuth; the acting user always comes from
// the session.
type ProfileHandler struct {
	profileService service.ProfileService
	statsService   service.StatsService
	sessions       session.Store
	cookieSecure   bool
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService, statsService service.StatsService, sessions session.Store, cookieSecure bool) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		statsService:   statsService,
		sessions:       sessions,
		cookieSecure:   cookieSecure,
	}
}

// UpdateProfileRequest represents a profile edit request.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

// AddLanguageRequest represents an add-language request.
type AddLanguageRequest struct {
	LanguageID uint `json:"language_id" validate:"required"`
	FluencyID  uint `json:"fluency_id" validate:"required"`
}

// Get godoc
// @Summary Current user's profile with language count
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	summary, err := h.profileService.Summary(c.Request().Context(), sess.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    summary,
	})
}

// Update godoc
// @Summary Edit full name and email
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Missing fields. The required fields are full_name and email.",
		})
	}

	user, err := h.profileService.UpdateProfile(c.Request().Context(), sess.UserID, sess.Email, req.FullName, req.Email)
	if err != nil {
		return respondError(c, err)
	}

	// Keep the session's cached identity in sync with the row.
	sess.FullName = user.FullName
	sess.Email = user.Email
	if err := h.sessions.Update(c.Request().Context(), sess); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully.",
		"user":    toUserPayload(user),
	})
}

// Delete godoc
// @Summary Delete the account and everything it owns
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	if err := h.profileService.Delete(c.Request().Context(), sess.UserID); err != nil {
		return respondError(c, err)
	}
	if err := h.sessions.Destroy(c.Request().Context(), sess.ID); err != nil {
		return respondError(c, err)
	}
	clearSessionCookie(c, h.cookieSecure)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "User deleted successfully.",
	})
}

// Languages godoc
// @Summary Languages in the caller's profile
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile/languages [get]
func (h *ProfileHandler) Languages(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	views, err := h.profileService.Languages(c.Request().Context(), sess.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    views,
	})
}

// AddLanguage godoc
// @Summary Add a language with a fluency level
// @Tags profile
// @Accept json
// @Produce json
// @Param request body AddLanguageRequest true "Language and fluency ids"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /profile/languages [post]
func (h *ProfileHandler) AddLanguage(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req AddLanguageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body."})
	}

	id, err := h.profileService.AddLanguage(c.Request().Context(), sess.UserID, req.LanguageID, req.FluencyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":          "Language added successfully!",
		"user_language_id": id,
	})
}

// RemoveLanguage godoc
// @Summary Remove a language from the caller's profile
// @Tags profile
// @Produce json
// @Param id path int true "User language id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/languages/{id} [delete]
func (h *ProfileHandler) RemoveLanguage(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return respondError(c, apperrors.ErrUserLanguageNotFound)
	}

	if err := h.profileService.RemoveLanguage(c.Request().Context(), sess.UserID, uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Language deleted successfully!",
	})
}

// PolyglotRank godoc
// @Summary Caller's rank among polyglots
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/ranking/top-polyglots [get]
func (h *ProfileHandler) PolyglotRank(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	rank, err := h.statsService.PolyglotRank(c.Request().Context(), sess.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    rank,
	})
}

// AccessRank godoc
// @Summary Caller's rank by access count
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/ranking/top-accesses [get]
func (h *ProfileHandler) AccessRank(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	rank, err := h.statsService.AccessRank(c.Request().Context(), sess.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    rank,
	})
}
