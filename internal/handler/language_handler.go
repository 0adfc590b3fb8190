package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "linguatrack/internal/errors"
	"linguatrack/internal/service"
)

// LanguageHandler handles the language catalog. Reads are public; mutation
// requires authentication but has no per-resource ownership.
type LanguageHandler struct {
	catalogService service.CatalogService
}

// NewLanguageHandler creates a new language handler.
func NewLanguageHandler(catalogService service.CatalogService) *LanguageHandler {
	return &LanguageHandler{catalogService: catalogService}
}

// LanguageRequest represents a catalog language create/update request.
type LanguageRequest struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description"`
	NumSpeakers      uint64   `json:"num_speakers"`
	Words            []string `json:"words"`
	LanguageFamilyID *uint    `json:"language_family_id"`
}

// List godoc
// @Summary List languages with family names
// @Tags languages
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /languages [get]
func (h *LanguageHandler) List(c echo.Context) error {
	views, err := h.catalogService.ListLanguages(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    views,
	})
}

// Get godoc
// @Summary Get one language
// @Tags languages
// @Produce json
// @Param id path int true "Language id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /languages/{id} [get]
func (h *LanguageHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, apperrors.ErrLanguageNotFound)
	}

	view, err := h.catalogService.GetLanguage(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    view,
	})
}

// Create godoc
// @Summary Create a catalog language
// @Tags languages
// @Accept json
// @Produce json
// @Param request body LanguageRequest true "Language fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /languages [post]
func (h *LanguageHandler) Create(c echo.Context) error {
	var req LanguageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Missing fields. The required field is name.",
		})
	}

	view, err := h.catalogService.CreateLanguage(c.Request().Context(), toLanguageInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Language created successfully.",
		"data":    view,
	})
}

// Update godoc
// @Summary Update a catalog language
// @Tags languages
// @Accept json
// @Produce json
// @Param id path int true "Language id"
// @Param request body LanguageRequest true "Language fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /languages/{id} [put]
func (h *LanguageHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, apperrors.ErrLanguageNotFound)
	}

	var req LanguageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Missing fields. The required field is name.",
		})
	}

	view, err := h.catalogService.UpdateLanguage(c.Request().Context(), id, toLanguageInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Language updated successfully.",
		"data":    view,
	})
}

// Delete godoc
// @Summary Delete a catalog language
// @Tags languages
// @Produce json
// @Param id path int true "Language id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /languages/{id} [delete]
func (h *LanguageHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, apperrors.ErrLanguageNotFound)
	}

	if err := h.catalogService.DeleteLanguage(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Language deleted successfully.",
	})
}

func toLanguageInput(req LanguageRequest) service.LanguageInput {
	return service.LanguageInput{
		Name:             req.Name,
		Description:      req.Description,
		NumSpeakers:      req.NumSpeakers,
		Words:            req.Words,
		LanguageFamilyID: req.LanguageFamilyID,
	}
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
