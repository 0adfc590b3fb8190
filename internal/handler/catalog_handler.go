package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"linguatrack/internal/service"
)

// CatalogHandler serves the public reference-data reads.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Families godoc
// @Summary List language families
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /families [get]
func (h *CatalogHandler) Families(c echo.Context) error {
	families, err := h.catalogService.ListFamilies(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    families,
	})
}

// Fluencies godoc
// @Summary List fluency levels
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /fluencies [get]
func (h *CatalogHandler) Fluencies(c echo.Context) error {
	fluencies, err := h.catalogService.ListFluencies(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    fluencies,
	})
}
