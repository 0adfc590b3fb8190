package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"linguatrack/internal/service"
)

// StatsHandler serves the public dashboard summary and leaderboards.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Summary godoc
// @Summary Global totals for the dashboard
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /dashboard-summary [get]
func (h *StatsHandler) Summary(c echo.Context) error {
	summary, err := h.statsService.DashboardSummary(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    summary,
	})
}

// TopPolyglots godoc
// @Summary Users by distinct languages spoken
// @Tags stats
// @Produce json
// @Param limit query int false "Max rows" default(5)
// @Success 200 {object} map[string]interface{}
// @Router /top-polyglots [get]
func (h *StatsHandler) TopPolyglots(c echo.Context) error {
	limit := service.ParseLimit(c.QueryParam("limit"))

	entries, err := h.statsService.TopPolyglots(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    entries,
	})
}

// TopUsersByAccess godoc
// @Summary Users by recorded accesses
// @Tags stats
// @Produce json
// @Param limit query int false "Max rows" default(5)
// @Success 200 {object} map[string]interface{}
// @Router /top-users-access [get]
func (h *StatsHandler) TopUsersByAccess(c echo.Context) error {
	limit := service.ParseLimit(c.QueryParam("limit"))

	entries, err := h.statsService.TopUsersByAccess(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    entries,
	})
}

// TopLanguageFamilies godoc
// @Summary Families by language count with percentages
// @Tags stats
// @Produce json
// @Param limit query int false "Max rows" default(5)
// @Success 200 {object} map[string]interface{}
// @Router /top-language-families [get]
func (h *StatsHandler) TopLanguageFamilies(c echo.Context) error {
	limit := service.ParseLimit(c.QueryParam("limit"))

	entries, err := h.statsService.TopLanguageFamilies(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    entries,
	})
}

// TopLanguages godoc
// @Summary Languages by distinct speakers with percentages
// @Tags stats
// @Produce json
// @Param limit query int false "Max rows" default(5)
// @Success 200 {object} map[string]interface{}
// @Router /top-languages [get]
func (h *StatsHandler) TopLanguages(c echo.Context) error {
	limit := service.ParseLimit(c.QueryParam("limit"))

	entries, err := h.statsService.TopLanguages(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Ok.",
		"data":    entries,
	})
}
