package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"linguatrack/internal/model"
	"linguatrack/internal/service"
)

func invokeStats(t *testing.T, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	assert.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestStatsHandler_Summary(t *testing.T) {
	stats := new(MockStatsService)
	stats.On("DashboardSummary", mock.Anything).Return(&model.DashboardSummary{
		TotalLanguages: 12, TotalLanguageFamilies: 9, TotalUsers: 40,
	}, nil)
	h := NewStatsHandler(stats)

	rec := invokeStats(t, h.Summary, "/statistics/summary")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_languages":12`)
	assert.Contains(t, rec.Body.String(), `"total_users":40`)
}

func TestStatsHandler_TopPolyglots(t *testing.T) {
	t.Run("explicit limit passes through", func(t *testing.T) {
		stats := new(MockStatsService)
		stats.On("TopPolyglots", mock.Anything, 3).Return([]model.PolyglotEntry{
			{ID: 1, FullName: "Ada Lovelace", LanguageCount: 5},
		}, nil)
		h := NewStatsHandler(stats)

		rec := invokeStats(t, h.TopPolyglots, "/statistics/top-polyglots?limit=3")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"language_count":5`)
		stats.AssertExpectations(t)
	})

	t.Run("malformed limit becomes the default", func(t *testing.T) {
		stats := new(MockStatsService)
		stats.On("TopPolyglots", mock.Anything, service.DefaultLeaderboardLimit).Return([]model.PolyglotEntry{}, nil)
		h := NewStatsHandler(stats)

		rec := invokeStats(t, h.TopPolyglots, "/statistics/top-polyglots?limit=abc")

		assert.Equal(t, http.StatusOK, rec.Code)
		stats.AssertExpectations(t)
	})
}

func TestStatsHandler_TopLanguageFamilies(t *testing.T) {
	stats := new(MockStatsService)
	stats.On("TopLanguageFamilies", mock.Anything, service.DefaultLeaderboardLimit).Return([]model.FamilyShare{
		{ID: 2, Name: "Romance", LanguageCount: 3, Percentage: 25.0},
		{ID: 5, Name: "Koreanic", LanguageCount: 0, Percentage: 0},
	}, nil)
	h := NewStatsHandler(stats)

	rec := invokeStats(t, h.TopLanguageFamilies, "/statistics/top-language-families")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Romance"`)
	// Families with zero languages still appear.
	assert.Contains(t, rec.Body.String(), `"Koreanic"`)
}

func TestStatsHandler_TopLanguages(t *testing.T) {
	stats := new(MockStatsService)
	stats.On("TopLanguages", mock.Anything, 2).Return([]model.LanguageShare{
		{ID: 1, Name: "Spanish", UserCount: 14, Percentage: 35.0},
		{ID: 3, Name: "Mandarin Chinese", UserCount: 9, Percentage: 22.5},
	}, nil)
	h := NewStatsHandler(stats)

	rec := invokeStats(t, h.TopLanguages, "/statistics/top-languages?limit=2")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_count":14`)
}

func TestStatsHandler_TopUsersByAccess(t *testing.T) {
	stats := new(MockStatsService)
	stats.On("TopUsersByAccess", mock.Anything, service.DefaultLeaderboardLimit).Return([]model.AccessEntry{
		{ID: 1, FullName: "Ada Lovelace", AccessCount: 12},
	}, nil)
	h := NewStatsHandler(stats)

	rec := invokeStats(t, h.TopUsersByAccess, "/statistics/top-accesses")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_count":12`)
}
