package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"linguatrack/internal/handler"
	"linguatrack/internal/middleware"
	"linguatrack/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions session.Store,
	sessionTTL time.Duration,
	cookieSecure bool,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	languageHandler *handler.LanguageHandler,
	catalogHandler *handler.CatalogHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.LoadSession(sessions, sessionTTL, cookieSecure))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Auth
	e.POST("/signup", authHandler.Signup, middleware.RequireGuest)
	e.POST("/login", authHandler.Login, middleware.RequireGuest)
	e.POST("/logout", authHandler.Logout, middleware.RequireAuth)
	e.GET("/session", authHandler.Session)

	// Catalog: public reads, authenticated mutation
	e.GET("/languages", languageHandler.List)
	e.GET("/languages/:id", languageHandler.Get)
	e.POST("/languages", languageHandler.Create, middleware.RequireAuth)
	e.PUT("/languages/:id", languageHandler.Update, middleware.RequireAuth)
	e.DELETE("/languages/:id", languageHandler.Delete, middleware.RequireAuth)
	e.GET("/families", catalogHandler.Families)
	e.GET("/fluencies", catalogHandler.Fluencies)

	// Profile: self-service only
	profile := e.Group("/profile", middleware.RequireAuth)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)
	profile.DELETE("", profileHandler.Delete)
	profile.GET("/languages", profileHandler.Languages)
	profile.POST("/languages", profileHandler.AddLanguage)
	profile.DELETE("/languages/:id", profileHandler.RemoveLanguage)
	profile.GET("/ranking/top-polyglots", profileHandler.PolyglotRank)
	profile.GET("/ranking/top-accesses", profileHandler.AccessRank)

	// Public statistics
	e.GET("/dashboard-summary", statsHandler.Summary)
	e.GET("/top-polyglots", statsHandler.TopPolyglots)
	e.GET("/top-language-families", statsHandler.TopLanguageFamilies)
	e.GET("/top-languages", statsHandler.TopLanguages)
	e.GET("/top-users-access", statsHandler.TopUsersByAccess)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
