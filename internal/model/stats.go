package model

import "time"

// ProfileSummary is the caller's own profile with a live language count.
type ProfileSummary struct {
	ID            uint      `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	LanguageCount int64     `json:"language_count"`
}

// DashboardSummary holds the global totals shown on the dashboard.
type DashboardSummary struct {
	TotalLanguages        int64 `json:"total_languages"`
	TotalLanguageFamilies int64 `json:"total_language_families"`
	TotalUsers            int64 `json:"total_users"`
}

// UserCount pairs a user with a count, the substrate for rank assignment.
type UserCount struct {
	ID    uint  `json:"id"`
	Count int64 `json:"count"`
}

// PolyglotEntry is one row of the top-polyglots leaderboard.
type PolyglotEntry struct {
	ID            uint   `json:"id"`
	FullName      string `json:"full_name"`
	LanguageCount int64  `json:"language_count"`
}

// AccessEntry is one row of the top-users-by-access leaderboard.
type AccessEntry struct {
	ID          uint   `json:"id"`
	FullName    string `json:"full_name"`
	AccessCount int64  `json:"access_count"`
}

// FamilyShare is one row of the top-language-families leaderboard.
// Percentage is over the total language count, rounded to 2 decimals.
type FamilyShare struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	LanguageCount int64   `json:"language_count"`
	Percentage    float64 `json:"percentage"`
}

// LanguageShare is one row of the top-spoken-languages leaderboard.
// Percentage is over the total user count, rounded to 1 decimal.
type LanguageShare struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	UserCount  int64   `json:"user_count"`
	Percentage float64 `json:"percentage"`
}

// PolyglotRank is the caller's own rank by distinct languages spoken.
type PolyglotRank struct {
	Rank          int64 `json:"rank"`
	LanguageCount int64 `json:"language_count"`
	TotalUsers    int64 `json:"total_users"`
}

// AccessRank is the caller's own rank by recorded accesses.
type AccessRank struct {
	Rank        int64 `json:"rank"`
	AccessCount int64 `json:"access_count"`
	TotalUsers  int64 `json:"total_users"`
}
