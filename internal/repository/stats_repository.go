package repository

import (
	"context"

	"gorm.io/gorm"

	"linguatrack/internal/model"
)

// StatsRepository serves the aggregate queries behind leaderboards and ranks.
//
// PolyglotCounts and AccessCounts are left joins over the full user set, so
// users with zero rows still appear with a count of 0; the public
// top-users-by-access leaderboard is deliberately an inner join instead.
type StatsRepository interface {
	Summary(ctx context.Context) (*model.DashboardSummary, error)
	TopPolyglots(ctx context.Context, limit int) ([]model.PolyglotEntry, error)
	TopUsersByAccess(ctx context.Context, limit int) ([]model.AccessEntry, error)
	TopLanguageFamilies(ctx context.Context, limit int) ([]model.FamilyShare, error)
	TopLanguages(ctx context.Context, limit int) ([]model.LanguageShare, error)
	// PolyglotCounts returns (user, distinct language count) rows ordered by
	// count descending, one row per user.
	PolyglotCounts(ctx context.Context) ([]model.UserCount, error)
	// AccessCounts returns (user, access count) rows ordered by count
	// descending, one row per user.
	AccessCounts(ctx context.Context) ([]model.UserCount, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository builds a GORM-backed repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	var summary model.DashboardSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT
		(SELECT COUNT(*) FROM languages) AS total_languages,
		(SELECT COUNT(*) FROM language_families) AS total_language_families,
		(SELECT COUNT(*) FROM users) AS total_users`).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *statsRepository) TopPolyglots(ctx context.Context, limit int) ([]model.PolyglotEntry, error) {
	var entries []model.PolyglotEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.full_name, COUNT(ul.language_id) AS language_count
		FROM users u
		LEFT JOIN user_languages ul ON u.id = ul.user_id
		GROUP BY u.id, u.full_name
		ORDER BY language_count DESC
		LIMIT ?`, limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *statsRepository) TopUsersByAccess(ctx context.Context, limit int) ([]model.AccessEntry, error) {
	var entries []model.AccessEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.full_name, COUNT(al.id) AS access_count
		FROM users u
		INNER JOIN access_logs al ON u.id = al.user_id
		GROUP BY u.id, u.full_name
		ORDER BY access_count DESC
		LIMIT ?`, limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// TopLanguageFamilies keeps zero-count families in the result; the percentage
// is over the total language count, rounded to 2 decimals.
func (r *statsRepository) TopLanguageFamilies(ctx context.Context, limit int) ([]model.FamilyShare, error) {
	var entries []model.FamilyShare
	err := r.db.WithContext(ctx).Raw(`
		SELECT lf.id, lf.name,
		       COUNT(l.id) AS language_count,
		       ROUND(COUNT(l.id) * 100.0 / (SELECT COUNT(*) FROM languages), 2) AS percentage
		FROM language_families lf
		LEFT JOIN languages l ON lf.id = l.language_family_id
		GROUP BY lf.id, lf.name
		ORDER BY language_count DESC
		LIMIT ?`, limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// TopLanguages drops languages nobody speaks; the percentage is over the total
// user count, rounded to 1 decimal.
func (r *statsRepository) TopLanguages(ctx context.Context, limit int) ([]model.LanguageShare, error) {
	var entries []model.LanguageShare
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.id, l.name,
		       COUNT(DISTINCT ul.user_id) AS user_count,
		       ROUND(COUNT(DISTINCT ul.user_id) * 100.0 / (SELECT COUNT(*) FROM users), 1) AS percentage
		FROM languages l
		LEFT JOIN user_languages ul ON l.id = ul.language_id
		GROUP BY l.id, l.name
		HAVING user_count > 0
		ORDER BY user_count DESC
		LIMIT ?`, limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *statsRepository) PolyglotCounts(ctx context.Context) ([]model.UserCount, error) {
	var counts []model.UserCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, COUNT(ul.language_id) AS count
		FROM users u
		LEFT JOIN user_languages ul ON u.id = ul.user_id
		GROUP BY u.id
		ORDER BY count DESC`).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *statsRepository) AccessCounts(ctx context.Context) ([]model.UserCount, error) {
	var counts []model.UserCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, COUNT(al.id) AS count
		FROM users u
		LEFT JOIN access_logs al ON u.id = al.user_id
		GROUP BY u.id
		ORDER BY count DESC`).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
