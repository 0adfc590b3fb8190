package repository

import (
	"context"

	"gorm.io/gorm"

	"linguatrack/internal/model"
)

// UserLanguageRepository defines persistence for the user/language join rows.
type UserLanguageRepository interface {
	Create(ctx context.Context, entry *model.UserLanguage) error
	// ListByUser returns the user's entries joined with language, fluency and
	// family names, ordered by language name.
	ListByUser(ctx context.Context, userID uint) ([]model.UserLanguageView, error)
	// Delete removes an entry scoped by both row id and owning user id, so a
	// user can never delete another user's entry by guessing ids.
	Delete(ctx context.Context, id, userID uint) (int64, error)
}

type userLanguageRepository struct {
	db *gorm.DB
}

// NewUserLanguageRepository builds a GORM-backed repository.
func NewUserLanguageRepository(db *gorm.DB) UserLanguageRepository {
	return &userLanguageRepository{db: db}
}

func (r *userLanguageRepository) Create(ctx context.Context, entry *model.UserLanguage) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *userLanguageRepository) ListByUser(ctx context.Context, userID uint) ([]model.UserLanguageView, error) {
	var views []model.UserLanguageView
	err := r.db.WithContext(ctx).Raw(`
		SELECT ul.id, l.name AS language_name, f.name AS fluency_name,
		       ul.language_id, ul.fluency_id, lf.name AS family_name
		FROM user_languages ul
		INNER JOIN languages l ON ul.language_id = l.id
		INNER JOIN fluencies f ON ul.fluency_id = f.id
		LEFT JOIN language_families lf ON l.language_family_id = lf.id
		WHERE ul.user_id = ?
		ORDER BY l.name`, userID).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *userLanguageRepository) Delete(ctx context.Context, id, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.UserLanguage{})
	return res.RowsAffected, res.Error
}
