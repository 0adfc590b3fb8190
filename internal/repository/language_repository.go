package repository

import (
	"context"

	"gorm.io/gorm"

	"linguatrack/internal/model"
)

// LanguageRepository defines catalog language persistence operations.
type LanguageRepository interface {
	Create(ctx context.Context, language *model.Language) error
	Update(ctx context.Context, language *model.Language) error
	FindByID(ctx context.Context, id uint) (*model.Language, error)
	Delete(ctx context.Context, id uint) (int64, error)
	// List returns all languages joined with their family name, by name ascending.
	List(ctx context.Context) ([]model.LanguageView, error)
	// GetView returns one language joined with its family name.
	GetView(ctx context.Context, id uint) (*model.LanguageView, error)
}

type languageRepository struct {
	db *gorm.DB
}

// NewLanguageRepository builds a GORM-backed repository.
func NewLanguageRepository(db *gorm.DB) LanguageRepository {
	return &languageRepository{db: db}
}

func (r *languageRepository) Create(ctx context.Context, language *model.Language) error {
	return r.db.WithContext(ctx).Create(language).Error
}

func (r *languageRepository) Update(ctx context.Context, language *model.Language) error {
	return r.db.WithContext(ctx).Save(language).Error
}

func (r *languageRepository) FindByID(ctx context.Context, id uint) (*model.Language, error) {
	var language model.Language
	if err := r.db.WithContext(ctx).First(&language, id).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Language{}, id)
	return res.RowsAffected, res.Error
}

func (r *languageRepository) List(ctx context.Context) ([]model.LanguageView, error) {
	var views []model.LanguageView
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.id, l.name, l.description, l.num_speakers, l.words,
		       l.language_family_id, lf.name AS family_name
		FROM languages l
		LEFT JOIN language_families lf ON l.language_family_id = lf.id
		ORDER BY l.name`).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *languageRepository) GetView(ctx context.Context, id uint) (*model.LanguageView, error) {
	var view model.LanguageView
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.id, l.name, l.description, l.num_speakers, l.words,
		       l.language_family_id, lf.name AS family_name
		FROM languages l
		LEFT JOIN language_families lf ON l.language_family_id = lf.id
		WHERE l.id = ?`, id).
		Scan(&view).Error
	if err != nil {
		return nil, err
	}
	if view.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &view, nil
}
