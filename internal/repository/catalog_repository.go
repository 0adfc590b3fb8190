package repository

import (
	"context"

	"gorm.io/gorm"

	"linguatrack/internal/model"
)

// FamilyRepository defines language family persistence operations.
type FamilyRepository interface {
	List(ctx context.Context) ([]model.LanguageFamily, error)
	FindByName(ctx context.Context, name string) (*model.LanguageFamily, error)
	Create(ctx context.Context, family *model.LanguageFamily) error
}

type familyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository builds a GORM-backed repository.
func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{db: db}
}

func (r *familyRepository) List(ctx context.Context) ([]model.LanguageFamily, error) {
	var families []model.LanguageFamily
	if err := r.db.WithContext(ctx).Order("name").Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

func (r *familyRepository) FindByName(ctx context.Context, name string) (*model.LanguageFamily, error) {
	var family model.LanguageFamily
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&family).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

func (r *familyRepository) Create(ctx context.Context, family *model.LanguageFamily) error {
	return r.db.WithContext(ctx).Create(family).Error
}

// FluencyRepository defines fluency level persistence operations.
type FluencyRepository interface {
	List(ctx context.Context) ([]model.Fluency, error)
	Create(ctx context.Context, fluency *model.Fluency) error
	FindByName(ctx context.Context, name string) (*model.Fluency, error)
}

type fluencyRepository struct {
	db *gorm.DB
}

// NewFluencyRepository builds a GORM-backed repository.
func NewFluencyRepository(db *gorm.DB) FluencyRepository {
	return &fluencyRepository{db: db}
}

// List returns fluencies in stored order.
func (r *fluencyRepository) List(ctx context.Context) ([]model.Fluency, error) {
	var fluencies []model.Fluency
	if err := r.db.WithContext(ctx).Find(&fluencies).Error; err != nil {
		return nil, err
	}
	return fluencies, nil
}

func (r *fluencyRepository) Create(ctx context.Context, fluency *model.Fluency) error {
	return r.db.WithContext(ctx).Create(fluency).Error
}

func (r *fluencyRepository) FindByName(ctx context.Context, name string) (*model.Fluency, error) {
	var fluency model.Fluency
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&fluency).Error; err != nil {
		return nil, err
	}
	return &fluency, nil
}
