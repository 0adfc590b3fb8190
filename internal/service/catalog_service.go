package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "linguatrack/internal/errors"
	"linguatrack/internal/model"
	"linguatrack/internal/repository"
)

// LanguageInput carries the mutable catalog language fields.
type LanguageInput struct {
	Name             string
	Description      string
	NumSpeakers      uint64
	Words            []string
	LanguageFamilyID *uint
}

// CatalogService exposes the world-language catalog: languages, families and
// fluency levels. Reads are public; mutation is open to any authenticated
// user, there is no per-resource ownership.
type CatalogService interface {
	ListLanguages(ctx context.Context) ([]model.LanguageView, error)
	GetLanguage(ctx context.Context, id uint) (*model.LanguageView, error)
	CreateLanguage(ctx context.Context, in LanguageInput) (*model.LanguageView, error)
	UpdateLanguage(ctx context.Context, id uint, in LanguageInput) (*model.LanguageView, error)
	DeleteLanguage(ctx context.Context, id uint) error
	ListFamilies(ctx context.Context) ([]model.LanguageFamily, error)
	ListFluencies(ctx context.Context) ([]model.Fluency, error)
}

type catalogService struct {
	languageRepo repository.LanguageRepository
	familyRepo   repository.FamilyRepository
	fluencyRepo  repository.FluencyRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(languageRepo repository.LanguageRepository, familyRepo repository.FamilyRepository, fluencyRepo repository.FluencyRepository) CatalogService {
	return &catalogService{
		languageRepo: languageRepo,
		familyRepo:   familyRepo,
		fluencyRepo:  fluencyRepo,
	}
}

func (s *catalogService) ListLanguages(ctx context.Context) ([]model.LanguageView, error) {
	views, err := s.languageRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return views, nil
}

func (s *catalogService) GetLanguage(ctx context.Context, id uint) (*model.LanguageView, error) {
	view, err := s.languageRepo.GetView(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLanguageNotFound
		}
		return nil, fmt.Errorf("get language: %w", err)
	}
	return view, nil
}

func (s *catalogService) CreateLanguage(ctx context.Context, in LanguageInput) (*model.LanguageView, error) {
	name := normalizeName(in.Name)
	if name == "" {
		return nil, apperrors.BadRequest("Missing fields. The required field is name.")
	}

	language := &model.Language{
		Name:             name,
		Description:      in.Description,
		NumSpeakers:      in.NumSpeakers,
		Words:            model.StringList(in.Words),
		LanguageFamilyID: in.LanguageFamilyID,
	}
	if err := s.languageRepo.Create(ctx, language); err != nil {
		return nil, fmt.Errorf("create language: %w", err)
	}
	return s.GetLanguage(ctx, language.ID)
}

func (s *catalogService) UpdateLanguage(ctx context.Context, id uint, in LanguageInput) (*model.LanguageView, error) {
	language, err := s.languageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLanguageNotFound
		}
		return nil, fmt.Errorf("find language: %w", err)
	}

	name := normalizeName(in.Name)
	if name == "" {
		return nil, apperrors.BadRequest("Missing fields. The required field is name.")
	}

	language.Name = name
	language.Description = in.Description
	language.NumSpeakers = in.NumSpeakers
	language.Words = model.StringList(in.Words)
	language.LanguageFamilyID = in.LanguageFamilyID

	if err := s.languageRepo.Update(ctx, language); err != nil {
		return nil, fmt.Errorf("update language: %w", err)
	}
	return s.GetLanguage(ctx, language.ID)
}

func (s *catalogService) DeleteLanguage(ctx context.Context, id uint) error {
	affected, err := s.languageRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete language: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrLanguageNotFound
	}
	return nil
}

func (s *catalogService) ListFamilies(ctx context.Context) ([]model.LanguageFamily, error) {
	families, err := s.familyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list families: %w", err)
	}
	return families, nil
}

func (s *catalogService) ListFluencies(ctx context.Context) ([]model.Fluency, error) {
	fluencies, err := s.fluencyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fluencies: %w", err)
	}
	return fluencies, nil
}
