package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "linguatrack/internal/errors"
	"linguatrack/internal/model"
)

// MockLanguageRepository is a mock implementation of LanguageRepository.
type MockLanguageRepository struct {
	mock.Mock
}

func (m *MockLanguageRepository) Create(ctx context.Context, language *model.Language) error {
	args := m.Called(ctx, language)
	return args.Error(0)
}

func (m *MockLanguageRepository) Update(ctx context.Context, language *model.Language) error {
	args := m.Called(ctx, language)
	return args.Error(0)
}

func (m *MockLanguageRepository) FindByID(ctx context.Context, id uint) (*model.Language, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Language), args.Error(1)
}

func (m *MockLanguageRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLanguageRepository) List(ctx context.Context) ([]model.LanguageView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LanguageView), args.Error(1)
}

func (m *MockLanguageRepository) GetView(ctx context.Context, id uint) (*model.LanguageView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LanguageView), args.Error(1)
}

// MockFamilyRepository is a mock implementation of FamilyRepository.
type MockFamilyRepository struct {
	mock.Mock
}

func (m *MockFamilyRepository) List(ctx context.Context) ([]model.LanguageFamily, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LanguageFamily), args.Error(1)
}

func (m *MockFamilyRepository) FindByName(ctx context.Context, name string) (*model.LanguageFamily, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LanguageFamily), args.Error(1)
}

func (m *MockFamilyRepository) Create(ctx context.Context, family *model.LanguageFamily) error {
	args := m.Called(ctx, family)
	return args.Error(0)
}

// MockFluencyRepository is a mock implementation of FluencyRepository.
type MockFluencyRepository struct {
	mock.Mock
}

func (m *MockFluencyRepository) List(ctx context.Context) ([]model.Fluency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Fluency), args.Error(1)
}

func (m *MockFluencyRepository) Create(ctx context.Context, fluency *model.Fluency) error {
	args := m.Called(ctx, fluency)
	return args.Error(0)
}

func (m *MockFluencyRepository) FindByName(ctx context.Context, name string) (*model.Fluency, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fluency), args.Error(1)
}

func newCatalogServiceForTest(languages *MockLanguageRepository) CatalogService {
	return NewCatalogService(languages, new(MockFamilyRepository), new(MockFluencyRepository))
}

func TestCatalogService_GetLanguage(t *testing.T) {
	t.Run("returns the joined view", func(t *testing.T) {
		languages := new(MockLanguageRepository)
		family := "Romance"
		view := &model.LanguageView{ID: 2, Name: "Spanish", FamilyName: &family}
		languages.On("GetView", mock.Anything, uint(2)).Return(view, nil)

		svc := newCatalogServiceForTest(languages)
		got, err := svc.GetLanguage(context.Background(), 2)

		assert.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing language maps to not found", func(t *testing.T) {
		languages := new(MockLanguageRepository)
		languages.On("GetView", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := newCatalogServiceForTest(languages)
		_, err := svc.GetLanguage(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrLanguageNotFound)
	})
}

func TestCatalogService_CreateLanguage(t *testing.T) {
	t.Run("normalizes the name and reloads the view", func(t *testing.T) {
		languages := new(MockLanguageRepository)
		languages.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Language) bool {
			return l.Name == "Scottish Gaelic"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Language).ID = 13
		}).Return(nil)
		languages.On("GetView", mock.Anything, uint(13)).Return(&model.LanguageView{ID: 13, Name: "Scottish Gaelic"}, nil)

		svc := newCatalogServiceForTest(languages)
		view, err := svc.CreateLanguage(context.Background(), LanguageInput{Name: "  Scottish   Gaelic "})

		assert.NoError(t, err)
		assert.Equal(t, uint(13), view.ID)
		languages.AssertExpectations(t)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		svc := newCatalogServiceForTest(new(MockLanguageRepository))

		_, err := svc.CreateLanguage(context.Background(), LanguageInput{Name: "   "})

		var httpErr *apperrors.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	})
}

func TestCatalogService_UpdateLanguage(t *testing.T) {
	t.Run("rewrites every mutable field", func(t *testing.T) {
		languages := new(MockLanguageRepository)
		familyID := uint(3)
		languages.On("FindByID", mock.Anything, uint(2)).Return(&model.Language{ID: 2, Name: "Spanish"}, nil)
		languages.On("Update", mock.Anything, mock.MatchedBy(func(l *model.Language) bool {
			return l.ID == 2 && l.Name == "Castilian Spanish" && l.NumSpeakers == 500000000 &&
				l.LanguageFamilyID != nil && *l.LanguageFamilyID == familyID
		})).Return(nil)
		languages.On("GetView", mock.Anything, uint(2)).Return(&model.LanguageView{ID: 2, Name: "Castilian Spanish"}, nil)

		svc := newCatalogServiceForTest(languages)
		view, err := svc.UpdateLanguage(context.Background(), 2, LanguageInput{
			Name:             "Castilian Spanish",
			NumSpeakers:      500000000,
			Words:            []string{"hola"},
			LanguageFamilyID: &familyID,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Castilian Spanish", view.Name)
		languages.AssertExpectations(t)
	})

	t.Run("missing language maps to not found", func(t *testing.T) {
		languages := new(MockLanguageRepository)
		languages.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := newCatalogServiceForTest(languages)
		_, err := svc.UpdateLanguage(context.Background(), 99, LanguageInput{Name: "Anything"})

		assert.ErrorIs(t, err, apperrors.ErrLanguageNotFound)
	})
}

func TestCatalogService_DeleteLanguage(t *testing.T) {
	t.Run("deletes an existing language", func(t *testing.T) {
		languages := new(MockLanguageRepository)
		languages.On("Delete", mock.Anything, uint(2)).Return(int64(1), nil)

		svc := newCatalogServiceForTest(languages)
		assert.NoError(t, svc.DeleteLanguage(context.Background(), 2))
	})

	t.Run("missing language maps to not found", func(t *testing.T) {
		languages := new(MockLanguageRepository)
		languages.On("Delete", mock.Anything, uint(99)).Return(int64(0), nil)

		svc := newCatalogServiceForTest(languages)
		err := svc.DeleteLanguage(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrLanguageNotFound)
	})
}
