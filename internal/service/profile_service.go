package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	apperrors "linguatrack/internal/errors"
	"linguatrack/internal/model"
	"linguatrack/internal/repository"
)

const mysqlDuplicateEntry = 1062

// ProfileService maintains the caller's own account and language list. The
// acting user always comes from the session, never from request parameters.
type ProfileService interface {
	Summary(ctx context.Context, userID uint) (*model.ProfileSummary, error)
	// UpdateProfile rewrites full_name and email. currentEmail is the
	// session's cached email, used to let a user keep their own address.
	UpdateProfile(ctx context.Context, userID uint, currentEmail, fullName, email string) (*model.User, error)
	Delete(ctx context.Context, userID uint) error
	Languages(ctx context.Context, userID uint) ([]model.UserLanguageView, error)
	AddLanguage(ctx context.Context, userID, languageID, fluencyID uint) (uint, error)
	RemoveLanguage(ctx context.Context, userID, userLanguageID uint) error
}

type profileService struct {
	userRepo         repository.UserRepository
	userLanguageRepo repository.UserLanguageRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(userRepo repository.UserRepository, userLanguageRepo repository.UserLanguageRepository) ProfileService {
	return &profileService{
		userRepo:         userRepo,
		userLanguageRepo: userLanguageRepo,
	}
}

// Summary returns the profile with a live language count, not a stored
// counter, so it cannot drift.
func (s *profileService) Summary(ctx context.Context, userID uint) (*model.ProfileSummary, error) {
	summary, err := s.userRepo.Summary(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load profile summary: %w", err)
	}
	return summary, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uint, currentEmail, fullName, email string) (*model.User, error) {
	fullName = normalizeName(fullName)
	email = normalizeEmail(email)

	if fullName == "" || email == "" {
		return nil, apperrors.BadRequest("Missing fields. The required fields are full_name and email.")
	}
	if !validEmail(email) {
		return nil, apperrors.ErrInvalidEmail
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil && email != currentEmail {
		return nil, apperrors.ErrEmailInUse
	}

	affected, err := s.userRepo.UpdateProfile(ctx, userID, fullName, email)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if affected == 0 {
		// The account was deleted between session check and update.
		return nil, apperrors.ErrUserNotFound
	}

	return &model.User{ID: userID, FullName: fullName, Email: email}, nil
}

// Delete removes the account; user_languages and access_logs rows cascade.
func (s *profileService) Delete(ctx context.Context, userID uint) error {
	affected, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (s *profileService) Languages(ctx context.Context, userID uint) ([]model.UserLanguageView, error) {
	views, err := s.userLanguageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user languages: %w", err)
	}
	return views, nil
}

// AddLanguage relies on the (user_id, language_id) unique index to arbitrate
// concurrent duplicate adds: exactly one insert wins, the other surfaces as a
// conflict.
func (s *profileService) AddLanguage(ctx context.Context, userID, languageID, fluencyID uint) (uint, error) {
	if languageID == 0 || fluencyID == 0 {
		return 0, apperrors.BadRequest("Missing fields. The required fields are language_id and fluency_id.")
	}

	entry := &model.UserLanguage{
		UserID:     userID,
		LanguageID: languageID,
		FluencyID:  fluencyID,
	}
	if err := s.userLanguageRepo.Create(ctx, entry); err != nil {
		if isDuplicateEntry(err) {
			return 0, apperrors.ErrLanguageAlreadyAdded
		}
		return 0, fmt.Errorf("insert user language: %w", err)
	}
	return entry.ID, nil
}

func (s *profileService) RemoveLanguage(ctx context.Context, userID, userLanguageID uint) error {
	affected, err := s.userLanguageRepo.Delete(ctx, userLanguageID, userID)
	if err != nil {
		return fmt.Errorf("delete user language: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUserLanguageNotFound
	}
	return nil
}

func isDuplicateEntry(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
