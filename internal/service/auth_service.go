package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "linguatrack/internal/errors"
	"linguatrack/internal/model"
	"linguatrack/internal/repository"
)

const bcryptCost = 10

// SignupInput carries the raw signup fields before normalization.
type SignupInput struct {
	FullName             string
	Email                string
	Password             string
	PasswordConfirmation string
}

// AuthService handles signup and login. Every success appends an access log
// row; if that append fails the error surfaces but the user row remains.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	userRepo       repository.UserRepository
	accessLogRepo  repository.AccessLogRepository
	minPasswordLen int
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, accessLogRepo repository.AccessLogRepository, minPasswordLen int) AuthService {
	return &authService{
		userRepo:       userRepo,
		accessLogRepo:  accessLogRepo,
		minPasswordLen: minPasswordLen,
	}
}

// Signup validates and normalizes the payload, stores a salted hash of the
// password and records the first access event.
func (s *authService) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	fullName := normalizeName(in.FullName)
	email := normalizeEmail(in.Email)

	if fullName == "" || email == "" || in.Password == "" || in.PasswordConfirmation == "" {
		return nil, apperrors.BadRequest("Missing fields. The required fields are full_name, email, password and password_confirmation.")
	}
	if !validEmail(email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if utf8.RuneCountInString(in.Password) < s.minPasswordLen {
		return nil, apperrors.BadRequest(fmt.Sprintf("Password must be at least %d characters long.", s.minPasswordLen))
	}
	if in.Password != in.PasswordConfirmation {
		return nil, apperrors.ErrPasswordMismatch
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.logAccess(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and records an access event. Unknown email and
// wrong password both collapse to the same error.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.BadRequest("Missing fields. The required fields are email and password.")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.logAccess(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) logAccess(ctx context.Context, userID uint) error {
	if err := s.accessLogRepo.Create(ctx, &model.AccessLog{UserID: userID}); err != nil {
		return fmt.Errorf("insert access log: %w", err)
	}
	return nil
}
