package repository

import (
	"context"

	"gorm.io/gorm"

	"linguatrack/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdateProfile rewrites full_name and email. Returns the number of
	// affected rows so callers can detect a race with deletion.
	UpdateProfile(ctx context.Context, id uint, fullName, email string) (int64, error)
	// Delete hard-deletes the user; owned user_languages and access_logs
	// rows go with it via FK cascade.
	Delete(ctx context.Context, id uint) (int64, error)
	// Summary joins the user with a live count of their profile languages.
	Summary(ctx context.Context, id uint) (*model.ProfileSummary, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uint, fullName, email string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"full_name": fullName, "email": email})
	return res.RowsAffected, res.Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	return res.RowsAffected, res.Error
}

func (r *userRepository) Summary(ctx context.Context, id uint) (*model.ProfileSummary, error) {
	var summary model.ProfileSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.full_name, u.email, u.created_at,
		       COUNT(ul.language_id) AS language_count
		FROM users u
		LEFT JOIN user_languages ul ON u.id = ul.user_id
		WHERE u.id = ?
		GROUP BY u.id, u.full_name, u.email, u.created_at`, id).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	if summary.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &summary, nil
}
