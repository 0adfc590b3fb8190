package repository

import (
	"context"

	"gorm.io/gorm"

	"linguatrack/internal/model"
)

// AccessLogRepository defines access event persistence. Rows are append-only.
type AccessLogRepository interface {
	Create(ctx context.Context, entry *model.AccessLog) error
}

type accessLogRepository struct {
	db *gorm.DB
}

// NewAccessLogRepository builds a GORM-backed repository.
func NewAccessLogRepository(db *gorm.DB) AccessLogRepository {
	return &accessLogRepository{db: db}
}

func (r *accessLogRepository) Create(ctx context.Context, entry *model.AccessLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
