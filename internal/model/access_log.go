package model

import "time"

// AccessLog records one row per successful authentication (signup or login).
// Append-only; rows are only removed when the owning user is deleted.
type AccessLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
