package model

import "time"

// User represents a registered account. Email is stored normalized
// (trimmed, inner whitespace collapsed, lower-cased).
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Languages  []UserLanguage `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AccessLogs []AccessLog    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
