package model

// UserLanguage links a user to a language with a fluency level.
// The (user, language) pair is unique: adding the same language twice is a
// conflict, never an update.
type UserLanguage struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	UserID     uint `json:"user_id" gorm:"not null;uniqueIndex:idx_user_language"`
	LanguageID uint `json:"language_id" gorm:"not null;uniqueIndex:idx_user_language"`
	FluencyID  uint `json:"fluency_id" gorm:"not null"`

	Language Language `json:"-" gorm:"foreignKey:LanguageID;constraint:OnDelete:CASCADE"`
	Fluency  Fluency  `json:"-" gorm:"foreignKey:FluencyID"`
}

// UserLanguageView is a profile entry joined with language, family and fluency
// names, the shape the profile languages listing returns.
type UserLanguageView struct {
	ID           uint    `json:"id"`
	LanguageName string  `json:"language_name"`
	FluencyName  string  `json:"fluency_name"`
	LanguageID   uint    `json:"language_id"`
	FluencyID    uint    `json:"fluency_id"`
	FamilyName   *string `json:"family_name"`
}
